package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"browser-use/internal/di"
)

var serveFlagHTTP string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Run the browser tools as an MCP server. Without --http the server talks
over stdin/stdout; logs always go to stderr.

Examples:
  browser-use serve
  browser-use serve --http 127.0.0.1:8080 --headed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("http") {
			cfg.Server.HTTPAddr = serveFlagHTTP
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		container, err := di.NewContainer(ctx, cfg, version)
		if err != nil {
			return err
		}
		defer container.Close()

		if cfg.Server.HTTPAddr != "" {
			return container.Server.ListenAndServe(ctx, cfg.Server.HTTPAddr)
		}
		container.Logger.Info("serving MCP on stdio", "tools", container.Tools.Count())
		return container.Server.RunStdio(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagHTTP, "http", "", "Serve streamable HTTP on this address instead of stdio")
}
