package main

import (
	"github.com/spf13/cobra"

	"browser-use/internal/infrastructure/config"
	"browser-use/internal/infrastructure/env"
)

var (
	flagConfig      string
	flagHeaded      bool
	flagExecutable  string
	flagRemoteURL   string
	flagUserDataDir string
	flagStealth     bool
	flagLogLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "browser-use",
	Short: "browser-use - browser automation tools for LLM agents",
	Long: `browser-use drives a Chromium browser through a small set of tools
(navigate, click, input, snapshot, ...) that address page elements by index.

Quick start:
  browser-use serve                         # MCP server on stdio
  browser-use serve --http :8080            # MCP server over streamable HTTP
  browser-use snapshot page.html            # Render a saved page as a snapshot
  browser-use snapshot https://example.com  # Snapshot a live page
  browser-use call navigate '{"url":"https://example.com"}'
  browser-use tools                         # List tools

Environment:
  BROWSER_HEADLESS, BROWSER_EXECUTABLE, BROWSER_REMOTE_URL,
  BROWSER_USER_DATA_DIR, LOG_LEVEL, LOG_FORMAT, NAVIGATE_ALLOW`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("browser-use version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	flags.BoolVar(&flagHeaded, "headed", false, "Show the browser window")
	flags.StringVar(&flagExecutable, "executable-path", "", "Browser binary to launch")
	flags.StringVar(&flagRemoteURL, "remote-url", "", "Attach to a running browser (ws:// or http:// debugging endpoint)")
	flags.StringVar(&flagUserDataDir, "user-data-dir", "", "Browser profile directory")
	flags.BoolVar(&flagStealth, "stealth", false, "Open pages with stealth evasions")
	flags.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(toolsCmd)
}

// loadConfig layers the config file, the environment and then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig, env.NewEnvService())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("headed") {
		cfg.Browser.Headed = flagHeaded
	}
	if flags.Changed("executable-path") {
		cfg.Browser.Executable = flagExecutable
	}
	if flags.Changed("remote-url") {
		cfg.Browser.RemoteURL = flagRemoteURL
	}
	if flags.Changed("user-data-dir") {
		cfg.Browser.UserDataDir = flagUserDataDir
	}
	if flags.Changed("stealth") {
		cfg.Browser.Stealth = flagStealth
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
