package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"browser-use/internal/application/service"
	"browser-use/internal/di"
	"browser-use/internal/domain/entity"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-params]",
	Short: "Run a single tool against a fresh browser",
	Long: `Run one tool and print its result as JSON. Useful with --remote-url to poke at
an already open browser.

Examples:
  browser-use call navigate '{"url":"https://example.com"}'
  browser-use call snapshot --remote-url http://127.0.0.1:9222`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := entity.ToolName(args[0])
		var params json.RawMessage
		if len(args) == 2 {
			params = json.RawMessage(args[1])
			if !json.Valid(params) {
				return fmt.Errorf("params for %s are not valid JSON", name)
			}
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		container, err := di.NewContainer(ctx, cfg, version)
		if err != nil {
			return err
		}
		defer container.Close()

		result, err := container.Tools.ExecuteStrict(ctx, name, params, service.NewToolContext(container.Session))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}
