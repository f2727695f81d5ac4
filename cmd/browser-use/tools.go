package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"browser-use/internal/adapter/llmtool"
	"browser-use/internal/adapter/tool"
	"browser-use/internal/application/service"
	"browser-use/internal/infrastructure/logger"
)

var (
	toolsFlagJSON   bool
	toolsFlagOpenAI bool
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Long: `List the available tools. With --json the full definitions, including the
parameter schemas, are printed. With --openai they are printed as OpenAI
function-calling tool definitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := service.NewToolRegistry(logger.NewNop())
		tool.RegisterDefaults(registry, nil, logger.NewNop())

		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		switch {
		case toolsFlagOpenAI:
			return enc.Encode(llmtool.OpenAITools(registry))
		case toolsFlagJSON:
			return enc.Encode(registry.Definitions())
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, t := range registry.All() {
			fmt.Fprintf(w, "%s\t%s\n", t.Name(), t.Description())
		}
		return w.Flush()
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsFlagJSON, "json", false, "Print full definitions as JSON")
	toolsCmd.Flags().BoolVar(&toolsFlagOpenAI, "openai", false, "Print OpenAI tool definitions")
}
