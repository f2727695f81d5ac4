package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"browser-use/internal/application/service"
	"browser-use/internal/di"
	"browser-use/internal/domain/dom"
	"browser-use/internal/domain/entity"
)

var snapshotFlagClickable bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file.html|url>",
	Short: "Print the indexed snapshot of a page",
	Long: `Print the indexed snapshot of a saved HTML file, or of a live page when the
argument is an http(s) URL.

Examples:
  browser-use snapshot page.html
  browser-use snapshot page.html --clickable
  browser-use snapshot https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			return snapshotLive(cmd, target)
		}

		f, err := os.Open(target)
		if err != nil {
			return err
		}
		defer f.Close()

		tree, err := dom.BuildFromHTML(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", target, err)
		}
		printTree(cmd, tree)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotFlagClickable, "clickable", false, "Print only the clickable elements")
}

func snapshotLive(cmd *cobra.Command, url string) error {
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

	ec := service.NewToolContext(container.Session)
	params, _ := json.Marshal(map[string]string{"url": url})
	if _, err := container.Tools.ExecuteStrict(ctx, entity.ToolNavigate, params, ec); err != nil {
		return err
	}
	tree, err := ec.DOM(ctx)
	if err != nil {
		return err
	}
	printTree(cmd, tree)
	return nil
}

func printTree(cmd *cobra.Command, tree *entity.DomTree) {
	out := cmd.OutOrStdout()
	if snapshotFlagClickable {
		list, count := dom.ClickableElements(tree)
		fmt.Fprintln(out, list)
		fmt.Fprintf(out, "\n%d clickable elements\n", count)
		return
	}
	fmt.Fprint(out, dom.RenderSnapshot(tree.Root))
	fmt.Fprintf(out, "\n%d interactive elements\n", tree.CountInteractive())
}
