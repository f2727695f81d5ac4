package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*GetMarkdownTool)(nil)

type GetMarkdownTool struct {
	spec
	sanitizer *bluemonday.Policy
	converter *converter.Converter
	logger    output.LoggerPort
}

func NewGetMarkdownTool(logger output.LoggerPort) *GetMarkdownTool {
	return &GetMarkdownTool{
		spec:      newSpec(entity.ToolGetMarkdown, "Get the page content as Markdown", objectSchema(nil)),
		sanitizer: bluemonday.UGCPolicy().SkipElementsContent("head", "title", "noscript", "template"),
		converter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		logger: logger,
	}
}

type pageHTML struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

func (t *GetMarkdownTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params struct{}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	value, err := ec.Session().Evaluate(ctx, pageHTMLJS, false)
	if err != nil {
		return nil, t.fail(err)
	}
	var page pageHTML
	if err := scriptResult(value, &page); err != nil {
		return nil, t.fail(err)
	}

	markdown, err := t.Convert(page.Title, page.HTML)
	if err != nil {
		return nil, t.fail(err)
	}

	return t.succeed(map[string]any{
		"markdown": markdown,
		"title":    page.Title,
		"length":   len(markdown),
	})
}

// Convert sanitizes html and renders it as Markdown, headed by the page title when there is one.
func (t *GetMarkdownTool) Convert(title, html string) (string, error) {
	body, err := t.converter.ConvertString(t.sanitizer.Sanitize(html))
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	body = strings.TrimSpace(body)

	title = strings.TrimSpace(title)
	if title == "" {
		return body, nil
	}
	return "# " + title + "\n\n" + body, nil
}
