package tool

import (
	"context"
	"encoding/json"
	"strings"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*ReadLinksTool)(nil)

type ReadLinksTool struct {
	spec
	logger output.LoggerPort
}

func NewReadLinksTool(logger output.LoggerPort) *ReadLinksTool {
	return &ReadLinksTool{
		spec:   newSpec(entity.ToolReadLinks, "List the links on the page with their text and href", objectSchema(nil)),
		logger: logger,
	}
}

type link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Execute lists visible anchors with a non-empty href, in document order.
func (t *ReadLinksTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params struct{}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	tree, err := ec.DOM(ctx)
	if err != nil {
		return nil, t.fail(err)
	}

	links := []link{}
	tree.Root.Walk(func(n *entity.ElementNode, depth int) bool {
		if !n.IsVisible && depth > 0 {
			return true
		}
		if n.TagName != "a" {
			return true
		}
		href, _ := n.Attribute("href")
		if strings.TrimSpace(href) == "" {
			return true
		}
		links = append(links, link{Text: strings.TrimSpace(n.Text()), Href: href})
		return true
	})

	return t.succeed(map[string]any{
		"links": links,
		"count": len(links),
	})
}
