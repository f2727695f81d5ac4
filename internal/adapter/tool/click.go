package tool

import (
	"context"
	"encoding/json"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*ClickTool)(nil)

type ClickTool struct {
	spec
	logger output.LoggerPort
}

func NewClickTool(logger output.LoggerPort) *ClickTool {
	return &ClickTool{
		spec:   newSpec(entity.ToolClick, "Click on an element specified by CSS selector or index", targetSchema(nil)),
		logger: logger,
	}
}

func (t *ClickTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params target
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}
	sel, err := params.element(t.name)
	if err != nil {
		return nil, err
	}
	locator, err := resolveLocator(ctx, ec, sel)
	if err != nil {
		return nil, t.fail(err)
	}

	element, err := ec.Session().FindElement(ctx, locator)
	if err != nil {
		return nil, t.fail(err)
	}
	if err := element.Click(ctx); err != nil {
		return nil, t.fail(err)
	}

	if sel.IsIndex() {
		return t.succeed(map[string]any{
			"index":    *sel.Index,
			"selector": locator,
			"method":   "index",
		})
	}
	return t.succeed(map[string]any{
		"selector": locator,
		"method":   "css",
	})
}
