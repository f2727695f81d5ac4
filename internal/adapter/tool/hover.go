package tool

import (
	"context"
	"encoding/json"
	"errors"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*HoverTool)(nil)

type HoverTool struct {
	spec
	logger output.LoggerPort
}

func NewHoverTool(logger output.LoggerPort) *HoverTool {
	return &HoverTool{
		spec:   newSpec(entity.ToolHover, "Hover over an element specified by CSS selector or index", targetSchema(nil)),
		logger: logger,
	}
}

type hoverResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	TagName   string `json:"tagName"`
	ID        string `json:"id"`
	ClassName string `json:"className"`
}

func (t *HoverTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
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

	value, err := ec.Session().Evaluate(ctx, inject(hoverJS, "__SELECTOR__", locator), false)
	if err != nil {
		return nil, t.fail(err)
	}
	var res hoverResult
	if err := scriptResult(value, &res); err != nil {
		return nil, t.fail(err)
	}
	if !res.Success {
		if res.Error == "" {
			res.Error = "Unknown error"
		}
		return nil, t.fail(errors.New(res.Error))
	}

	return t.succeed(map[string]any{
		"selector": locator,
		"element": map[string]any{
			"tagName":   res.TagName,
			"id":        res.ID,
			"className": res.ClassName,
		},
	})
}
