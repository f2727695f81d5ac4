package tool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*SelectTool)(nil)

type SelectTool struct {
	spec
	logger output.LoggerPort
}

func NewSelectTool(logger output.LoggerPort) *SelectTool {
	return &SelectTool{
		spec: newSpec(entity.ToolSelect, "Select an option of a dropdown by value or visible text", targetSchema(
			map[string]*jsonschema.Schema{
				"value": stringProp("Option value or visible text to select"),
			}, "value")),
		logger: logger,
	}
}

type selectParams struct {
	target
	Value string `json:"value"`
}

type selectResult struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	SelectedText string `json:"selectedText"`
}

func (t *SelectTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params selectParams
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

	script := inject(selectJS, "__SELECT_CONFIG__", map[string]string{
		"selector": locator,
		"value":    params.Value,
	})
	value, err := ec.Session().Evaluate(ctx, script, false)
	if err != nil {
		return nil, t.fail(err)
	}
	var res selectResult
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
		"selector":     locator,
		"value":        params.Value,
		"selectedText": res.SelectedText,
	})
}
