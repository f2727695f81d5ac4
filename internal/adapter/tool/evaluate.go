package tool

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*EvaluateTool)(nil)

type EvaluateTool struct {
	spec
	logger output.LoggerPort
}

func NewEvaluateTool(logger output.LoggerPort) *EvaluateTool {
	return &EvaluateTool{
		spec: newSpec(entity.ToolEvaluate, "Execute JavaScript code in the browser context", objectSchema(
			map[string]*jsonschema.Schema{
				"code":          stringProp("JavaScript expression to evaluate"),
				"await_promise": boolProp("Wait for a returned promise to settle (default false)"),
			}, "code")),
		logger: logger,
	}
}

type evaluateParams struct {
	Code         string `json:"code"`
	AwaitPromise bool   `json:"await_promise"`
}

func (t *EvaluateTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params evaluateParams
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	value, err := ec.Session().Evaluate(ctx, params.Code, params.AwaitPromise)
	if err != nil {
		return nil, entity.Wrap(entity.ErrEvaluationFailed, t.name, err)
	}
	if len(value) == 0 {
		value = json.RawMessage("null")
	}

	return t.succeed(map[string]any{
		"result": value,
	})
}
