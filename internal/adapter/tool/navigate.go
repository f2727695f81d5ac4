package tool

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*NavigateTool)(nil)

type NavigateTool struct {
	spec
	policy *URLPolicy
	logger output.LoggerPort
}

func NewNavigateTool(policy *URLPolicy, logger output.LoggerPort) *NavigateTool {
	return &NavigateTool{
		spec: newSpec(entity.ToolNavigate, "Navigate to a specified URL in the browser", objectSchema(
			map[string]*jsonschema.Schema{
				"url":           stringProp("URL to navigate to"),
				"wait_for_load": boolProp("Wait for the page to finish loading (default true)"),
			}, "url")),
		policy: policy,
		logger: logger,
	}
}

type navigateParams struct {
	URL         string `json:"url"`
	WaitForLoad bool   `json:"wait_for_load"`
}

func (t *NavigateTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	params := navigateParams{WaitForLoad: true}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}
	if err := t.policy.Check(params.URL); err != nil {
		return nil, entity.Wrap(entity.ErrInvalidArgument, t.name, err)
	}

	session := ec.Session()
	if err := session.Navigate(ctx, params.URL); err != nil {
		return nil, t.fail(err)
	}
	if params.WaitForLoad {
		if err := session.WaitForNavigation(ctx); err != nil {
			return nil, t.fail(err)
		}
	}
	t.logger.Debug("navigated", "url", params.URL, "waited", params.WaitForLoad)

	return t.succeed(map[string]any{
		"url":    params.URL,
		"waited": params.WaitForLoad,
	})
}
