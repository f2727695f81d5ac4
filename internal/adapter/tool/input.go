package tool

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*InputTool)(nil)

// clearSlack is how many extra Backspace presses clearing adds on top of the new text length.
const clearSlack = 100

type InputTool struct {
	spec
	logger output.LoggerPort
}

func NewInputTool(logger output.LoggerPort) *InputTool {
	return &InputTool{
		spec: newSpec(entity.ToolInput, "Type text into an input element", objectSchema(
			map[string]*jsonschema.Schema{
				"selector": stringProp("CSS selector of the input element"),
				"text":     stringProp("Text to type"),
				"clear":    boolProp("Clear the existing value first (default false)"),
			}, "selector", "text")),
		logger: logger,
	}
}

type inputParams struct {
	Selector string `json:"selector"`
	Text     string `json:"text"`
	Clear    bool   `json:"clear"`
}

func (t *InputTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params inputParams
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	session := ec.Session()
	element, err := session.FindElement(ctx, params.Selector)
	if err != nil {
		return nil, t.fail(err)
	}

	if params.Clear {
		// Best effort: focus, jump to the end and erase backwards.
		if err := element.Click(ctx); err != nil {
			t.logger.Warn("focus before clear failed", "selector", params.Selector, "error", err.Error())
		}
		_ = session.PressKey(ctx, "End")
		for i := 0; i < len(params.Text)+clearSlack; i++ {
			if err := session.PressKey(ctx, "Backspace"); err != nil {
				break
			}
		}
	}

	if err := element.TypeInto(ctx, params.Text); err != nil {
		return nil, t.fail(err)
	}

	return t.succeed(map[string]any{
		"selector":    params.Selector,
		"text_length": utf8.RuneCountInString(params.Text),
	})
}
