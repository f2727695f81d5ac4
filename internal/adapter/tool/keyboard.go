package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

// Keys press_key accepts. Single printable characters are accepted as well.
var namedKeys = []string{
	"Enter", "Tab", "Escape", "Backspace", "Delete", "Space",
	"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
	"Home", "End", "PageUp", "PageDown",
}

var _ output.ToolPort = (*PressKeyTool)(nil)

type PressKeyTool struct {
	spec
	logger output.LoggerPort
}

func NewPressKeyTool(logger output.LoggerPort) *PressKeyTool {
	return &PressKeyTool{
		spec: newSpec(entity.ToolPressKey, "Press a keyboard key on the focused element", objectSchema(
			map[string]*jsonschema.Schema{
				"key": stringProp(fmt.Sprintf("Key name, one of %v, or a single character", namedKeys)),
			}, "key")),
		logger: logger,
	}
}

func (t *PressKeyTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params struct {
		Key string `json:"key"`
	}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}
	if !validKey(params.Key) {
		return nil, entity.Wrap(entity.ErrInvalidArgument, t.name, fmt.Errorf("unsupported key %q", params.Key))
	}

	if err := ec.Session().PressKey(ctx, params.Key); err != nil {
		return nil, t.fail(err)
	}
	return t.succeed(map[string]any{"key": params.Key})
}

func validKey(key string) bool {
	if len([]rune(key)) == 1 {
		return true
	}
	for _, k := range namedKeys {
		if k == key {
			return true
		}
	}
	return false
}

var _ output.ToolPort = (*ScrollTool)(nil)

type ScrollTool struct {
	spec
	logger output.LoggerPort
}

func NewScrollTool(logger output.LoggerPort) *ScrollTool {
	return &ScrollTool{
		spec: newSpec(entity.ToolScroll, "Scroll the page", objectSchema(
			map[string]*jsonschema.Schema{
				"direction": enumProp("Scroll direction", "up", "down", "top", "bottom"),
			}, "direction")),
		logger: logger,
	}
}

func (t *ScrollTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params struct {
		Direction string `json:"direction"`
	}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	value, err := ec.Session().Evaluate(ctx, inject(scrollJS, "__DIRECTION__", params.Direction), false)
	if err != nil {
		return nil, t.fail(err)
	}
	var offset float64
	_ = json.Unmarshal(value, &offset)

	return t.succeed(map[string]any{
		"direction": params.Direction,
		"scroll_y":  offset,
	})
}
