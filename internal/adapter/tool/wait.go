package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*WaitTool)(nil)

const defaultWaitTimeout = 30 * time.Second

type WaitTool struct {
	spec
	logger output.LoggerPort
}

func NewWaitTool(logger output.LoggerPort) *WaitTool {
	return &WaitTool{
		spec: newSpec(entity.ToolWait, "Wait for an element to appear on the page", objectSchema(
			map[string]*jsonschema.Schema{
				"selector":   stringProp("CSS selector to wait for"),
				"timeout_ms": intProp("Maximum time to wait in milliseconds (default 30000)"),
			}, "selector")),
		logger: logger,
	}
}

type waitParams struct {
	Selector  string `json:"selector"`
	TimeoutMS int64  `json:"timeout_ms"`
}

func (t *WaitTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	params := waitParams{TimeoutMS: defaultWaitTimeout.Milliseconds()}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}
	if params.TimeoutMS < 0 {
		return nil, entity.Wrap(entity.ErrInvalidArgument, t.name, fmt.Errorf("timeout_ms must not be negative"))
	}

	start := time.Now()
	timeout := time.Duration(params.TimeoutMS) * time.Millisecond
	if err := ec.Session().WaitForElement(ctx, params.Selector, timeout); err != nil {
		if errors.Is(err, entity.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return nil, entity.Wrap(entity.ErrTimeout, t.name,
				fmt.Errorf("element '%s' not found within %d ms: %w", params.Selector, params.TimeoutMS, err))
		}
		return nil, t.fail(err)
	}

	return t.succeed(map[string]any{
		"selector":   params.Selector,
		"found":      true,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}
