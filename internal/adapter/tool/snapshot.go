package tool

import (
	"context"
	"encoding/json"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/dom"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*SnapshotTool)(nil)

type SnapshotTool struct {
	spec
	logger output.LoggerPort
}

func NewSnapshotTool(logger output.LoggerPort) *SnapshotTool {
	return &SnapshotTool{
		spec:   newSpec(entity.ToolSnapshot, "Get a text snapshot of the page with indexed interactive elements", objectSchema(nil)),
		logger: logger,
	}
}

func (t *SnapshotTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params struct{}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	tree, err := ec.DOM(ctx)
	if err != nil {
		return nil, t.fail(err)
	}

	return t.succeed(map[string]any{
		"snapshot":          dom.RenderSnapshot(tree.Root),
		"interactive_count": tree.CountInteractive(),
	})
}

var _ output.ToolPort = (*GetClickableElementsTool)(nil)

type GetClickableElementsTool struct {
	spec
	logger output.LoggerPort
}

func NewGetClickableElementsTool(logger output.LoggerPort) *GetClickableElementsTool {
	return &GetClickableElementsTool{
		spec:   newSpec(entity.ToolGetClickableElements, "List all clickable and interactive elements on the page", objectSchema(nil)),
		logger: logger,
	}
}

func (t *GetClickableElementsTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params struct{}
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}

	tree, err := ec.DOM(ctx)
	if err != nil {
		return nil, t.fail(err)
	}

	elements, count := dom.ClickableElements(tree)
	return t.succeed(map[string]any{
		"elements": elements,
		"count":    count,
	})
}
