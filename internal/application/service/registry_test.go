package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
	"browser-use/internal/infrastructure/logger"
	"browser-use/internal/testutil/fakebrowser"
)

type stubTool struct {
	name   entity.ToolName
	desc   string
	result *entity.ToolResult
	err    error
	calls  int
}

func (s *stubTool) Name() entity.ToolName          { return s.name }
func (s *stubTool) Description() string            { return s.desc }
func (s *stubTool) Parameters() *jsonschema.Schema { return &jsonschema.Schema{Type: "object"} }

func (s *stubTool) Execute(_ context.Context, _ json.RawMessage, _ output.ExecutionContext) (*entity.ToolResult, error) {
	s.calls++
	return s.result, s.err
}

func newRegistry() *ToolRegistryImpl {
	return NewToolRegistry(logger.NewNop())
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	r := newRegistry()
	r.Register(&stubTool{name: "b"})
	r.Register(&stubTool{name: "a"})

	assert.True(t, r.Has("a"))
	assert.False(t, r.Has("c"))
	assert.Equal(t, []entity.ToolName{"a", "b"}, r.Names())
	assert.Equal(t, 2, r.Count())

	tool, ok := r.Get("b")
	require.True(t, ok)
	assert.Equal(t, entity.ToolName("b"), tool.Name())

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "a", defs[0].Name)
}

func TestToolRegistry_LastRegistrationWins(t *testing.T) {
	r := newRegistry()
	r.Register(&stubTool{name: "x", desc: "first"})
	r.Register(&stubTool{name: "x", desc: "second"})

	tool, ok := r.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", tool.Description())
	assert.Equal(t, 1, r.Count())
}

func TestToolRegistry_ExecuteMissingTool(t *testing.T) {
	r := newRegistry()
	ec := NewToolContext(fakebrowser.New("<body></body>"))

	result, err := r.Execute(context.Background(), "does-not-exist", nil, ec)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "does-not-exist")
	assert.Equal(t, "Tool 'does-not-exist' not found", result.Error)
}

func TestToolRegistry_ExecuteStrictMissingTool(t *testing.T) {
	r := newRegistry()
	ec := NewToolContext(fakebrowser.New("<body></body>"))

	result, err := r.ExecuteStrict(context.Background(), "does-not-exist", nil, ec)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrToolNotFound)
}

func TestToolRegistry_ExecuteDispatches(t *testing.T) {
	r := newRegistry()
	tool := &stubTool{name: "echo", result: entity.Success(json.RawMessage(`{"ok":true}`))}
	r.Register(tool)
	ec := NewToolContext(fakebrowser.New("<body></body>"))

	result, err := r.Execute(context.Background(), "echo", json.RawMessage(`{}`), ec)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.JSONEq(t, `{"ok":true}`, string(result.Data))
	assert.Equal(t, 1, tool.calls)
}

func TestToolRegistry_ExecutePropagatesToolError(t *testing.T) {
	r := newRegistry()
	cause := entity.ToolFailed(entity.ToolClick, errors.New("boom"))
	r.Register(&stubTool{name: "click", err: cause})
	ec := NewToolContext(fakebrowser.New("<body></body>"))

	result, err := r.Execute(context.Background(), "click", nil, ec)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrToolExecutionFailed)
}
