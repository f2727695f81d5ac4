package llmtool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser-use/internal/adapter/tool"
	"browser-use/internal/application/service"
	"browser-use/internal/infrastructure/logger"
	"browser-use/internal/testutil/fakebrowser"
)

const page = `<body><a href="/docs">Docs</a><button id="go">Go</button></body>`

func newRegistry() *service.ToolRegistryImpl {
	nop := logger.NewNop()
	registry := service.NewToolRegistry(nop)
	tool.RegisterDefaults(registry, nil, nop)
	return registry
}

func TestOpenAITools(t *testing.T) {
	defs := OpenAITools(newRegistry())

	require.Len(t, defs, 14)
	for _, d := range defs {
		assert.Equal(t, openai.ToolTypeFunction, d.Type)
		require.NotNil(t, d.Function)
		assert.NotEmpty(t, d.Function.Description)

		schema, err := json.Marshal(d.Function.Parameters)
		require.NoError(t, err)
		assert.Contains(t, string(schema), `"type":"object"`)
	}
	assert.Equal(t, "click", defs[0].Function.Name)
}

func TestHandleToolCall(t *testing.T) {
	registry := newRegistry()
	ec := service.NewToolContext(fakebrowser.New(page))

	msg := HandleToolCall(context.Background(), registry, ec, openai.ToolCall{
		ID:       "call_1",
		Type:     openai.ToolTypeFunction,
		Function: openai.FunctionCall{Name: "get_clickable_elements", Arguments: `{}`},
	})

	assert.Equal(t, openai.ChatMessageRoleTool, msg.Role)
	assert.Equal(t, "call_1", msg.ToolCallID)
	assert.JSONEq(t, `{"elements":"[0]<a>Docs</a>\n[1]<button>Go</button>","count":2}`, msg.Content)
}

func TestHandleToolCall_Failures(t *testing.T) {
	registry := newRegistry()
	ec := service.NewToolContext(fakebrowser.New(page))

	missing := HandleToolCall(context.Background(), registry, ec, openai.ToolCall{
		ID:       "call_2",
		Function: openai.FunctionCall{Name: "teleport", Arguments: `{}`},
	})
	assert.Equal(t, "Error: Tool 'teleport' not found", missing.Content)

	invalid := HandleToolCall(context.Background(), registry, ec, openai.ToolCall{
		ID:       "call_3",
		Function: openai.FunctionCall{Name: "navigate", Arguments: `{}`},
	})
	assert.Contains(t, invalid.Content, "invalid argument")
}

func TestLangchainTools(t *testing.T) {
	registry := newRegistry()
	fake := fakebrowser.New(page)

	all := LangchainTools(registry, fake)
	require.Len(t, all, 14)

	var click *LangchainTool
	for _, lt := range all {
		if lt.Name() == "click" {
			click = lt.(*LangchainTool)
		}
	}
	require.NotNil(t, click)
	assert.Contains(t, click.Description(), `"index"`)

	out, err := click.Call(context.Background(), `{"index":1}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"#go"`)

	out, err = click.Call(context.Background(), `{"index":9}`)
	require.NoError(t, err)
	assert.Contains(t, out, "No element with index 9")

	_, err = click.Call(context.Background(), `click it`)
	assert.Error(t, err)
}
