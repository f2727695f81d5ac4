// Package llmtool hands the tool registry to LLM function-calling clients.
package llmtool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

func OpenAITool(t output.ToolPort) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        t.Name().String(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		},
	}
}

// OpenAITools describes every registered tool, in registry order.
func OpenAITools(registry output.ToolRegistry) []openai.Tool {
	all := registry.All()
	result := make([]openai.Tool, 0, len(all))
	for _, t := range all {
		result = append(result, OpenAITool(t))
	}
	return result
}

// HandleToolCall runs call through registry and returns the tool message to send back to
// the model. Failures become the message content so the model can react to them.
func HandleToolCall(ctx context.Context, registry output.ToolRegistry, ec output.ExecutionContext, call openai.ToolCall) openai.ChatCompletionMessage {
	msg := openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Name:       call.Function.Name,
		ToolCallID: call.ID,
	}
	if call.Type != "" && call.Type != openai.ToolTypeFunction {
		msg.Content = fmt.Sprintf("Error: unsupported tool call type %q", call.Type)
		return msg
	}

	result, err := registry.Execute(ctx, entity.ToolName(call.Function.Name), json.RawMessage(call.Function.Arguments), ec)
	msg.Content = render(result, err)
	return msg
}

func render(result *entity.ToolResult, err error) string {
	switch {
	case err != nil:
		return "Error: " + err.Error()
	case !result.Success:
		return "Error: " + result.Error
	case len(result.Data) == 0:
		return "{}"
	default:
		return string(result.Data)
	}
}
