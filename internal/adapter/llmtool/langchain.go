package llmtool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/tmc/langchaingo/tools"

	"browser-use/internal/application/port/output"
	"browser-use/internal/application/service"
)

var _ tools.Tool = (*LangchainTool)(nil)

// LangchainTool adapts one registry tool to langchaingo. Each Call runs in a new tool context
// against session.
type LangchainTool struct {
	tool     output.ToolPort
	registry output.ToolRegistry
	session  output.BrowserSession
}

func NewLangchainTool(t output.ToolPort, registry output.ToolRegistry, session output.BrowserSession) *LangchainTool {
	return &LangchainTool{tool: t, registry: registry, session: session}
}

func (l *LangchainTool) Name() string { return l.tool.Name().String() }

// Description appends the parameter schema, since langchaingo agents only see text.
func (l *LangchainTool) Description() string {
	schema, err := json.Marshal(l.tool.Parameters())
	if err != nil {
		return l.tool.Description()
	}
	return l.tool.Description() + ". Input: JSON object matching " + string(schema)
}

// Call executes the tool with input as its JSON parameters. Tool failures are returned as
// text; only a malformed input is an error.
func (l *LangchainTool) Call(ctx context.Context, input string) (string, error) {
	if input == "" {
		input = "{}"
	}
	if !json.Valid([]byte(input)) {
		return "", errors.New("tool input must be a JSON object")
	}
	ec := service.NewToolContext(l.session)
	result, err := l.registry.Execute(ctx, l.tool.Name(), json.RawMessage(input), ec)
	return render(result, err), nil
}

func LangchainTools(registry output.ToolRegistry, session output.BrowserSession) []tools.Tool {
	all := registry.All()
	result := make([]tools.Tool, 0, len(all))
	for _, t := range all {
		result = append(result, NewLangchainTool(t, registry, session))
	}
	return result
}
