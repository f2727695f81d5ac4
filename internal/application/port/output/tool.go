package output

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/domain/entity"
)

// ExecutionContext is what a tool sees of the call it runs in.
type ExecutionContext interface {
	ID() string
	Session() BrowserSession
	// DOM returns the page tree, extracting it on first use.
	DOM(ctx context.Context) (*entity.DomTree, error)
}

type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() *jsonschema.Schema
	// Execute validates params against Parameters before doing any work.
	Execute(ctx context.Context, params json.RawMessage, ec ExecutionContext) (*entity.ToolResult, error)
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	Has(name entity.ToolName) bool
	Names() []entity.ToolName
	All() []ToolPort
	Definitions() []entity.ToolDefinition
	Execute(ctx context.Context, name entity.ToolName, params json.RawMessage, ec ExecutionContext) (*entity.ToolResult, error)
}
