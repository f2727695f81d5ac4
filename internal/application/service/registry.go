package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

type ToolRegistryImpl struct {
	tools  map[entity.ToolName]output.ToolPort
	logger output.LoggerPort
}

func NewToolRegistry(logger output.LoggerPort) *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools:  make(map[entity.ToolName]output.ToolPort),
		logger: logger,
	}
}

// Register adds tool under its name. A later registration with the same name replaces the earlier one.
func (r *ToolRegistryImpl) Register(tool output.ToolPort) {
	if _, exists := r.tools[tool.Name()]; exists {
		r.logger.Warn("tool replaced", "tool", tool.Name().String())
	}
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *ToolRegistryImpl) Has(name entity.ToolName) bool {
	_, ok := r.tools[name]
	return ok
}

// Names lists registered tool names in lexical order.
func (r *ToolRegistryImpl) Names() []entity.ToolName {
	names := make([]entity.ToolName, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (r *ToolRegistryImpl) All() []output.ToolPort {
	result := make([]output.ToolPort, 0, len(r.tools))
	for _, name := range r.Names() {
		result = append(result, r.tools[name])
	}
	return result
}

func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	result := make([]entity.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.All() {
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name().String(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return result
}

func (r *ToolRegistryImpl) Count() int {
	return len(r.tools)
}

// Execute dispatches to the named tool. An unknown name is reported as a failed result,
// not as an error; errors are reserved for tools that ran and failed.
func (r *ToolRegistryImpl) Execute(ctx context.Context, name entity.ToolName, params json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	tool, ok := r.tools[name]
	if !ok {
		r.logger.Warn("tool not found", "tool", name.String(), "context_id", ec.ID())
		return entity.Failure(fmt.Sprintf("Tool '%s' not found", name)), nil
	}
	return r.run(ctx, tool, params, ec)
}

// ExecuteStrict is Execute with a missing tool reported as entity.ErrToolNotFound.
func (r *ToolRegistryImpl) ExecuteStrict(ctx context.Context, name entity.ToolName, params json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, entity.NewError(entity.ErrToolNotFound, "Tool '%s' not found", name)
	}
	return r.run(ctx, tool, params, ec)
}

func (r *ToolRegistryImpl) run(ctx context.Context, tool output.ToolPort, params json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	log := r.logger.WithFields(map[string]any{
		"tool":       tool.Name().String(),
		"context_id": ec.ID(),
	})
	start := time.Now()
	log.Debug("tool called", "params", string(params))

	result, err := tool.Execute(ctx, params, ec)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		log.Error("tool failed", "error", err.Error(), "duration_ms", duration)
		return nil, err
	}
	if result == nil {
		result = entity.Success(nil)
	}
	log.Info("tool completed", "success", result.Success, "duration_ms", duration)
	return result, nil
}
