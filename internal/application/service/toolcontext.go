package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ExecutionContext = (*ToolContext)(nil)

// ToolContext carries one tool call. The page tree is extracted at most once per context
// and reused by every later access.
type ToolContext struct {
	id      string
	session output.BrowserSession
	dom     *entity.DomTree
}

func NewToolContext(session output.BrowserSession) *ToolContext {
	return &ToolContext{
		id:      uuid.NewString(),
		session: session,
	}
}

// NewToolContextWithDOM starts from an already extracted tree; DOM never extracts.
func NewToolContextWithDOM(session output.BrowserSession, tree *entity.DomTree) *ToolContext {
	tc := NewToolContext(session)
	tc.dom = tree
	return tc
}

func (c *ToolContext) ID() string {
	return c.id
}

func (c *ToolContext) Session() output.BrowserSession {
	return c.session
}

func (c *ToolContext) DOM(ctx context.Context) (*entity.DomTree, error) {
	if c.dom != nil {
		return c.dom, nil
	}
	tree, err := c.session.ExtractDOM(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract dom: %w", err)
	}
	c.dom = tree
	return tree, nil
}

// HasDOM reports whether the tree has been extracted or supplied.
func (c *ToolContext) HasDOM() bool {
	return c.dom != nil
}
