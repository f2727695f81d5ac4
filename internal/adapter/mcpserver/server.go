// Package mcpserver exposes the tool registry as a Model Context Protocol server.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"browser-use/internal/application/port/output"
	"browser-use/internal/application/service"
	"browser-use/internal/domain/entity"
)

const serverName = "browser-use"

// Server runs one tool call at a time against a single browser session. Every call gets a
// fresh tool context, so each sees the page as it is when the call starts.
type Server struct {
	registry output.ToolRegistry
	session  output.BrowserSession
	logger   output.LoggerPort

	mu  sync.Mutex
	srv *mcp.Server
}

func NewServer(registry output.ToolRegistry, session output.BrowserSession, logger output.LoggerPort, version string) *Server {
	s := &Server{
		registry: registry,
		session:  session,
		logger:   logger,
		srv:      mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
	}
	for _, t := range registry.All() {
		s.addTool(t)
	}
	return s
}

// MCP returns the underlying server, for transports other than stdio.
func (s *Server) MCP() *mcp.Server {
	return s.srv
}

// RunStdio serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("mcp server ready", "transport", "stdio", "tools", len(s.registry.All()))
	return s.srv.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) addTool(t output.ToolPort) {
	schema, err := json.Marshal(t.Parameters())
	if err != nil {
		panic(fmt.Sprintf("mcp: marshal input schema of %s: %v", t.Name(), err))
	}
	tool := &mcp.Tool{
		Name:        t.Name().String(),
		Description: t.Description(),
		InputSchema: json.RawMessage(schema),
	}

	name := t.Name()
	s.srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.call(ctx, name, req.Params.Arguments), nil
	})
}

// call runs a tool and folds every failure into an error result; protocol errors are
// reserved for the transport.
func (s *Server) call(ctx context.Context, name entity.ToolName, args json.RawMessage) *mcp.CallToolResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	ec := service.NewToolContext(s.session)
	result, err := s.registry.Execute(ctx, name, args, ec)
	if err != nil {
		var res mcp.CallToolResult
		res.SetError(err)
		return &res
	}
	if !result.Success {
		var res mcp.CallToolResult
		res.SetError(errors.New(result.Error))
		return &res
	}

	text := string(result.Data)
	if text == "" {
		text = "{}"
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
