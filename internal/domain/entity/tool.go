package entity

import (
	"encoding/json"
	"fmt"
)

type ToolName string

const (
	ToolNavigate             ToolName = "navigate"
	ToolClick                ToolName = "click"
	ToolInput                ToolName = "input"
	ToolEvaluate             ToolName = "evaluate"
	ToolScreenshot           ToolName = "screenshot"
	ToolWait                 ToolName = "wait"
	ToolHover                ToolName = "hover"
	ToolSelect               ToolName = "select"
	ToolSnapshot             ToolName = "snapshot"
	ToolGetClickableElements ToolName = "get_clickable_elements"
	ToolGetMarkdown          ToolName = "get_markdown"
	ToolReadLinks            ToolName = "read_links"
	ToolPressKey             ToolName = "press_key"
	ToolScroll               ToolName = "scroll"
)

func (t ToolName) String() string {
	return string(t)
}

type ToolDefinition struct {
	Name        string
	Description string
	Parameters  any
}

// ToolResult is what a tool reports back. Data is meaningful on success, Error on failure.
type ToolResult struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    string          `json:"error,omitempty"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

func Success(data json.RawMessage) *ToolResult {
	return &ToolResult{Success: true, Data: data, Metadata: map[string]any{}}
}

// SuccessWith marshals data into the result payload.
func SuccessWith(data any) (*ToolResult, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return Success(raw), nil
}

func Failure(message string) *ToolResult {
	return &ToolResult{Success: false, Error: message, Metadata: map[string]any{}}
}

func (r *ToolResult) WithMetadata(key string, value any) *ToolResult {
	if r.Metadata == nil {
		r.Metadata = map[string]any{}
	}
	r.Metadata[key] = value
	return r
}

// DecodeData unmarshals the payload of a successful result into v.
func (r *ToolResult) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("tool result has no data")
	}
	return json.Unmarshal(r.Data, v)
}
