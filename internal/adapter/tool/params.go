package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

// spec holds what every tool shares: identity, schema and the resolved validator.
type spec struct {
	name     entity.ToolName
	desc     string
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
}

func newSpec(name entity.ToolName, desc string, schema *jsonschema.Schema) spec {
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		panic(fmt.Sprintf("tool %s: resolve schema: %v", name, err))
	}
	return spec{name: name, desc: desc, schema: schema, resolved: resolved}
}

func (s spec) Name() entity.ToolName          { return s.name }
func (s spec) Description() string            { return s.desc }
func (s spec) Parameters() *jsonschema.Schema { return s.schema }

// decode validates raw against the schema and unmarshals it into v. Fields of v that the
// caller pre-set act as defaults.
func (s spec) decode(raw json.RawMessage, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return entity.Wrap(entity.ErrInvalidArgument, s.name, err)
	}
	if err := s.resolved.Validate(instance); err != nil {
		return entity.Wrap(entity.ErrInvalidArgument, s.name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return entity.Wrap(entity.ErrInvalidArgument, s.name, err)
	}
	return nil
}

// fail attaches the tool name to err, keeping the error kind it already has.
func (s spec) fail(err error) error {
	return entity.ToolFailed(s.name, err)
}

func (s spec) succeed(data any) (*entity.ToolResult, error) {
	result, err := entity.SuccessWith(data)
	if err != nil {
		return nil, s.fail(err)
	}
	return result, nil
}

func objectSchema(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func stringProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func boolProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: desc}
}

func intProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: desc}
}

func enumProp(desc string, values ...string) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{Type: "string", Description: desc, Enum: enum}
}

// targetSchema is an object that names an element either by "selector" or by "index", never both.
func targetSchema(extra map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	props := map[string]*jsonschema.Schema{
		"selector": stringProp("CSS selector of the element"),
		"index":    intProp("Index of the element from the latest snapshot"),
	}
	for k, v := range extra {
		props[k] = v
	}
	s := objectSchema(props, required...)
	s.OneOf = []*jsonschema.Schema{
		{Required: []string{"selector"}},
		{Required: []string{"index"}},
	}
	return s
}

// target is the selector-or-index union as it arrives in tool params.
type target struct {
	Selector *string `json:"selector"`
	Index    *int    `json:"index"`
}

func (t target) element(tool entity.ToolName) (entity.ElementSelector, error) {
	switch {
	case t.Selector != nil && t.Index != nil:
		return entity.ElementSelector{}, entity.Wrap(entity.ErrInvalidArgument, tool, fmt.Errorf("selector and index are mutually exclusive"))
	case t.Selector != nil:
		if *t.Selector == "" {
			return entity.ElementSelector{}, entity.Wrap(entity.ErrInvalidArgument, tool, fmt.Errorf("selector must not be empty"))
		}
		return entity.SelectByLocator(*t.Selector), nil
	case t.Index != nil:
		if *t.Index < 0 {
			return entity.ElementSelector{}, entity.Wrap(entity.ErrInvalidArgument, tool, fmt.Errorf("index must not be negative"))
		}
		return entity.SelectByIndex(*t.Index), nil
	default:
		return entity.ElementSelector{}, entity.Wrap(entity.ErrInvalidArgument, tool, fmt.Errorf("either selector or index is required"))
	}
}

// resolveLocator turns sel into a locator, going through the page tree for indices.
func resolveLocator(ctx context.Context, ec output.ExecutionContext, sel entity.ElementSelector) (string, error) {
	if !sel.IsIndex() {
		return sel.Locator, nil
	}
	tree, err := ec.DOM(ctx)
	if err != nil {
		return "", err
	}
	locator, ok := tree.GetSelector(*sel.Index)
	if !ok {
		return "", entity.ElementNotFound("No element with index %d", *sel.Index)
	}
	return locator, nil
}

// scriptResult decodes the {success, error, ...} object the page scripts return. Scripts
// may hand it back either as an object or as a JSON string.
func scriptResult(raw json.RawMessage, v any) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("no result returned")
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = json.RawMessage(encoded)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse result: %w", err)
	}
	return nil
}
