package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

type Attribute struct {
	Name  string
	Value string
}

// Attributes keeps document order. Setting an existing name replaces its value in place.
type Attributes []Attribute

func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attributes: expected object, got %v", tok)
	}

	var out Attributes
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attributes: expected string key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("attributes: value of %q: %w", key, err)
		}
		out.Set(key, value)
	}
	*a = out
	return nil
}

// ElementNode is one extracted element. A node owns its children; nothing points back up the tree.
type ElementNode struct {
	TagName       string         `json:"tag_name"`
	Attributes    Attributes     `json:"attributes"`
	TextContent   *string        `json:"text_content,omitempty"`
	IsVisible     bool           `json:"is_visible"`
	IsInteractive bool           `json:"is_interactive"`
	Index         *int           `json:"index,omitempty"`
	Children      []*ElementNode `json:"children"`
	BoundingBox   *BoundingBox   `json:"bounding_box,omitempty"`
}

func NewElementNode(tagName string) *ElementNode {
	return &ElementNode{
		TagName:    tagName,
		Attributes: Attributes{},
		Children:   []*ElementNode{},
	}
}

func (n *ElementNode) SetAttribute(name, value string) {
	n.Attributes.Set(name, value)
}

func (n *ElementNode) Attribute(name string) (string, bool) {
	return n.Attributes.Get(name)
}

func (n *ElementNode) SetText(text string) {
	n.TextContent = &text
}

func (n *ElementNode) Text() string {
	if n.TextContent == nil {
		return ""
	}
	return *n.TextContent
}

func (n *ElementNode) SetIndex(index int) {
	n.Index = &index
}

func (n *ElementNode) AddChild(child *ElementNode) {
	n.Children = append(n.Children, child)
}

func (n *ElementNode) CountElements() int {
	count := 1
	for _, child := range n.Children {
		count += child.CountElements()
	}
	return count
}

func (n *ElementNode) CountInteractive() int {
	count := 0
	if n.IsInteractive {
		count = 1
	}
	for _, child := range n.Children {
		count += child.CountInteractive()
	}
	return count
}

// Walk visits n and its descendants depth-first in document order until fn returns false.
func (n *ElementNode) Walk(fn func(node *ElementNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *ElementNode) walk(fn func(*ElementNode, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}
