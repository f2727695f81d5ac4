// Package dom turns extracted document structure into an indexed element tree and renders
// it as a text snapshot.
package dom

import "browser-use/internal/domain/entity"

// RawNode is an element as reported by an extractor, before classification.
// Hidden is set when the extractor already knows the element is not rendered
// (computed display:none, visibility:hidden and the like).
type RawNode struct {
	Tag         string              `json:"tag"`
	Attributes  entity.Attributes   `json:"attributes"`
	Text        string              `json:"text"`
	Hidden      bool                `json:"hidden"`
	BoundingBox *entity.BoundingBox `json:"bbox,omitempty"`
	Children    []*RawNode          `json:"children"`
}

// Build classifies raw and indexes the result.
func Build(raw *RawNode) (*entity.DomTree, error) {
	return Index(Classify(raw))
}
