package entity

import (
	"encoding/json"
	"fmt"
)

// SelectorMap maps element indices to locators, in the order they were assigned.
type SelectorMap struct {
	order    []int
	locators map[int]string
}

func NewSelectorMap() *SelectorMap {
	return &SelectorMap{locators: make(map[int]string)}
}

// Insert records a locator for index. Indices are unique: a repeated index is rejected.
func (m *SelectorMap) Insert(index int, locator string) error {
	if locator == "" {
		return fmt.Errorf("selector map: empty locator for index %d", index)
	}
	if _, ok := m.locators[index]; ok {
		return fmt.Errorf("selector map: duplicate index %d", index)
	}
	m.order = append(m.order, index)
	m.locators[index] = locator
	return nil
}

func (m *SelectorMap) GetSelector(index int) (string, bool) {
	locator, ok := m.locators[index]
	return locator, ok
}

func (m *SelectorMap) Indices() []int {
	out := make([]int, len(m.order))
	copy(out, m.order)
	return out
}

func (m *SelectorMap) Len() int {
	return len(m.order)
}

func (m *SelectorMap) MarshalJSON() ([]byte, error) {
	entries := make([]selectorEntry, 0, len(m.order))
	for _, idx := range m.order {
		entries = append(entries, selectorEntry{Index: idx, Locator: m.locators[idx]})
	}
	return json.Marshal(entries)
}

type selectorEntry struct {
	Index   int    `json:"index"`
	Locator string `json:"locator"`
}

// DomTree is one extraction: the element tree plus the selector map derived from it.
// It is never mutated after construction.
type DomTree struct {
	Root        *ElementNode `json:"root"`
	SelectorMap *SelectorMap `json:"selector_map"`

	nodes map[int]*ElementNode
}

// NewDomTree pairs root with selectorMap and builds the index→node table. Every index in the
// map must belong to exactly one node of the tree.
func NewDomTree(root *ElementNode, selectorMap *SelectorMap) (*DomTree, error) {
	if selectorMap == nil {
		selectorMap = NewSelectorMap()
	}
	nodes := make(map[int]*ElementNode, selectorMap.Len())
	var dupErr error
	root.Walk(func(node *ElementNode, _ int) bool {
		if node.Index == nil {
			return true
		}
		if _, ok := selectorMap.GetSelector(*node.Index); !ok {
			return true
		}
		if _, seen := nodes[*node.Index]; seen {
			dupErr = fmt.Errorf("dom tree: index %d assigned to more than one node", *node.Index)
			return false
		}
		nodes[*node.Index] = node
		return true
	})
	if dupErr != nil {
		return nil, dupErr
	}
	for _, idx := range selectorMap.order {
		if _, ok := nodes[idx]; !ok {
			return nil, fmt.Errorf("dom tree: index %d has no node", idx)
		}
	}
	return &DomTree{Root: root, SelectorMap: selectorMap, nodes: nodes}, nil
}

func (t *DomTree) GetSelector(index int) (string, bool) {
	return t.SelectorMap.GetSelector(index)
}

func (t *DomTree) InteractiveIndices() []int {
	return t.SelectorMap.Indices()
}

func (t *DomTree) FindNodeByIndex(index int) (*ElementNode, bool) {
	node, ok := t.nodes[index]
	return node, ok
}

func (t *DomTree) CountElements() int {
	return t.Root.CountElements()
}

func (t *DomTree) CountInteractive() int {
	return t.Root.CountInteractive()
}

func (t *DomTree) ToJSON() (string, error) {
	data, err := json.Marshal(t.Root)
	if err != nil {
		return "", fmt.Errorf("marshal dom tree: %w", err)
	}
	return string(data), nil
}
