package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedTree() (*ElementNode, *SelectorMap) {
	root := NewElementNode("body")
	a := NewElementNode("button")
	a.IsInteractive = true
	a.SetIndex(0)
	b := NewElementNode("a")
	b.IsInteractive = true
	b.SetIndex(1)
	root.AddChild(a)
	root.AddChild(b)

	sm := NewSelectorMap()
	_ = sm.Insert(0, "#submit")
	_ = sm.Insert(1, "body > a")
	return root, sm
}

func TestSelectorMap_InsertionOrder(t *testing.T) {
	sm := NewSelectorMap()
	require.NoError(t, sm.Insert(2, "#b"))
	require.NoError(t, sm.Insert(0, "#a"))
	require.NoError(t, sm.Insert(1, "#c"))

	assert.Equal(t, []int{2, 0, 1}, sm.Indices())
	assert.Equal(t, 3, sm.Len())
}

func TestSelectorMap_RejectsDuplicatesAndEmpty(t *testing.T) {
	sm := NewSelectorMap()
	require.NoError(t, sm.Insert(0, "#a"))
	assert.Error(t, sm.Insert(0, "#b"))
	assert.Error(t, sm.Insert(1, ""))

	locator, ok := sm.GetSelector(0)
	assert.True(t, ok)
	assert.Equal(t, "#a", locator)

	_, ok = sm.GetSelector(1)
	assert.False(t, ok)
}

func TestNewDomTree(t *testing.T) {
	root, sm := indexedTree()

	tree, err := NewDomTree(root, sm)
	require.NoError(t, err)

	node, ok := tree.FindNodeByIndex(1)
	require.True(t, ok)
	assert.Equal(t, "a", node.TagName)

	_, ok = tree.FindNodeByIndex(7)
	assert.False(t, ok)

	assert.Equal(t, []int{0, 1}, tree.InteractiveIndices())
	assert.Equal(t, 3, tree.CountElements())
	assert.Equal(t, 2, tree.CountInteractive())
}

func TestNewDomTree_MissingNode(t *testing.T) {
	root, sm := indexedTree()
	require.NoError(t, sm.Insert(9, "#ghost"))

	_, err := NewDomTree(root, sm)
	assert.Error(t, err)
}

func TestNewDomTree_DuplicateIndex(t *testing.T) {
	root, sm := indexedTree()
	dup := NewElementNode("input")
	dup.SetIndex(0)
	root.AddChild(dup)

	_, err := NewDomTree(root, sm)
	assert.Error(t, err)
}

func TestDomTree_ToJSON(t *testing.T) {
	root, sm := indexedTree()
	tree, err := NewDomTree(root, sm)
	require.NoError(t, err)

	out, err := tree.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"tag_name":"button"`)
	assert.Contains(t, out, `"index":1`)
}

func TestToolResult(t *testing.T) {
	ok, err := SuccessWith(map[string]string{"url": "https://example.com"})
	require.NoError(t, err)
	assert.True(t, ok.Success)
	assert.Empty(t, ok.Error)

	var data map[string]string
	require.NoError(t, ok.DecodeData(&data))
	assert.Equal(t, "https://example.com", data["url"])

	fail := Failure("Test error")
	assert.False(t, fail.Success)
	assert.Nil(t, fail.Data)
	assert.Equal(t, "Test error", fail.Error)

	bare := Success(nil).WithMetadata("duration_ms", 100)
	assert.True(t, bare.Success)
	assert.Equal(t, 100, bare.Metadata["duration_ms"])
}

func TestBrowserError(t *testing.T) {
	cause := errors.New("socket closed")
	err := ToolFailed(ToolClick, cause)

	assert.True(t, errors.Is(err, ErrToolExecutionFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "tool 'click' failed: socket closed", err.Error())

	nf := ToolFailed(ToolHover, ElementNotFound("No element with index %d", 4))
	assert.True(t, errors.Is(nf, ErrElementNotFound))
	assert.False(t, errors.Is(nf, ErrToolExecutionFailed))
	assert.Contains(t, nf.Error(), "hover")
	assert.Contains(t, nf.Error(), "No element with index 4")

	timeout := Wrap(ErrTimeout, ToolWait, cause)
	assert.True(t, errors.Is(timeout, ErrTimeout))
}
