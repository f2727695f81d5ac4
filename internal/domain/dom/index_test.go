package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser-use/internal/domain/entity"
)

const indexPage = `<!doctype html>
<html><head><title>t</title><script>var x</script></head>
<body>
  <h1>Title</h1>
  <div>
    <button id="save">Save</button>
    <a href="/x">X</a>
  </div>
  <input name="q">
  <button>One</button>
  <button>Two</button>
</body></html>`

func buildHTML(t *testing.T, doc string) *entity.DomTree {
	t.Helper()
	tree, err := BuildFromHTML(strings.NewReader(doc))
	require.NoError(t, err)
	return tree
}

func TestIndex_OrderAndLocators(t *testing.T) {
	tree := buildHTML(t, indexPage)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.InteractiveIndices())

	want := map[int]string{
		0: "#save",
		1: "body > div > a",
		2: `input[name="q"]`,
		3: "body > button:nth-of-type(1)",
		4: "body > button:nth-of-type(2)",
	}
	for idx, locator := range want {
		got, ok := tree.GetSelector(idx)
		require.True(t, ok, "index %d", idx)
		assert.Equal(t, locator, got, "index %d", idx)
	}

	node, ok := tree.FindNodeByIndex(3)
	require.True(t, ok)
	assert.Equal(t, "One", node.Text())
}

func TestIndex_MissingIndexHasNoSelector(t *testing.T) {
	tree := buildHTML(t, indexPage)

	_, ok := tree.GetSelector(5)
	assert.False(t, ok)
	_, ok = tree.GetSelector(-1)
	assert.False(t, ok)
	_, ok = tree.FindNodeByIndex(99)
	assert.False(t, ok)
}

func TestIndex_Deterministic(t *testing.T) {
	first := buildHTML(t, indexPage)
	second := buildHTML(t, indexPage)

	require.Equal(t, first.InteractiveIndices(), second.InteractiveIndices())
	for _, idx := range first.InteractiveIndices() {
		a, _ := first.GetSelector(idx)
		b, _ := second.GetSelector(idx)
		assert.Equal(t, a, b)

		na, _ := first.FindNodeByIndex(idx)
		nb, _ := second.FindNodeByIndex(idx)
		assert.Equal(t, na.TagName, nb.TagName)
		assert.Equal(t, na.Text(), nb.Text())
	}
}

func TestIndex_UniqueAndSound(t *testing.T) {
	tree := buildHTML(t, indexPage)

	seen := map[int]bool{}
	tree.Root.Walk(func(n *entity.ElementNode, _ int) bool {
		if n.Index != nil {
			assert.False(t, seen[*n.Index], "index %d used twice", *n.Index)
			seen[*n.Index] = true
			locator, ok := tree.GetSelector(*n.Index)
			assert.True(t, ok)
			assert.NotEmpty(t, locator)
		}
		return true
	})
	assert.Len(t, seen, tree.SelectorMap.Len())
}

func TestIndex_AttributeLocators(t *testing.T) {
	tree := buildHTML(t, `<body>
		<button id="dup">A</button>
		<button id="dup">B</button>
		<button data-testid="go">C</button>
		<button id="1st">D</button>
		<div role="button" id="has space">E</div>
	</body>`)

	want := []string{
		"body > button:nth-of-type(1)",
		"body > button:nth-of-type(2)",
		`[data-testid="go"]`,
		`button[id="1st"]`,
		`div[id="has space"]`,
	}
	for idx, locator := range want {
		got, ok := tree.GetSelector(idx)
		require.True(t, ok)
		assert.Equal(t, locator, got)
	}
}

func TestIndex_SkipsHiddenAndUnlocatable(t *testing.T) {
	root := raw("body").with(
		raw("div", "hidden", "").with(raw("button")),
		raw("x_widget", "role", "button"),
		raw("button"),
	)

	tree, err := Build(root)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, tree.InteractiveIndices())
	widget := tree.Root.Children[1]
	assert.True(t, widget.IsInteractive)
	assert.Nil(t, widget.Index)

	locator, ok := tree.GetSelector(0)
	require.True(t, ok)
	assert.Equal(t, "body > button", locator)
}

func TestIndex_ReplacesExistingIndices(t *testing.T) {
	root := entity.NewElementNode("body")
	root.IsVisible = true
	stale := entity.NewElementNode("p")
	stale.SetIndex(7)
	root.AddChild(stale)
	button := entity.NewElementNode("button")
	button.IsVisible = true
	button.IsInteractive = true
	root.AddChild(button)

	tree, err := Index(root)
	require.NoError(t, err)

	assert.Nil(t, stale.Index)
	require.NotNil(t, button.Index)
	assert.Equal(t, 0, *button.Index)
	assert.Equal(t, 1, tree.CountInteractive())
}
