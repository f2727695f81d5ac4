package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTML_Body(t *testing.T) {
	node, err := ParseHTMLString(`<html><head><title>x</title></head><body>
		<div id="main" class="box">Hello <b>world</b><script>alert(1)</script></div>
		<!-- comment -->
	</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "body", node.Tag)
	require.Len(t, node.Children, 1)

	div := node.Children[0]
	assert.Equal(t, "div", div.Tag)
	assert.Equal(t, "Hello world", div.Text)
	id, ok := div.Attributes.Get("id")
	require.True(t, ok)
	assert.Equal(t, "main", id)
	assert.Equal(t, "class", div.Attributes[1].Name)

	require.Len(t, div.Children, 2, "excluded elements stay in the tree")
	assert.Equal(t, "script", div.Children[1].Tag)
}

func TestParseHTML_Fragment(t *testing.T) {
	node, err := ParseHTMLString(`<button>Go</button>`)
	require.NoError(t, err)

	assert.Equal(t, "body", node.Tag)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "button", node.Children[0].Tag)
}

func TestBuildFromHTML_SnapshotScenario(t *testing.T) {
	tree := buildHTML(t, `<body>
		<h1>Welcome</h1>
		<button>Click me</button>
		<a href="https://example.com">Example Link</a>
		<ul><li>First</li></ul>
		<input type="email" placeholder="Email">
	</body>`)

	out := RenderSnapshot(tree.Root)

	assert.Equal(t, "# Welcome\n[0] Click me\n[1] Example Link (https://example.com)\n  • First\n[2] <input type=\"email\" placeholder=\"Email\">,\n", out)
}
