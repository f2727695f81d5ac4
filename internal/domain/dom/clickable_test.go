package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickableElements_Format(t *testing.T) {
	tree, err := BuildFromHTML(strings.NewReader(`<html><body>
		<h1>Title</h1>
		<button id="submit">Submit</button>
		<a href="/docs">Read the docs</a>
		<input name="q">
	</body></html>`))
	require.NoError(t, err)

	elements, count := ClickableElements(tree)

	assert.Equal(t, 3, count)
	assert.Equal(t, "[0]<button>Submit</button>\n[1]<a>Read the docs</a>\n[2]<input>", elements)
}

func TestClickableElements_Empty(t *testing.T) {
	tree, err := BuildFromHTML(strings.NewReader(`<body><p>Nothing to click</p></body>`))
	require.NoError(t, err)

	elements, count := ClickableElements(tree)

	assert.Equal(t, "", elements)
	assert.Equal(t, 0, count)
}

func TestClickableElements_TruncatesAt100(t *testing.T) {
	long := strings.Repeat("a", 150)
	tree, err := BuildFromHTML(strings.NewReader(`<body><button>` + long + `</button></body>`))
	require.NoError(t, err)

	elements, _ := ClickableElements(tree)

	text := strings.TrimSuffix(strings.TrimPrefix(elements, "[0]<button>"), "</button>")
	assert.Len(t, text, 100)
	assert.True(t, strings.HasSuffix(text, "..."))
	assert.Equal(t, strings.Repeat("a", 97), strings.TrimSuffix(text, "..."))

	node, ok := tree.FindNodeByIndex(0)
	require.True(t, ok)
	assert.Contains(t, RenderSnapshot(node), long, "the snapshot path keeps 150 characters")
}
