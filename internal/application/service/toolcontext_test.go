package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser-use/internal/domain/dom"
	"browser-use/internal/testutil/fakebrowser"
)

const page = `<body><button id="go">Go</button></body>`

func TestToolContext_ExtractsOnce(t *testing.T) {
	session := fakebrowser.New(page)
	tc := NewToolContext(session)
	assert.False(t, tc.HasDOM())

	first, err := tc.DOM(context.Background())
	require.NoError(t, err)
	second, err := tc.DOM(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, session.ExtractCount)
	assert.True(t, tc.HasDOM())
}

func TestToolContext_WithDOMSkipsExtraction(t *testing.T) {
	session := fakebrowser.New(page)
	tree, err := dom.BuildFromHTML(strings.NewReader(page))
	require.NoError(t, err)

	tc := NewToolContextWithDOM(session, tree)
	got, err := tc.DOM(context.Background())

	require.NoError(t, err)
	assert.Same(t, tree, got)
	assert.Zero(t, session.ExtractCount)
}

func TestToolContext_ExtractionError(t *testing.T) {
	session := fakebrowser.New(page)
	session.Err["extract_dom"] = errors.New("target closed")
	tc := NewToolContext(session)

	_, err := tc.DOM(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "target closed")
	assert.False(t, tc.HasDOM())
}

func TestToolContext_IDs(t *testing.T) {
	session := fakebrowser.New(page)
	a := NewToolContext(session)
	b := NewToolContext(session)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Same(t, session, a.Session())
}
