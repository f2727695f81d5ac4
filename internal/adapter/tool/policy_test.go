package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLPolicy_Unrestricted(t *testing.T) {
	policy, err := NewURLPolicy()
	require.NoError(t, err)

	assert.NoError(t, policy.Check("https://anything.test/path"))
	assert.NoError(t, policy.Check("file:///tmp/page.html"))
	assert.NoError(t, policy.Check("about:blank"))

	var none *URLPolicy
	assert.NoError(t, none.Check("http://localhost:8080/"))
}

func TestURLPolicy_Schemes(t *testing.T) {
	policy, err := NewURLPolicy()
	require.NoError(t, err)

	for _, raw := range []string{"javascript:alert(1)", "ftp://example.com", "example.com/no-scheme", ""} {
		assert.Error(t, policy.Check(raw), raw)
	}
}

func TestURLPolicy_HostPatterns(t *testing.T) {
	policy, err := NewURLPolicy("*.example.com", "  ", "LOCALHOST")
	require.NoError(t, err)

	assert.NoError(t, policy.Check("https://www.example.com/a"))
	assert.NoError(t, policy.Check("http://localhost:3000/"))
	assert.Error(t, policy.Check("https://example.com/"), "* does not match an empty label")
	assert.Error(t, policy.Check("https://a.b.example.com/"), "* stops at the dot separator")
	assert.Error(t, policy.Check("https://example.org/"))
}

func TestURLPolicy_URLPatterns(t *testing.T) {
	policy, err := NewURLPolicy("https://docs.example.org/**")
	require.NoError(t, err)

	assert.NoError(t, policy.Check("https://docs.example.org/guide/intro"))
	assert.Error(t, policy.Check("http://docs.example.org/guide"))
}

func TestURLPolicy_BadPattern(t *testing.T) {
	_, err := NewURLPolicy("[unclosed")
	assert.Error(t, err)
}
