package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		snapshotFlagClickable = false
		toolsFlagJSON = false
		toolsFlagOpenAI = false
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSnapshotCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><h1>Welcome</h1><button>Click me</button></body></html>`), 0o600))

	out := execute(t, "snapshot", path)

	assert.Equal(t, "# Welcome\n[0] Click me\n\n1 interactive elements\n", out)
}

func TestSnapshotCommand_Clickable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<body><p>Intro</p><a href="/x">Go</a></body>`), 0o600))

	out := execute(t, "snapshot", "--clickable", path)

	assert.Equal(t, "[0]<a>Go</a>\n\n1 clickable elements\n", out)
}

func TestToolsCommand(t *testing.T) {
	out := execute(t, "tools")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], "click "), lines[0])
}

func TestToolsCommand_OpenAI(t *testing.T) {
	out := execute(t, "tools", "--openai")

	assert.Contains(t, out, `"type": "function"`)
	assert.Contains(t, out, `"name": "navigate"`)
}
