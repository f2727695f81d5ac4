package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func unsetLater(t *testing.T, keys ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestNewEnvServiceFrom_LoadsBaseThenAppEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "ENVTEST_BASE=base\nENVTEST_SHARED=from-base\n")
	writeFile(t, filepath.Join(dir, ".env.ci"), "ENVTEST_SHARED=from-ci\n")
	t.Setenv("APP_ENV", "ci")
	unsetLater(t, "ENVTEST_BASE", "ENVTEST_SHARED")

	svc := NewEnvServiceFrom(dir)

	assert.Equal(t, "ci", svc.AppEnv())
	assert.Len(t, svc.Loaded(), 2)
	assert.Equal(t, "base", svc.Get("ENVTEST_BASE"))
	assert.Equal(t, "from-ci", svc.Get("ENVTEST_SHARED"))
}

func TestNewEnvServiceFrom_MissingFiles(t *testing.T) {
	t.Setenv("APP_ENV", "")

	svc := NewEnvServiceFrom(t.TempDir())

	assert.Equal(t, "dev", svc.AppEnv())
	assert.Empty(t, svc.Loaded())
}

func TestEnvService_Getters(t *testing.T) {
	svc := &EnvService{}
	t.Setenv("ENVTEST_BOOL", "true")
	t.Setenv("ENVTEST_BAD_BOOL", "maybe")
	t.Setenv("ENVTEST_INT", "42")
	t.Setenv("ENVTEST_BAD_INT", "forty")
	t.Setenv("ENVTEST_STR", " value ")
	t.Setenv("ENVTEST_BLANK", "   ")

	assert.True(t, svc.GetBool("ENVTEST_BOOL", false))
	assert.True(t, svc.GetBool("ENVTEST_BAD_BOOL", true))
	assert.False(t, svc.GetBool("ENVTEST_UNSET", false))

	assert.Equal(t, 42, svc.GetInt("ENVTEST_INT", 0))
	assert.Equal(t, 7, svc.GetInt("ENVTEST_BAD_INT", 7))

	assert.Equal(t, "value", svc.GetWithDefault("ENVTEST_STR", "x"))
	assert.Equal(t, "x", svc.GetWithDefault("ENVTEST_BLANK", "x"))
	assert.Equal(t, "x", svc.GetWithDefault("ENVTEST_UNSET", "x"))
}

func TestEnvService_MustGet(t *testing.T) {
	svc := &EnvService{}
	t.Setenv("ENVTEST_REQUIRED", "here")

	assert.Equal(t, "here", svc.MustGet("ENVTEST_REQUIRED"))
	assert.Panics(t, func() { svc.MustGet("ENVTEST_NOT_THERE") })
}
