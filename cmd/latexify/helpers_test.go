package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "a b", truncate("a\nb", 20), "newlines become spaces")
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "whatever", truncate("whatever", 0), "non-positive width disables truncation")
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LATEXIFY_TEST_VAR=hello\n"), 0o600))

	t.Setenv("LATEXIFY_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("LATEXIFY_TEST_VAR"))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "hello", os.Getenv("LATEXIFY_TEST_VAR"))
}
