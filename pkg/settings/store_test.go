package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okaire/latexify/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	st := settings.NewStore(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := st.Load()
	require.NoError(t, err)

	assert.Equal(t, settings.Default(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := settings.NewStore(filepath.Join(t.TempDir(), "nested", "config.yaml"))

	want := settings.Settings{
		OllamaModel: "mathstral",
		LLMPrompt:   "to latex: {input}",
		KeepAlive:   "-1",
	}
	require.NoError(t, st.Save(want))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_ExpandsEnvReferences(t *testing.T) {
	t.Setenv("LATEXIFY_MODEL", "llama3:8b")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ollama_model: ${LATEXIFY_MODEL}\n"), 0o600))

	cfg, err := settings.NewStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "llama3:8b", cfg.OllamaModel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep_alive: \"10m\"\n"), 0o600))

	cfg, err := settings.NewStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "10m", cfg.KeepAlive)
	assert.Equal(t, "llama2", cfg.OllamaModel)
	assert.Equal(t, settings.DefaultPrompt, cfg.LLMPrompt)
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := settings.NewStore(path).Load()
	assert.Error(t, err)
}

func TestHasPlaceholder(t *testing.T) {
	cfg := settings.Default()
	assert.True(t, cfg.HasPlaceholder())

	cfg.LLMPrompt = "static prompt"
	assert.False(t, cfg.HasPlaceholder())
}
