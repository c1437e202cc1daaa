package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "table", cfg.Import.Mode)
	assert.Equal(t, "line", cfg.Import.Kind)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CHARMING_OUTPUT_PRETTY", "true")
	t.Setenv("CHARMING_LOG_LEVEL", "debug")
	t.Setenv("CHARMING_IMPORT_MODE", "charts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "charts", cfg.Import.Mode)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := "[log]\nformat = \"json\"\n\n[import]\nkind = \"bar\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "charming.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "bar", cfg.Import.Kind)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Cleanup(func() { os.Unsetenv("CHARMING_IMPORT_KIND") })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHARMING_IMPORT_KIND=scatter\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "scatter", cfg.Import.Kind)
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "charming.toml"), []byte("[log\nlevel ="), 0644))

	_, err := Load()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
