package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matjam/dvdlogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/dvd")

	assert.Equal(t, "", CanonicalPath(""))
	assert.Equal(t, "/home/dvd", CanonicalPath("~"))
	assert.Equal(t, "/home/dvd/logo.png", CanonicalPath("~/logo.png"))
	assert.Equal(t, "resources/logo.png", CanonicalPath("resources/logo.png"))
}

func TestInstallDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	InstallDefaultConfig()

	path := filepath.Join(dir, "dvdlogo", "dvdlogo.toml")
	assert.Equal(t, path, ConfigPath())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dvdlogo.DefaultConfig, string(data))

	// an existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("title = \"mine\"\n"), 0644))
	InstallDefaultConfig()
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "title = \"mine\"\n", string(data))
}
