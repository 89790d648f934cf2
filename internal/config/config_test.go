package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a file that does not exist so only defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.IncludeHidden)
	assert.False(t, cfg.MergeSimilar)
	assert.True(t, cfg.Export.Markdown)
	assert.True(t, cfg.Export.JSON)
	assert.Equal(t, "report", cfg.Export.Dir)
	assert.True(t, cfg.Output.Color)
	assert.NotEmpty(t, cfg.ScanPaths)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `
scan_paths:
  - /srv/code
  - /srv/archive
include_hidden: true
merge_similar: true
export:
  markdown: false
  json: true
  dir: /tmp/reports
output:
  color: false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/code", "/srv/archive"}, cfg.ScanPaths)
	assert.True(t, cfg.IncludeHidden)
	assert.True(t, cfg.MergeSimilar)
	assert.False(t, cfg.Export.Markdown)
	assert.True(t, cfg.Export.JSON)
	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
	assert.False(t, cfg.Output.Color)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan_paths: [unclosed"), 0o644))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "code"), expandPath("~/code"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "relative", expandPath("relative"))
}

func TestDBPath_UnderConfigDir(t *testing.T) {
	assert.Equal(t, filepath.Join(ConfigDir(), DefaultDBName), DBPath())
}
