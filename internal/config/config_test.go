package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomlshield/tomlshield/internal/scan"
)

// isolate points the config dir at a temp directory and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, v := range []string{"TOMLSHIELD_MARKER", "TOMLSHIELD_FORMAT", "TOMLSHIELD_CHECK_VALUES", "TOMLSHIELD_FAIL_ON_FINDINGS"} {
		t.Setenv(v, "")
	}
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, scan.DefaultMarker, cfg.Marker)
	assert.True(t, cfg.CheckValues)
	assert.False(t, cfg.IncludeComments)
	assert.False(t, cfg.RemoveComments)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, ".bak", cfg.BackupSuffix)
	assert.True(t, cfg.FailOnFindings)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Marker = "[HIDDEN]"
	cfg.IncludeComments = true

	opts := cfg.Options()
	assert.Equal(t, scan.Options{
		Marker:          "[HIDDEN]",
		CheckValues:     true,
		IncludeComments: true,
	}, opts)
	require.NoError(t, opts.Validate())
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileMerge(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "tomlshield")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	file := "marker = \"[X]\"\ncheck_values = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(file), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "[X]", cfg.Marker)
	assert.False(t, cfg.CheckValues, "file set check_values = false")
	// Keys the file did not set keep their defaults
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.FailOnFindings)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "tomlshield")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("marker = \"from-file\"\n"), 0o644))
	t.Setenv("TOMLSHIELD_MARKER", "from-env")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Marker)
}

func TestLoad_OverridesBeatEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TOMLSHIELD_FORMAT", "json")

	cfg, err := Load(map[string]string{"format": "sarif", "checkValues": "false"})
	require.NoError(t, err)
	assert.Equal(t, "sarif", cfg.Format)
	assert.False(t, cfg.CheckValues)
}

func TestSaveAndLoadFile(t *testing.T) {
	isolate(t)

	want := Default()
	want.Marker = "[GONE]"
	want.RemoveComments = true
	require.NoError(t, Save(want))

	got, md, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, md.IsDefined("marker"))
}

func TestSetField(t *testing.T) {
	cfg := Default()

	require.NoError(t, SetField(&cfg, "marker", "[M]"))
	assert.Equal(t, "[M]", cfg.Marker)

	require.NoError(t, SetField(&cfg, "check_values", "false"))
	assert.False(t, cfg.CheckValues)

	require.NoError(t, SetField(&cfg, "fail_on_findings", "false"))
	assert.False(t, cfg.FailOnFindings)

	assert.Error(t, SetField(&cfg, "check_values", "maybe"))
	assert.Error(t, SetField(&cfg, "no_such_key", "x"))
}
