package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rosmsg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROSMSG_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	want := Default()
	assert.Empty(t, cfg.Paths)
	assert.Equal(t, want.Generate, cfg.Generate)
	assert.Equal(t, want.Export, cfg.Export)
	assert.Equal(t, want.Log, cfg.Log)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
paths:
  - ./defs
  - /opt/ros/share/
generate:
  output: gen
  prefix: example.com/robot/gen
export:
  format: JSON
log:
  level: debug
  outputs: [stdout, logs/rosmsg.log]
  rotation:
    enable: true
    max_backups: 9
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"defs", "/opt/ros/share"}, cfg.Paths)
	assert.Equal(t, GenerateConfig{Output: "gen", Prefix: "example.com/robot/gen", Registry: DefaultPrefix}, cfg.Generate)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"stdout", "logs/rosmsg.log"}, cfg.Log.Outputs)
	assert.True(t, cfg.Log.Rotation.Enable)
	assert.Equal(t, 9, cfg.Log.Rotation.MaxBackups)
	assert.Equal(t, 50, cfg.Log.Rotation.MaxSizeMB, "unset keys keep defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("ROSMSG_LOG_LEVEL", "error")
	t.Setenv("ROSMSG_EXPORT_FORMAT", "cbor")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "cbor", cfg.Export.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"empty prefix", "generate:\n  prefix: \"\"\n"},
		{"bad yaml", "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}
