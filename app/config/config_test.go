package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "blogview.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"
shutdown_timeout = "3s"

[data]
dir = "/var/lib/blogview"

[log]
debug = true

[session]
ttl = "5m"

[view]
preview_length = 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, "/var/lib/blogview", cfg.Data.Dir)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL.Duration)
	assert.Equal(t, int64(10000), cfg.Session.Capacity, "unset keys keep their default")
	assert.Equal(t, 12, cfg.View.PreviewLength)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad duration", content: "[session]\nttl = \"soon\"\n"},
		{name: "unknown key", content: "[server]\nport = 80\n"},
		{name: "syntax error", content: "[server\n"},
		{name: "negative preview", content: "[view]\npreview_length = -1\n"},
		{name: "zero capacity", content: "[session]\ncapacity = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
