package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 750*time.Millisecond, cfg.Terminal.Hold)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
seed: 42
sound: false
window:
  scale: 2
terminal:
  hold: 900ms
log:
  level: debug
  output: [run.log]
`))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.Sound)
	assert.Equal(t, Window{Scale: 2, TPS: 60}, cfg.Window)
	assert.Equal(t, Terminal{Hz: 60, Hold: 900 * time.Millisecond}, cfg.Terminal)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, []string{"run.log"}, cfg.Log.Output)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: "colour: red\n"},
		{name: "bad scale", doc: "window: {scale: 0}\n"},
		{name: "bad hz", doc: "headless: {hz: -1}\n"},
		{name: "bad hold", doc: "terminal: {hold: 0s}\n"},
		{name: "unparsable hold", doc: "terminal: {hold: soon}\n"},
		{name: "not yaml", doc: "window: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headless:\n  ticks: 120\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Headless{Hz: 60, Ticks: 120}, cfg.Headless)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
