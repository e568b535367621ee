package xdisplay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(cfg *Config)
		expectErr   bool
	}{
		{description: "defaults", mutate: func(cfg *Config) {}},
		{description: "empty display", mutate: func(cfg *Config) { cfg.Display = "" }, expectErr: true},
		{description: "empty marker", mutate: func(cfg *Config) { cfg.Marker = "" }, expectErr: true},
		{description: "template without verb", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "Display" }, expectErr: true},
		{description: "template with two verbs", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "%d-%d" }, expectErr: true},
		{description: "padded integer verb", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "Display-%02d" }},
		{description: "hex verb", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "screen-%x" }},
		{description: "generic verb", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "Display-%v" }, expectErr: true},
		{description: "string verb", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "Display-%s" }, expectErr: true},
		{description: "empty template", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "" }, expectErr: true},
		{description: "escaped verb", mutate: func(cfg *Config) { cfg.AutoNameTemplate = "%%d" }, expectErr: true},
		{description: "buffer too small", mutate: func(cfg *Config) { cfg.NameBufferSize = 1 }, expectErr: true},
		{description: "fs without base URL", mutate: func(cfg *Config) { cfg.Store.Vendor = StoreFS }, expectErr: true},
		{description: "fs with base URL", mutate: func(cfg *Config) { cfg.Store = StoreConfig{Vendor: StoreFS, BaseURL: "/tmp/screens"} }},
		{description: "unknown log level", mutate: func(cfg *Config) { cfg.Log.Level = "trace" }, expectErr: true},
		{description: "silent log", mutate: func(cfg *Config) { cfg.Log.Level = "none" }},
	}

	for _, testCase := range testCases {
		cfg := DefaultConfig()
		testCase.mutate(cfg)
		err := cfg.Validate()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
	var nilConfig *Config
	assert.NoError(t, nilConfig.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("XDISPLAY_TEST_DISPLAY", ":1")
	URL := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(URL, []byte(`display: "${env.XDISPLAY_TEST_DISPLAY}"
autoName: true
store:
  vendor: memory
log:
  level: none
`), 0o644))

	cfg, err := LoadConfig(context.Background(), URL)
	require.NoError(t, err)
	assert.Equal(t, ":1", cfg.Display)
	assert.True(t, cfg.AutoName)
	assert.Equal(t, "Display-%d", cfg.AutoNameTemplate, "unset fields keep defaults")
	assert.Equal(t, 64, cfg.NameBufferSize)
	assert.Equal(t, "none", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	URL := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(URL, []byte("store:\n  vendor: redis\n"), 0o644))

	_, err := LoadConfig(context.Background(), URL)
	assert.Error(t, err)

	_, err = LoadConfig(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
