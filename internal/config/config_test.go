package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohmanhakim/safeurl/internal/config"
)

func TestWithDefault(t *testing.T) {
	cfg := config.WithDefault()
	assert.Equal(t, "utf-8", cfg.Encoding())
	assert.Equal(t, "", cfg.BaseURL())
	assert.Equal(t, config.SerializePreserve, cfg.Canonicalize())
	assert.False(t, cfg.ExcludeFragment())
}

func TestBuilderOverrides(t *testing.T) {
	cfg := config.WithDefault().
		WithEncoding("latin1").
		WithBaseURL("http://example.com/").
		WithExcludeFragment(true)
	cfg, err := cfg.WithCanonicalize(config.SerializeCanonical)
	require.NoError(t, err)

	assert.Equal(t, "latin1", cfg.Encoding())
	assert.Equal(t, "http://example.com/", cfg.BaseURL())
	assert.Equal(t, config.SerializeCanonical, cfg.Canonicalize())
	assert.True(t, cfg.ExcludeFragment())
}

func TestWithCanonicalizeRejectsUnknownMode(t *testing.T) {
	_, err := config.WithDefault().WithCanonicalize("sideways")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"encoding": "latin1",
		"base_url": "http://example.com/",
		"canonicalize": "standard",
		"exclude_fragment": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.WithConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "latin1", cfg.Encoding())
	assert.Equal(t, "http://example.com/", cfg.BaseURL())
	assert.Equal(t, config.SerializeStandard, cfg.Canonicalize())
	assert.True(t, cfg.ExcludeFragment())
}

func TestWithConfigFileErrors(t *testing.T) {
	_, err := config.WithConfigFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = config.WithConfigFile(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
