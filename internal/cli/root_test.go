package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohmanhakim/safeurl/internal/config"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSanitizeCommand(t *testing.T) {
	out := runCommand(t, "sanitize", "http://Example.COM:80/a b")
	assert.Equal(t, "http://example.com:80/a%20b\n", out)
}

func TestSanitizeCommandCanonical(t *testing.T) {
	out := runCommand(t, "sanitize", "--canonicalize", "canonical", "http://Example.COM:80/a b")
	assert.Equal(t, "http://example.com/a%20b\n", out)
	// Reset for other tests.
	canonicalize = config.SerializePreserve
}

func TestParseCommand(t *testing.T) {
	out := runCommand(t, "parse", "http://user@example.com:8080/a/b?q=1#f")
	assert.Contains(t, out, "Scheme: http\n")
	assert.Contains(t, out, "Username: user\n")
	assert.Contains(t, out, "Host: example.com\n")
	assert.Contains(t, out, "Port: 8080\n")
	assert.Contains(t, out, `Path segments: ["a" "b"]`)
	assert.Contains(t, out, "Query: q=1\n")
	assert.Contains(t, out, "Fragment: f\n")
}

func TestKeyCommand(t *testing.T) {
	out := runCommand(t, "key", "http://example.com/a")
	fields := strings.Fields(strings.TrimSpace(out))
	require.Len(t, fields, 2)
	assert.Len(t, fields[0], 64)
	assert.Equal(t, "http://example.com/a", fields[1])
}

func TestInitConfigFromFlags(t *testing.T) {
	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "utf-8", cfg.Encoding())
	assert.Equal(t, config.SerializePreserve, cfg.Canonicalize())
}
