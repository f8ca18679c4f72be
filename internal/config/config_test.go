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

func TestFromReaderDefaults(t *testing.T) {
	cfg, err := FromReader(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 0, cfg.HTTP.RateLimit)
	assert.Equal(t, time.Minute, cfg.HTTP.RateWindow)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "DocuGroup", cfg.Site.Title)
	assert.Equal(t, "es", cfg.Site.Lang)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.HTTP.TrustedProxies)
}

func TestFromReaderOverrides(t *testing.T) {
	in := `
http:
  address: "127.0.0.1:9000"
  rate_limit: 30
  rate_window: 10s
  trusted_proxies: ["10.0.0.0/8", "192.0.2.1"]
environment: production
logging:
  level: debug
  format: text
site:
  title: DocuGroup (dev)
`
	cfg, err := FromReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Address)
	assert.Equal(t, 30, cfg.HTTP.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RateWindow)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.HTTP.TrustedProxies)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "DocuGroup (dev)", cfg.Site.Title)
	assert.Equal(t, "es", cfg.Site.Lang)
}

func TestFromReaderRejectsUnknownFields(t *testing.T) {
	_, err := FromReader(strings.NewReader("database:\n  url: postgres://x\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	in := `
http:
  rate_limit: -1
  rate_window: -1s
  trusted_proxies: ["10.0.0.0/99", "proxy.local"]
logging:
  level: loud
  format: xml
`
	_, err := FromReader(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http.rate_limit")
	assert.Contains(t, err.Error(), "http.rate_window must not be negative")
	assert.Contains(t, err.Error(), `invalid address or CIDR "10.0.0.0/99"`)
	assert.Contains(t, err.Error(), `invalid address or CIDR "proxy.local"`)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  lang: en\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Site.Lang)
}
