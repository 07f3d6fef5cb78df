package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("ODDS_API_KEY", "test_key")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test_key", cfg.Odds.APIKey)
	assert.Equal(t, "https://api.the-odds-api.com", cfg.Odds.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Odds.Timeout)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 45*time.Second, cfg.Cache.TTL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("ODDS_API_KEY", "test_key")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestNew_MissingCredentialFails(t *testing.T) {
	t.Setenv("ODDS_API_KEY", "")

	_, err := New()
	assert.Error(t, err)
}
