package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_ValidConfig(t *testing.T) {
	// Создаем временный конфиг файл
	configContent := `
env: test
data_dir: "testdata"
http_server:
  addresshttp: ":8081"
  timeouthttp: 30s
  idle_timeout: 60s
redis_connection:
  addressredis: "localhost:6379"
  password: "redis_pass"
  user: "redis_user"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
session:
  cookie_name: "session_id"
  session_ttl: 24h
external_api:
  exchange_rate_url: "https://api.exchangerate-api.com"
  news_api_url: "https://newsapi.org/v2"
  news_api_key: "test_key"
  client_timeout: 10s
`

	tmpFile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)

	t.Setenv("CONFIG_PATH", tmpFile.Name())

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "testdata", cfg.DataDir)
	assert.Equal(t, ":8081", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "localhost:6379", cfg.AddressRedis)
	assert.Equal(t, "redis_pass", cfg.Password)
	assert.Equal(t, "redis_user", cfg.User)
	assert.Equal(t, 1, cfg.DB)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, 10*time.Second, cfg.TimeoutRedis)
	assert.Equal(t, "session_id", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "https://api.exchangerate-api.com", cfg.ExchangeRateURL)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPIURL)
	assert.Equal(t, "test_key", cfg.NewsAPIKey)
	assert.Equal(t, 10*time.Second, cfg.ClientTimeout)
}

func TestConfig_DefaultValues(t *testing.T) {
	// Минимальный конфиг: всё остальное берётся из env-default
	configContent := `
env: test
`

	tmpFile, err := os.CreateTemp(t.TempDir(), "minimal_config_*.yaml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)

	t.Setenv("CONFIG_PATH", tmpFile.Name())

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "localhost:8081", cfg.AddressHTTP)
	assert.Equal(t, 4*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "", cfg.AddressRedis)
	assert.Equal(t, "session_id", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "https://api.exchangerate-api.com", cfg.ExchangeRateURL)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPIURL)
	assert.Equal(t, 10*time.Second, cfg.ClientTimeout)
}
