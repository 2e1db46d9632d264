package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc", RunMode: "longpoll"},
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeDefaultsRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = ""
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)

	cfg.Telegram.RunMode = "polling"
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeWebhookRequiresEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	assert.Error(t, Normalize(cfg))

	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	assert.NoError(t, Normalize(cfg))
}

func TestNormalizeQuotesDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, DefaultQuotesBaseURL, cfg.Quotes.BaseURL)
	assert.Equal(t, DefaultQuotesTimeoutSeconds, cfg.Quotes.TimeoutSeconds)
}

func TestNormalizeQuotesTrimsBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Quotes.BaseURL = " https://quotes.example.com/ "
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, "https://quotes.example.com", cfg.Quotes.BaseURL)

	cfg.Quotes.TimeoutSeconds = -1
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeRejectsBadExcludeUpdates(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"callback", "bogus"}
	assert.Error(t, Normalize(cfg))

	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, []string{"callback", "message"}, cfg.RateLimit.ExcludeUpdates)
}
