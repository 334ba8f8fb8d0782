package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 3*time.Second, cfg.Market.TickInterval)
	assert.Equal(t, 0.002, cfg.Market.Volatility)
	assert.Equal(t, "dark", cfg.Session.DefaultTheme)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.InsightModel)
	assert.Equal(t, "gemini-3-pro-preview", cfg.Gemini.ChatModel)
	assert.Equal(t, InsightTransportSDK, cfg.Gemini.InsightTransport)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MARKET_TICK_INTERVAL", "5s")
	t.Setenv("GEMINI_INSIGHT_TRANSPORT", "rest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Market.TickInterval)
	assert.Equal(t, InsightTransportREST, cfg.Gemini.InsightTransport)
}

func TestLoad_LegacyAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Gemini.APIKey)
}

func TestLoad_SubSecondTick(t *testing.T) {
	t.Setenv("MARKET_TICK_INTERVAL", "250ms")

	_, err := Load()
	assert.ErrorContains(t, err, "tick_interval")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GEMINI_INSIGHT_TRANSPORT", "carrier-pigeon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Gemini: Gemini{InsightTransport: InsightTransportSDK, MaxRequestPerMinute: 60},
			Market: Market{TickInterval: time.Second, Volatility: 0.002},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero tick", mutate: func(c *Config) { c.Market.TickInterval = 0 }, wantErr: true},
		{name: "sub-second tick", mutate: func(c *Config) { c.Market.TickInterval = 500 * time.Millisecond }, wantErr: true},
		{name: "one second tick", mutate: func(c *Config) { c.Market.TickInterval = time.Second }},
		{name: "volatility too large", mutate: func(c *Config) { c.Market.Volatility = 1 }, wantErr: true},
		{name: "negative volatility", mutate: func(c *Config) { c.Market.Volatility = -0.1 }, wantErr: true},
		{name: "rest transport", mutate: func(c *Config) { c.Gemini.InsightTransport = InsightTransportREST }},
		{name: "no request budget", mutate: func(c *Config) { c.Gemini.MaxRequestPerMinute = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
