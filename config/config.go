package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	Gemini    Gemini    `mapstructure:"gemini"`
	Market    Market    `mapstructure:"market"`
	Session   Session   `mapstructure:"session"`
	Cache     Cache     `mapstructure:"cache"`
	RateLimit RateLimit `mapstructure:"ratelimit"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
	// FilePath enables a rotated file sink in addition to stderr.
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type API struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Gemini struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	InsightModel        string        `mapstructure:"insight_model"`
	ChatModel           string        `mapstructure:"chat_model"`
	InsightTransport    string        `mapstructure:"insight_transport"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Market struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	Volatility   float64       `mapstructure:"volatility"`
	ChangeDrift  float64       `mapstructure:"change_drift"`
}

type Session struct {
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`
	// DefaultTheme is the mode every new visitor starts with.
	DefaultTheme string `mapstructure:"default_theme"`
	// MaxChatPerMinute throttles chat sends per visitor.
	MaxChatPerMinute int `mapstructure:"max_chat_per_minute"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type RateLimit struct {
	RequestPerSecond float64       `mapstructure:"request_per_second"`
	Burst            int           `mapstructure:"burst"`
	ExpiresIn        time.Duration `mapstructure:"expires_in"`
}

const (
	InsightTransportSDK  = "sdk"
	InsightTransportREST = "rest"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.max_size_mb", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age_days", 14)

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.shutdown_timeout", 10*time.Second)

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	v.SetDefault("gemini.insight_model", "gemini-2.5-flash")
	v.SetDefault("gemini.chat_model", "gemini-3-pro-preview")
	v.SetDefault("gemini.insight_transport", InsightTransportSDK)
	v.SetDefault("gemini.timeout", 30*time.Second)
	v.SetDefault("gemini.max_request_per_minute", 60)

	v.SetDefault("market.tick_interval", 3*time.Second)
	v.SetDefault("market.volatility", 0.002)
	v.SetDefault("market.change_drift", 0.1)

	v.SetDefault("session.cookie_name", "wf_session")
	v.SetDefault("session.ttl", 2*time.Hour)
	v.SetDefault("session.default_theme", "dark")
	v.SetDefault("session.max_chat_per_minute", 20)

	v.SetDefault("cache.default_expiration", 2*time.Hour)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)

	v.SetDefault("ratelimit.request_per_second", 10)
	v.SetDefault("ratelimit.burst", 30)
	v.SetDefault("ratelimit.expires_in", 3*time.Minute)
}

func Load() (*Config, error) {
	// .env is optional, real environment wins.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Gemini.APIKey == "" {
		// The credential has historically been provided as API_KEY.
		cfg.Gemini.APIKey = v.GetString("API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	// the feed scheduler has one second resolution
	if c.Market.TickInterval < time.Second {
		return fmt.Errorf("market.tick_interval must be at least 1s, got %s", c.Market.TickInterval)
	}
	if c.Market.Volatility <= 0 || c.Market.Volatility >= 1 {
		return fmt.Errorf("market.volatility must be in (0, 1)")
	}
	switch c.Gemini.InsightTransport {
	case InsightTransportSDK, InsightTransportREST:
	default:
		return fmt.Errorf("unknown gemini.insight_transport %q", c.Gemini.InsightTransport)
	}
	if c.Gemini.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("gemini.max_request_per_minute must be positive")
	}
	return nil
}
