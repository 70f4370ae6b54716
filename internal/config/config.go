package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backend names accepted by DURABLE_BACKEND and EPHEMERAL_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Reply provider names accepted by CHAT_PROVIDER.
const (
	ProviderLocal  = "local"
	ProviderRemote = "remote"
)

type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabasePath     string        `mapstructure:"DATABASE_PATH"`
	DurableBackend   string        `mapstructure:"DURABLE_BACKEND"`
	EphemeralBackend string        `mapstructure:"EPHEMERAL_BACKEND"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	SessionTTL       time.Duration `mapstructure:"SESSION_TTL"`

	MaxGuestMessages int           `mapstructure:"CHAT_MAX_GUEST_MESSAGES"`
	QuotaWindow      time.Duration `mapstructure:"QUOTA_WINDOW"`
	MaxMessageLength int           `mapstructure:"CHAT_MAX_MESSAGE_LENGTH"`
	ResponseDelay    time.Duration `mapstructure:"CHAT_RESPONSE_DELAY"`
	ChatProvider     string        `mapstructure:"CHAT_PROVIDER"`
	ChatModelName    string        `mapstructure:"CHAT_MODEL_NAME"`
	RemoteChatURL    string        `mapstructure:"REMOTE_CHAT_URL"`
	RemoteTimeout    time.Duration `mapstructure:"REMOTE_CHAT_TIMEOUT"`
	RemoteAttempts   int           `mapstructure:"REMOTE_CHAT_ATTEMPTS"`
	RemoteRetryDelay time.Duration `mapstructure:"REMOTE_CHAT_RETRY_DELAY"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetDefault("DATABASE_PATH", "/data/portfolio.db")
	viper.SetDefault("DURABLE_BACKEND", BackendSQLite)
	viper.SetDefault("EPHEMERAL_BACKEND", BackendMemory)
	viper.SetDefault("REDIS_ADDR", "redis:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_TTL", "30m")

	viper.SetDefault("CHAT_MAX_GUEST_MESSAGES", 3)
	viper.SetDefault("QUOTA_WINDOW", "0s")
	viper.SetDefault("CHAT_MAX_MESSAGE_LENGTH", 1000)
	viper.SetDefault("CHAT_RESPONSE_DELAY", "0s")
	viper.SetDefault("CHAT_PROVIDER", ProviderLocal)
	viper.SetDefault("CHAT_MODEL_NAME", "mock-gpt-4")
	viper.SetDefault("REMOTE_CHAT_URL", "")
	viper.SetDefault("REMOTE_CHAT_TIMEOUT", "10s")
	viper.SetDefault("REMOTE_CHAT_ATTEMPTS", 1)
	viper.SetDefault("REMOTE_CHAT_RETRY_DELAY", "500ms")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects combinations the application cannot start with.
func (c *Config) Validate() error {
	switch c.DurableBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown DURABLE_BACKEND %q", c.DurableBackend)
	}
	switch c.EphemeralBackend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown EPHEMERAL_BACKEND %q", c.EphemeralBackend)
	}
	switch c.ChatProvider {
	case ProviderLocal:
	case ProviderRemote:
		if c.RemoteChatURL == "" {
			return fmt.Errorf("REMOTE_CHAT_URL is required when CHAT_PROVIDER is %q", ProviderRemote)
		}
	default:
		return fmt.Errorf("unknown CHAT_PROVIDER %q", c.ChatProvider)
	}
	if c.MaxGuestMessages < 1 {
		return fmt.Errorf("CHAT_MAX_GUEST_MESSAGES must be at least 1, got %d", c.MaxGuestMessages)
	}
	if c.MaxMessageLength < 1 {
		return fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be at least 1, got %d", c.MaxMessageLength)
	}
	if c.QuotaWindow < 0 || c.ResponseDelay < 0 || c.SessionTTL < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// UsesRedis reports whether any storage backend needs a Redis client.
func (c *Config) UsesRedis() bool {
	return c.DurableBackend == BackendRedis || c.EphemeralBackend == BackendRedis
}
