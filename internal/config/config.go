package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server configuration, populated from the environment
type Config struct {
	Host string `env:"ETERNALDLE_HOST" envDefault:""`
	Port int    `env:"ETERNALDLE_PORT" envDefault:"8080"`

	// StorageType selects the storage backend: "memory" or "redis"
	StorageType string `env:"ETERNALDLE_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"ETERNALDLE_REDIS_URL" envDefault:"redis://localhost:6379"`

	// RosterPath is the JSON seed file used when storage holds no roster
	RosterPath string `env:"ETERNALDLE_ROSTER_PATH" envDefault:"data/characters.json"`

	SessionTTL time.Duration `env:"ETERNALDLE_SESSION_TTL" envDefault:"24h"`

	// AllowedOrigins are the frontend origins permitted to send the
	// session cookie cross-site; "*" echoes any origin
	AllowedOrigins []string `env:"ETERNALDLE_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// SecureCookies must be enabled behind HTTPS so the session cookie
	// can be SameSite=None for cross-site frontends
	SecureCookies bool `env:"ETERNALDLE_SECURE_COOKIES" envDefault:"false"`
}

// Load reads configuration from the environment, honoring a local .env
// file when present
func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
