package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/yeremiapane/fausse-reservations/utils"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DB struct {
		Driver string `envconfig:"DRIVER" default:"sqlite"`
		DSN    string `envconfig:"DSN" default:"fausse.db?_foreign_keys=on"`
	}

	TableCapacity         int `envconfig:"TABLE_CAPACITY" default:"30"`
	MaxAllocationAttempts int `envconfig:"MAX_ALLOCATION_ATTEMPTS" default:"5"`

	CORS struct {
		AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`
	}

	JWT struct {
		Secret      string `envconfig:"SECRET"`
		ExpireHours int    `envconfig:"EXPIRE_HOURS" default:"24"`
	}

	Staff struct {
		Name     string `envconfig:"NAME" default:"Floor Manager"`
		Email    string `envconfig:"EMAIL"`
		Password string `envconfig:"PASSWORD"`
	}

	RateLimit struct {
		Requests      int `envconfig:"REQUESTS" default:"50"`
		WindowSeconds int `envconfig:"WINDOW_SECONDS" default:"1"`
	} `envconfig:"RATE_LIMIT"`
}

// Load reads .env (if present) into the environment, then fills Config from it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf("no .env file loaded: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TableCapacity < 1 {
		return fmt.Errorf("TABLE_CAPACITY must be positive, got %d", c.TableCapacity)
	}
	if c.MaxAllocationAttempts < 1 {
		return fmt.Errorf("MAX_ALLOCATION_ATTEMPTS must be positive, got %d", c.MaxAllocationAttempts)
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.WindowSeconds < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW_SECONDS must be positive")
	}
	return nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpireHours) * time.Hour
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}
