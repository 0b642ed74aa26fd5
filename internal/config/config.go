package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://commerce.db"`

	// MessageProvider selects the notification delivery channel:
	// "email", "sms" or "console".
	MessageProvider string `env:"MESSAGE_PROVIDER" envDefault:"console"`
	SenderEmail     string `env:"SENDER_EMAIL" envDefault:"noreply@localhost"`
	SenderPhone     string `env:"SENDER_PHONE" envDefault:"+10000000000"`
}

// Load reads configuration from the environment, after loading a local
// .env file if one exists.
func Load() (Config, error) {
	// The .env file is optional; a missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.MessageProvider {
	case "email", "sms", "console":
	default:
		return fmt.Errorf("MESSAGE_PROVIDER must be one of email, sms, console, got %q", c.MessageProvider)
	}
	return nil
}
