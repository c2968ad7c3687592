package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	DataDir     string `env:"DATA_DIR" envDefault:"pb_data"`
	AssetsDir   string `env:"ASSETS_DIR" envDefault:"attached_assets/generated_images"`

	// Redis configuration, optional
	RedisURL       string `env:"REDIS_URL"`
	ContactChannel string `env:"CONTACT_CHANNEL" envDefault:"contact-messages"`

	// PubNub configuration, optional
	PubNubPublishKey   string `env:"PUBNUB_PUBLISH_KEY"`
	PubNubSubscribeKey string `env:"PUBNUB_SUBSCRIBE_KEY"`
	PubNubSecretKey    string `env:"PUBNUB_SECRET_KEY"`

	// Notification configuration
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`

	// Gallery configuration
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"4s"`

	// Monitoring
	EnableMetrics bool `env:"ENABLE_METRICS" envDefault:"true"`
}

// LoadConfig reads an optional .env file from the working directory and
// then the process environment.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) RedisEnabled() bool {
	return c.RedisURL != ""
}

func (c *Config) PubNubEnabled() bool {
	return c.PubNubPublishKey != "" && c.PubNubSubscribeKey != ""
}
