// Package config handles configuration loading for tools built on the
// bpost API client.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows the account
// passphrase to be injected at runtime instead of living in the file.
//
// # Example Configuration
//
//	account:
//	  id: "107423"
//	  passphrase: ${BPOST_PASSPHRASE}
//
//	api:
//	  url: https://api-parcel.bpost.be/services/shm
//	  timeout: 30s
//	  userAgent: my-shop/1.0
//
//	locator:
//	  url: http://pudo.bpost.be/Locator
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Account AccountConfig `yaml:"account"`
	API     APIConfig     `yaml:"api"`
	Locator LocatorConfig `yaml:"locator"`
}

// AccountConfig holds the service credentials
type AccountConfig struct {
	ID         string `yaml:"id"`
	Passphrase string `yaml:"passphrase"`
}

// APIConfig holds endpoint and transport settings
type APIConfig struct {
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

// LocatorConfig holds the pick-up point search endpoint
type LocatorConfig struct {
	URL string `yaml:"url"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.URL == "" {
		c.API.URL = "https://api-parcel.bpost.be/services/shm"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = "bpost-api-library/1.0"
	}
	if c.Locator.URL == "" {
		c.Locator.URL = "http://pudo.bpost.be/Locator"
	}
}

func (c *Config) validate() error {
	if c.Account.ID == "" {
		return fmt.Errorf("account.id is required")
	}
	if c.Account.Passphrase == "" {
		return fmt.Errorf("account.passphrase is required")
	}
	return nil
}
