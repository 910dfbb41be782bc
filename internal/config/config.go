package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the CLI's client configuration. It is loaded once at startup
// and passed explicitly into the client constructor; nothing here is ambient
// global state.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Verbose bool
}

// Load reads configuration from environment variables, with an optional .env
// file in the working directory taking lower precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// a missing .env is fine, env vars may still be set
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !strings.Contains(err.Error(), "no such file") {
				return nil, fmt.Errorf("read .env: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		BaseURL: strings.TrimRight(v.GetString("TIXBIT_BASE_URL"), "/"),
		APIKey:  v.GetString("TIXBIT_API_KEY"),
		Timeout: v.GetDuration("TIXBIT_TIMEOUT"),
		Verbose: v.GetBool("TIXBIT_VERBOSE"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TIXBIT_BASE_URL", "https://tixbit.com")
	v.SetDefault("TIXBIT_API_KEY", "")
	v.SetDefault("TIXBIT_TIMEOUT", "15s")
	v.SetDefault("TIXBIT_VERBOSE", false)
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid base url: %s", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	return nil
}
