package notify

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Enabled    bool   `mapstructure:"enabled"`
}

// LoadConfig reads alerting settings from a yaml profile. A missing file is
// not an error path callers need; use Enabled=false in the file to turn
// alerting off.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("enabled", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read alert config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse alert config: %w", err)
	}
	if cfg.Enabled && cfg.WebhookURL == "" {
		return nil, fmt.Errorf("alerting enabled but webhook_url is empty")
	}
	return &cfg, nil
}
