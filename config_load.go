package bento

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "BENTO"

// fileConfig mirrors the keys accepted by LoadConfig.
type fileConfig struct {
	PublishableKey string        `mapstructure:"publishable_key"`
	SecretKey      string        `mapstructure:"secret_key"`
	SiteUUID       string        `mapstructure:"site_uuid"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads a Config from an optional file and the environment. The
// file format follows its extension (.yaml, .json, .toml and the other
// formats viper supports). Environment variables take precedence over the
// file:
//
//	BENTO_PUBLISHABLE_KEY, BENTO_SECRET_KEY, BENTO_SITE_UUID,
//	BENTO_BASE_URL, BENTO_TIMEOUT (a Go duration such as "10s")
//
// An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	vip := viper.New()

	if path != "" {
		vip.SetConfigFile(path)
	}

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	setDefaults(vip)

	for _, key := range []string{"publishable_key", "secret_key", "site_uuid", "base_url", "timeout"} {
		if err := vip.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var fc fileConfig
	if err := vip.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return NewConfigBuilder().
		PublishableKey(fc.PublishableKey).
		SecretKey(fc.SecretKey).
		SiteUUID(fc.SiteUUID).
		BaseURL(fc.BaseURL).
		Timeout(fc.Timeout).
		Build()
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("base_url", DefaultBaseURL)
	vip.SetDefault("timeout", DefaultTimeout)
}
