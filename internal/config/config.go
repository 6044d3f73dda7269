package config

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// EnvProfile names the environment variable that overrides the profile dir.
const EnvProfile = "FIREFOXCSS_PROFILE"

// Config represents the optional firefoxcss config.yaml.
type Config struct {
	// Profile is an explicit Firefox profile directory. When empty the
	// default profile from profiles.ini is used.
	Profile string `yaml:"profile,omitempty"`
	// FetchTimeout bounds git clone, e.g. "2m". Empty means no limit.
	FetchTimeout string `yaml:"fetch_timeout,omitempty"`
}

// Parse parses config.yaml bytes into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Timeout(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path. A missing file yields the
// zero Config and no error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Timeout returns FetchTimeout as a duration, zero when unset.
func (c Config) Timeout() (time.Duration, error) {
	if c.FetchTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("parsing fetch_timeout %q: %w", c.FetchTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parsing fetch_timeout %q: must not be negative", c.FetchTimeout)
	}
	return d, nil
}

// ResolveProfile picks the profile directory by precedence: flag, then the
// FIREFOXCSS_PROFILE environment variable, then the config file. An empty
// result means the caller should fall back to profiles.ini discovery.
func (c Config) ResolveProfile(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvProfile); env != "" {
		return env
	}
	return c.Profile
}
