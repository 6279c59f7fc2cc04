package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/flw-cn/go-gifbot"
)

// ErrMissingToken is returned by ResolveToken when no API token can be found.
var ErrMissingToken = errors.New("missing API token")

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CHAT_BOT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults. Triggers are applied after unmarshalling, decoding
	// into a populated slice would merge the file's lists into the defaults.
	cfg := DefaultConfig()
	cfg.Triggers = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CHAT_BOT_TOKEN -> token, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if len(cfg.Triggers) == 0 {
		cfg.Triggers = DefaultTriggers()
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if err := gifbot.ValidateRules(c.Rules()); err != nil {
		return fmt.Errorf("invalid triggers: %w", err)
	}
	return nil
}

// ResolveToken returns the configured API token, falling back to the contents of
// token_file.
func (c *Config) ResolveToken() (string, error) {
	if token := strings.TrimSpace(c.Token); token != "" {
		return token, nil
	}
	if c.TokenFile == "" {
		return "", fmt.Errorf("%w: set %sTOKEN", ErrMissingToken, EnvPrefix)
	}
	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: set %sTOKEN or place it in %q", ErrMissingToken, EnvPrefix, c.TokenFile)
		}
		return "", fmt.Errorf("reading token file %s: %w", c.TokenFile, err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: %q is empty", ErrMissingToken, c.TokenFile)
	}
	return token, nil
}
