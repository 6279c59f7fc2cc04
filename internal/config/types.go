package config

import "github.com/flw-cn/go-gifbot"

// Trigger is a trigger rule as written in the config file.
type Trigger struct {
	Phrase    string   `yaml:"phrase" koanf:"phrase"`
	Responses []string `yaml:"responses" koanf:"responses"`
}

// Config is the top-level gifbot configuration, corresponding to .gifbot.yml.
type Config struct {
	Token     string    `yaml:"token,omitempty" koanf:"token"`
	TokenFile string    `yaml:"token_file" koanf:"token_file"`
	LogLevel  string    `yaml:"log_level" koanf:"log_level"`
	Debug     bool      `yaml:"debug" koanf:"debug"`
	Triggers  []Trigger `yaml:"triggers" koanf:"triggers"`
}

// Rules converts the configured triggers into bot rules.
func (c *Config) Rules() []gifbot.TriggerRule {
	rules := make([]gifbot.TriggerRule, 0, len(c.Triggers))
	for _, t := range c.Triggers {
		rules = append(rules, gifbot.TriggerRule{Phrase: t.Phrase, Candidates: t.Responses})
	}
	return rules
}
