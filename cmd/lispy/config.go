package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Prompt string   `yaml:"prompt"`
	Banner []string `yaml:"banner"`
	Quiet  bool     `yaml:"quiet"`
}

func defaultConfig() *Config {
	return &Config{
		Prompt: "lispy> ",
		Banner: []string{
			"Lispy Version 0.0.0.0.1",
			"Press Ctrl+c to Exit",
			"",
		},
	}
}

// loadConfig reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value.
func loadConfig(name string) (*Config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}
