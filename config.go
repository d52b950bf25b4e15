package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the optional YAML limits file. Zero fields keep their
// defaults, so a file may set any subset:
//
//	precision: 64
//	max_digits: 8192
//	max_depth: 1024
type Config struct {
	Precision int `yaml:"precision"`
	MaxDigits int `yaml:"max_digits"`
	MaxDepth  int `yaml:"max_depth"`
}

// LoadConfig reads a limits file. The result is an Option.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %v: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) apply(s *Session) {
	if cfg.Precision > 0 {
		s.numCtx.Prec = cfg.Precision
	}
	if cfg.MaxDigits > 0 {
		s.numCtx.MaxDigits = cfg.MaxDigits
	}
	if cfg.MaxDepth > 0 {
		s.maxDepth = cfg.MaxDepth
	}
}
