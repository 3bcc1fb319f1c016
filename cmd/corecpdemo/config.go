package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig is the small model file corecpdemo reads: just enough to
// parameterize the n-queens model it solves, not a general constraint
// modelling format (spec.md explicitly keeps a modelling DSL out of
// scope).
type runConfig struct {
	Board struct {
		Size int `yaml:"size"`
	} `yaml:"board"`
	Search struct {
		Maximize   bool `yaml:"maximize"`
		LimitNodes int  `yaml:"limit_nodes"`
	} `yaml:"search"`
}

func defaultConfig() runConfig {
	var c runConfig
	c.Board.Size = 8
	c.Search.LimitNodes = 0
	return c
}

func loadConfig(path string) (runConfig, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}
