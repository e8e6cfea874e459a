// Package config loads the CLI tool's environment-driven settings.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/spatial3d/octree/internal/bench"
)

type Config struct {
	Debug bool `envconfig:"OCTREE_DEBUG" default:"false"`
	Bench bench.Config
}

func Process() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	return &c, nil
}
