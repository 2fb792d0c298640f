package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// config holds optional YAML defaults for the solve/random commands. Flags
// set explicitly on the command line always win over config values.
type config struct {
	Size     int   `yaml:"size"`
	Seed     int64 `yaml:"seed"`
	DistMax  int   `yaml:"distmax"`
	First    int   `yaml:"first"`
	Optimize bool  `yaml:"optimize"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	log.Debugf("reading config file %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
