package options

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Config is the on-disk form of the options. Fields left out of the
// file keep their defaults.
type Config struct {
	Input   string `json:"input,omitempty"`
	Output  string `json:"output,omitempty"`
	Workers *int   `json:"workers,omitempty"`
	Strict  *bool  `json:"strict,omitempty"`
}

func loadConfigFromFile(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return loadConfig(data)
}

func loadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
