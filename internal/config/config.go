package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fmgr/pkg/fmgr"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds the optional settings read from a YAML file.
// Every field defaults to the behavior of a bare `fmgr` invocation.
type Config struct {
	Verbose       bool   `yaml:"verbose"`
	ConfirmDelete bool   `yaml:"confirm_delete"`
	Journal       string `yaml:"journal,omitempty"`
	Plain         bool   `yaml:"plain"`
	StartDir      string `yaml:"start_dir,omitempty"`
}

// Load reads the config file at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", fmgr.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}
