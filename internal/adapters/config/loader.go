// Package config provides the configuration loader for autoload.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and merges it over domain.DefaultConfig.
// A missing file is not an error.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug(fmt.Sprintf("no config file at %s, using defaults", path))
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes configuration content. Unknown keys are rejected.
func Parse(data []byte) (domain.Config, error) {
	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigMalformed.Error())
	}

	cfg := domain.DefaultConfig()
	if file.Manifest != "" {
		cfg.ManifestPath = file.Manifest
	}
	if file.CacheDir != nil {
		cfg.CacheDir = *file.CacheDir
	}
	if file.BasePath != "" {
		cfg.BasePath = file.BasePath
	}
	if file.VendorKey != "" {
		cfg.VendorKey = file.VendorKey
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	cfg.IncludeDev = file.IncludeDev
	cfg.ExtensionCommand = file.ExtensionCommand

	routing, err := domain.ParseTerminatedRouting(file.Terminated)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.Terminated = routing

	return cfg, nil
}
