// Package config loads the optional gqlir YAML configuration file. Command
// line flags are layered on top of it by the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags. Zero values mean "not set" except where
// Default fills them in.
type Config struct {
	// Schema lists SDL files loaded in order.
	Schema []string `yaml:"schema"`
	// Documents is the directory searched for .graphql and .gql files.
	Documents string `yaml:"documents"`
	// Exclude lists paths under Documents that are skipped.
	Exclude []string `yaml:"exclude"`
	// Input is a previously compiled dynamic tree, used instead of
	// compiling Schema and Documents.
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Format    string `yaml:"format"`
	KeepGoing bool   `yaml:"keepGoing"`
	LogLevel  string `yaml:"logLevel"`
	OTel      OTel   `yaml:"otel"`
}

type OTel struct {
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
	// Insecure dials the collector without TLS.
	Insecure bool `yaml:"insecure"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Documents: ".",
		Format:    "apollo",
		LogLevel:  "info",
		OTel:      OTel{Service: "gqlir"},
	}
}

// Load reads the file at path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
