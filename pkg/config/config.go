// Package config loads mvncoord settings from a TOML file.
//
// The file names the repositories coordinates can be resolved against and
// optionally pins a list of artifacts:
//
//	default = "central"
//
//	[repositories]
//	central = "https://repo1.maven.org/maven2"
//	internal = "https://maven.example.com/releases/"
//
//	[[pinned]]
//	coordinates = "io.github.brawaru:artifact:1.0.0-SNAPSHOT"
//	repository = "internal"
//
// A missing file is not an error; [Load] returns [Default] instead.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mvncoord/pkg/errors"
	"github.com/matzehuels/mvncoord/pkg/maven"
)

const (
	appName  = "mvncoord"
	fileName = "config.toml"

	// CentralName is the name Maven Central is registered under by default.
	CentralName = "central"

	// CentralURL is the base URL of Maven Central.
	CentralURL = "https://repo1.maven.org/maven2"
)

// Config holds the repositories and pinned artifacts known to the CLI.
type Config struct {
	// Default names the repository used when none is requested explicitly.
	Default string `toml:"default"`

	// Repositories maps repository names to base URLs.
	Repositories map[string]string `toml:"repositories"`

	// Pinned lists artifacts resolved by "mvncoord pinned".
	Pinned []Pin `toml:"pinned"`
}

// Pin is an artifact with an optional repository override.
type Pin struct {
	Coordinates maven.Coordinates `toml:"coordinates"`
	Repository  string            `toml:"repository,omitempty"`
}

// Default returns a configuration with Maven Central as the only repository.
func Default() *Config {
	return &Config{
		Default:      CentralName,
		Repositories: map[string]string{CentralName: CentralURL},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/mvncoord/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads and validates the config file at path.
// If the file does not exist, Default is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML config data. Fields left out fall back to the values
// from Default; pinned coordinates are parsed with [maven.Parse].
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}

	if len(cfg.Repositories) == 0 {
		cfg.Repositories = map[string]string{CentralName: CentralURL}
	}
	if cfg.Default == "" {
		cfg.Default = CentralName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks repository names and URLs and that every referenced
// repository exists.
func (c *Config) Validate() error {
	for name, url := range c.Repositories {
		if err := errors.ValidateRepositoryName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %q", name)
		}
		if err := errors.ValidateURL(url); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %q", name)
		}
	}

	if _, ok := c.Repositories[c.Default]; !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "default repository %q is not defined", c.Default)
	}

	for _, pin := range c.Pinned {
		if pin.Repository == "" {
			continue
		}
		if _, ok := c.Repositories[pin.Repository]; !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "pinned %s: repository %q is not defined",
				pin.Coordinates, pin.Repository)
		}
	}
	return nil
}

// Repository returns the base URL registered under name. An empty name
// selects the default repository.
func (c *Config) Repository(name string) (string, error) {
	if name == "" {
		name = c.Default
	}
	url, ok := c.Repositories[name]
	if !ok {
		return "", errors.New(errors.ErrCodeNotFound, "unknown repository %q", name)
	}
	return url, nil
}

// RepositoryNames returns the configured repository names in sorted order.
func (c *Config) RepositoryNames() []string {
	names := make([]string, 0, len(c.Repositories))
	for name := range c.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the URL of pin under its own repository, or under the
// repository named by override when that is not empty.
func (c *Config) Resolve(pin Pin, override string) (string, error) {
	name := pin.Repository
	if override != "" {
		name = override
	}
	base, err := c.Repository(name)
	if err != nil {
		return "", err
	}
	return pin.Coordinates.Resolve(base), nil
}
