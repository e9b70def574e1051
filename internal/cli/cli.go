// Package cli implements the mvncoord command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvncoord/pkg/buildinfo"
	"github.com/matzehuels/mvncoord/pkg/config"
	"github.com/matzehuels/mvncoord/pkg/maven"
)

// appName is the application name used for display.
const appName = "mvncoord"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides the default config location when set by --config.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mvncoord parses and resolves Maven artifact coordinates",
		Long: `mvncoord parses Maven coordinates (groupId:artifactId:version[:packaging[:classifier]]),
derives artifact file names and repository paths, and resolves them against repository URLs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/mvncoord/config.toml)")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.formatCommand())
	root.AddCommand(c.reposCommand())
	root.AddCommand(c.pinnedCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// parseCoordinates parses a command argument and logs the result.
func (c *CLI) parseCoordinates(raw string) (maven.Coordinates, error) {
	coords, err := maven.Parse(raw)
	if err != nil {
		return maven.Coordinates{}, err
	}
	c.Logger.Debug("parsed coordinates", "input", raw, "coordinates", coords.String())
	return coords, nil
}

// loadConfig reads the config file from --config or the default location.
func (c *CLI) loadConfig() (*config.Config, error) {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config location, using defaults", "err", err)
			return config.Default(), nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", path, "repositories", len(cfg.Repositories), "pinned", len(cfg.Pinned))
	return cfg, nil
}
