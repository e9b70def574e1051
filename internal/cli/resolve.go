package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvncoord/pkg/errors"
)

// resolveCommand prints the URL of an artifact in a repository.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		repo    string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "resolve <coordinates>...",
		Short: "Print the repository URL of one or more artifacts",
		Long: `Resolve artifacts against a repository and print their URLs, one per line.

The repository is taken from --url, else from --repo, else from the config's
default repository (Maven Central when no config file exists). Nothing is
downloaded.

Examples:
  mvncoord resolve com.google.guava:guava:32.1.3-jre
  mvncoord resolve io.github.brawaru:artifact:1.0.0-SNAPSHOT --url https://brawaru.github.io/maven`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if repo != "" && baseURL != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--repo and --url are mutually exclusive")
			}

			base := baseURL
			if base == "" {
				cfg, err := c.loadConfig()
				if err != nil {
					return err
				}
				if base, err = cfg.Repository(repo); err != nil {
					return err
				}
			}
			c.Logger.Debug("resolving", "base", base, "count", len(args))

			for _, arg := range args {
				coords, err := c.parseCoordinates(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), coords.Resolve(base))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repo, "repo", "r", "", "repository name from config")
	cmd.Flags().StringVarP(&baseURL, "url", "u", "", "repository base URL")
	return cmd
}
