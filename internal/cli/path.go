package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvncoord/pkg/errors"
	"github.com/matzehuels/mvncoord/pkg/maven"
)

// pathCommand prints the repository-relative path of an artifact.
func (c *CLI) pathCommand() *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "path <coordinates>",
		Short: "Print the repository path of an artifact",
		Long: `Print the repository-relative path of an artifact.

Examples:
  mvncoord path io.github.brawaru:artifact:1.0.0-SNAPSHOT
  mvncoord path io.github.brawaru:artifact:1.0.0-SNAPSHOT --separator '\'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := parseSeparator(separator)
			if err != nil {
				return err
			}
			coords, err := c.parseCoordinates(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), coords.PathWithSeparator(sep))
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", string(maven.DefaultSeparator), "path separator (a single character)")
	return cmd
}

// parseSeparator accepts exactly one character.
func parseSeparator(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "separator must be a single character, got %q", s)
	}
	return r, nil
}
