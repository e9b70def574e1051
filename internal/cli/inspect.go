package cli

import (
	"github.com/spf13/cobra"
)

// inspectCommand prints every field and derived string of the coordinates.
func (c *CLI) inspectCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "inspect <coordinates>",
		Short: "Show the fields and derived names of Maven coordinates",
		Long: `Parse Maven coordinates and show every field along with the derived file name,
repository path and URL in the default (or --repo) repository.

Examples:
  mvncoord inspect io.github.brawaru:artifact:1.0.0-SNAPSHOT
  mvncoord inspect org.apache.commons:commons-lang3:3.14.0:jar:sources --repo internal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := c.parseCoordinates(args[0])
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			base, err := cfg.Repository(repo)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			label, hasLabel := coords.VersionLabel()
			classifier, hasClassifier := coords.Classifier()

			printTitle(w, coords.String())
			printKeyValue(w, "group", coords.Group())
			printKeyValue(w, "artifact", coords.Artifact())
			printKeyValue(w, "version", coords.Version())
			printKeyValue(w, "label", optional(label, hasLabel))
			printKeyValue(w, "packaging", coords.Packaging())
			printKeyValue(w, "classifier", optional(classifier, hasClassifier))
			printKeyValue(w, "full version", coords.FullVersion())
			printKeyValue(w, "file", coords.FileName())
			printKeyValue(w, "path", coords.Path())
			printLink(w, coords.Resolve(base))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "repository name from config (default repository if empty)")
	return cmd
}
