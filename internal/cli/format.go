package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvncoord/pkg/errors"
	"github.com/matzehuels/mvncoord/pkg/maven"
)

// formatOpts holds field overrides applied before printing.
type formatOpts struct {
	group        string
	artifact     string
	version      string
	label        string
	noLabel      bool
	packaging    string
	classifier   string
	noClassifier bool
	file         bool // print the file name instead of the coordinates
}

// apply runs the setters for every flag that was given on cmd.
func (o *formatOpts) apply(cmd *cobra.Command, coords *maven.Coordinates) error {
	flags := cmd.Flags()
	if flags.Changed("label") && o.noLabel {
		return errors.New(errors.ErrCodeInvalidInput, "--label and --no-label are mutually exclusive")
	}
	if flags.Changed("classifier") && o.noClassifier {
		return errors.New(errors.ErrCodeInvalidInput, "--classifier and --no-classifier are mutually exclusive")
	}

	if flags.Changed("group") {
		coords.SetGroup(o.group)
	}
	if flags.Changed("artifact") {
		coords.SetArtifact(o.artifact)
	}
	if flags.Changed("version") {
		coords.SetVersion(o.version)
	}
	switch {
	case flags.Changed("label"):
		coords.SetVersionLabel(o.label)
	case o.noLabel:
		coords.ClearVersionLabel()
	}
	if flags.Changed("packaging") {
		coords.SetPackaging(o.packaging)
	}
	switch {
	case flags.Changed("classifier"):
		coords.SetClassifier(o.classifier)
	case o.noClassifier:
		coords.ClearClassifier()
	}
	return nil
}

// formatCommand normalizes coordinates, optionally replacing fields.
func (c *CLI) formatCommand() *cobra.Command {
	var opts formatOpts

	cmd := &cobra.Command{
		Use:   "format <coordinates>",
		Short: "Rewrite Maven coordinates in canonical form",
		Long: `Parse Maven coordinates, apply any field overrides and print them back.

The default "jar" packaging is omitted unless a classifier follows it.

Examples:
  mvncoord format com.google.guava:guava:32.1.3-jre:jar          # com.google.guava:guava:32.1.3-jre
  mvncoord format g:a:1.0-SNAPSHOT --version 1.1 --no-label      # g:a:1.1
  mvncoord format g:a:1.0 --classifier sources --file            # a-1.0-sources.jar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := c.parseCoordinates(args[0])
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &coords); err != nil {
				return err
			}

			out := coords.String()
			if opts.file {
				out = coords.FileName()
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.group, "group", "", "replace the group ID")
	f.StringVar(&opts.artifact, "artifact", "", "replace the artifact ID")
	f.StringVar(&opts.version, "version", "", "replace the version (label is kept)")
	f.StringVar(&opts.label, "label", "", "set the version label")
	f.BoolVar(&opts.noLabel, "no-label", false, "remove the version label")
	f.StringVar(&opts.packaging, "packaging", "", "replace the packaging")
	f.StringVar(&opts.classifier, "classifier", "", "set the classifier")
	f.BoolVar(&opts.noClassifier, "no-classifier", false, "remove the classifier")
	f.BoolVar(&opts.file, "file", false, "print the artifact file name instead")
	return cmd
}
