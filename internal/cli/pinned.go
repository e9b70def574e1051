package cli

import (
	"github.com/spf13/cobra"
)

// pinnedCommand resolves every artifact pinned in the config file.
func (c *CLI) pinnedCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "pinned",
		Short: "Resolve the artifacts pinned in the config file",
		Long: `Resolve every [[pinned]] artifact from the config file against its own
repository, or against --repo when given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(cfg.Pinned) == 0 {
				printWarning(w, "no pinned artifacts")
				return nil
			}

			for _, pin := range cfg.Pinned {
				url, err := cfg.Resolve(pin, repo)
				if err != nil {
					return err
				}
				printSuccess(w, "%s", pin.Coordinates)
				printLink(w, url)
			}
			c.Logger.Debug("resolved pinned artifacts", "count", len(cfg.Pinned))
			return nil
		},
	}

	cmd.Flags().StringVarP(&repo, "repo", "r", "", "resolve every pinned artifact against this repository")
	return cmd
}
