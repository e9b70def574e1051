package cli

import (
	"github.com/spf13/cobra"
)

// reposCommand lists the repositories from the config file.
func (c *CLI) reposCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "List configured repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, name := range cfg.RepositoryNames() {
				key := name
				if name == cfg.Default {
					key += " *"
				}
				printKeyValue(w, key, cfg.Repositories[name])
			}
			return nil
		},
	}
}
