package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/app"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load registrations, from the cache when possible, and print what a host receives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			writeCache, _ := cmd.Flags().GetBool("write-cache")

			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}

			rec := c.app.NewRecorder(cfg)
			res, err := c.app.Bootstrap(cmd.Context(), rec, app.BootstrapOptions{
				Config:     cfg,
				NoCache:    noCache,
				WriteCache: writeCache,
			})
			if err != nil {
				return err
			}

			plan := rec.Plan()
			plan.Source = string(res.Source)
			return writeYAML(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().BoolP("no-cache", "n", false, "Ignore the cache and scan the manifest")
	cmd.Flags().BoolP("write-cache", "w", true, "Write the cache after scanning the manifest")

	return cmd
}
