package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the manifest and print the derived registration lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeCache, _ := cmd.Flags().GetBool("write-cache")

			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if writeCache && cfg.CacheDir == "" {
				return domain.ErrCacheDisabled
			}

			regs, err := c.app.Scan(cmd.Context(), c.app.NewRecorder(cfg), cfg)
			if err != nil {
				return err
			}

			if writeCache {
				if err := c.app.WriteCache(cmd.Context(), cfg.CacheDir, regs); err != nil {
					return err
				}
			}

			return writeYAML(cmd.OutOrStdout(), newListing(regs, domain.AllKinds()))
		},
	}

	cmd.Flags().BoolP("write-cache", "w", false, "Persist the scanned lists to the cache")

	return cmd
}
