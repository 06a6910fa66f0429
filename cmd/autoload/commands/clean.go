package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove every cache artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.CacheDir == "" {
				return domain.ErrCacheDisabled
			}
			return c.app.Clean(cfg.CacheDir)
		},
	}
}
