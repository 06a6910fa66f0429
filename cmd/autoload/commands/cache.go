package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/core/domain"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the registration cache",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(c.newCacheStatusCmd())
	cmd.AddCommand(c.newCacheShowCmd())

	return cmd
}

func (c *CLI) newCacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report which cache artifacts exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.CacheDir == "" {
				return domain.ErrCacheDisabled
			}
			return writeYAML(cmd.OutOrStdout(), c.app.CacheStatus(cfg.CacheDir))
		},
	}
}

func (c *CLI) newCacheShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "show [run|terminated|dependency]...",
		Short:     "Print cached lists, all of them when no kind is given",
		ValidArgs: []string{string(domain.CacheRun), string(domain.CacheTerminated), string(domain.CacheDependency)},
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := domain.AllKinds()
			if len(args) > 0 {
				kinds := make([]domain.CacheKind, 0, len(args))
				for _, arg := range args {
					kind, err := domain.ParseCacheKind(arg)
					if err != nil {
						return err
					}
					kinds = append(kinds, kind)
				}
				sel = domain.SelectKinds(kinds...)
			}

			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.CacheDir == "" {
				return domain.ErrCacheDisabled
			}

			regs, err := c.app.ReadCache(cfg.CacheDir, sel)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), newListing(regs, sel))
		},
	}
}
