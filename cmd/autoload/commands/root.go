// Package commands implements the CLI commands for the autoload tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/adapters/host"
	"go.trai.ch/autoload/internal/app"
	"go.trai.ch/autoload/internal/build"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	LoadConfig(path string) (domain.Config, error)
	SetLogLevel(level string)
	NewRecorder(cfg domain.Config) *host.Recorder
	Bootstrap(ctx context.Context, h ports.Host, opts app.BootstrapOptions) (app.Result, error)
	Scan(ctx context.Context, h ports.Host, cfg domain.Config) (domain.Registrations, error)
	WriteCache(ctx context.Context, dir string, regs domain.Registrations) error
	CacheStatus(dir string) domain.CacheStatus
	ReadCache(dir string, want domain.CacheSelection) (domain.Registrations, error)
	Clean(dir string) error
}

// CLI represents the command line interface for autoload.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   globalFlags
}

type globalFlags struct {
	configPath string
	manifest   string
	cacheDir   string
	basePath   string
	terminated string
	includeDev bool
	verbose    bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "autoload",
		Short:         "Derive startup hooks and DI definitions from a dependency lock file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.configPath, "config", "c", domain.ConfigFileName, "Path to the configuration file")
	pf.StringVar(&c.flags.manifest, "manifest", "", "Path to the lock file (overrides config)")
	pf.StringVar(&c.flags.cacheDir, "cache-dir", "", "Cache directory, empty disables caching (overrides config)")
	pf.StringVar(&c.flags.basePath, "base-path", "", "Install root of the packages (overrides config)")
	pf.StringVar(&c.flags.terminated, "terminated", "", "Terminated hook routing: separate or legacy (overrides config)")
	pf.BoolVar(&c.flags.includeDev, "include-dev", false, "Also scan development packages (overrides config)")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// resolveConfig loads the configuration file and applies explicitly set flags on top.
func (c *CLI) resolveConfig(cmd *cobra.Command) (domain.Config, error) {
	cfg, err := c.app.LoadConfig(c.flags.configPath)
	if err != nil {
		return domain.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.ManifestPath = c.flags.manifest
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = c.flags.cacheDir
	}
	if flags.Changed("base-path") {
		cfg.BasePath = c.flags.basePath
	}
	if flags.Changed("include-dev") {
		cfg.IncludeDev = c.flags.includeDev
	}
	if flags.Changed("terminated") {
		routing, err := domain.ParseTerminatedRouting(c.flags.terminated)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Terminated = routing
	}

	if c.flags.verbose {
		cfg.LogLevel = "debug"
	}
	c.app.SetLogLevel(cfg.LogLevel)

	return cfg, nil
}
