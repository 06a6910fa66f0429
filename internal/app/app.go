// Package app implements the application layer for autoload.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/autoload/internal/adapters/host"  //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/adapters/shell" //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/autoload/internal/engine/emitter"
	"go.trai.ch/autoload/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// Source reports where the registrations of a bootstrap came from.
type Source string

const (
	// SourceScan means the manifest was parsed and scanned.
	SourceScan Source = "scan"
	// SourceCache means the registrations were read from the cache.
	SourceCache Source = "cache"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.ManifestReader
	store        ports.CacheStore
	logger       ports.Logger
}

// BootstrapOptions controls a single Bootstrap call.
type BootstrapOptions struct {
	Config domain.Config

	// NoCache forces a scan even when a complete cache exists.
	NoCache bool

	// WriteCache persists a freshly scanned result to Config.CacheDir.
	WriteCache bool
}

// Result is the outcome of a Bootstrap call.
type Result struct {
	Source        Source
	Registrations domain.Registrations
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.ManifestReader,
	store ports.CacheStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		store:        store,
		logger:       logger,
	}
}

// LoadConfig reads the configuration file at path.
func (a *App) LoadConfig(path string) (domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// SetLogLevel changes the logger level when the logger supports it.
func (a *App) SetLogLevel(level string) {
	if l, ok := a.logger.(interface{ SetLevel(string) }); ok {
		l.SetLevel(level)
	}
}

// NewRecorder builds a recording host for cfg whose extension points are
// evaluated with cfg.ExtensionCommand, run from the directory holding the manifest.
func (a *App) NewRecorder(cfg domain.Config) *host.Recorder {
	invoker := shell.NewInvoker(a.logger, cfg.ExtensionCommand).WithDir(filepath.Dir(cfg.ManifestPath))
	return host.NewRecorder(cfg.BasePath, invoker)
}

// Bootstrap loads the registrations, from the cache when possible, and emits them into h.
//
// The cache is used only when caching is enabled and all three artifacts exist.
// A partial cache is ignored and the manifest is scanned again.
func (a *App) Bootstrap(ctx context.Context, h ports.Host, opts BootstrapOptions) (Result, error) {
	cfg := opts.Config

	res, err := a.load(ctx, h, opts)
	if err != nil {
		return Result{}, err
	}

	if res.Source == SourceScan && opts.WriteCache && cfg.CacheDir != "" {
		if err := a.WriteCache(ctx, cfg.CacheDir, res.Registrations); err != nil {
			return Result{}, err
		}
	}

	if err := a.Emit(h, res.Registrations); err != nil {
		return Result{}, err
	}

	a.logger.Info(fmt.Sprintf(
		"loaded %d run hooks, %d terminated hooks and %d definition sets from %s",
		len(res.Registrations.Run), len(res.Registrations.Terminated),
		len(res.Registrations.Definitions), res.Source,
	))
	return res, nil
}

func (a *App) load(ctx context.Context, h ports.Host, opts BootstrapOptions) (Result, error) {
	cfg := opts.Config

	if cfg.CacheDir != "" && !opts.NoCache {
		status := a.store.Check(cfg.CacheDir)
		switch {
		case status.Complete():
			regs, err := a.ReadCache(cfg.CacheDir, domain.AllKinds())
			if err != nil {
				return Result{}, err
			}
			return Result{Source: SourceCache, Registrations: regs}, nil
		case status.Run || status.Terminated || status.Dependency:
			a.logger.Warn(fmt.Sprintf("cache in %s is incomplete, scanning manifest", cfg.CacheDir))
		}
	}

	regs, err := a.Scan(ctx, h, cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Source: SourceScan, Registrations: regs}, nil
}

// Scan parses the manifest named by cfg and derives its registrations without
// emitting them. Extension points are evaluated through h.
func (a *App) Scan(ctx context.Context, h ports.Host, cfg domain.Config) (domain.Registrations, error) {
	m, err := a.reader.Parse(cfg.ManifestPath, domain.ParseOptions{
		VendorKey:  cfg.VendorKey,
		IncludeDev: cfg.IncludeDev,
	})
	if err != nil {
		return domain.Registrations{}, zerr.Wrap(err, "failed to read manifest")
	}
	a.logger.Debug(fmt.Sprintf("parsed %d packages from %s", len(m.Packages), cfg.ManifestPath))

	return scanner.New(a.logger, cfg.Terminated).Scan(ctx, m, h, h)
}

// Emit pushes regs into the host.
func (a *App) Emit(h ports.Registrar, regs domain.Registrations) error {
	return emitter.New(a.logger).Emit(h, regs)
}

// WriteCache persists regs to dir.
func (a *App) WriteCache(ctx context.Context, dir string, regs domain.Registrations) error {
	if err := a.store.Write(ctx, dir, regs); err != nil {
		return zerr.Wrap(err, "failed to write cache")
	}
	a.logger.Debug(fmt.Sprintf("wrote cache to %s", dir))
	return nil
}

// CacheStatus reports which artifacts exist in dir.
func (a *App) CacheStatus(dir string) domain.CacheStatus {
	return a.store.Check(dir)
}

// ReadCache loads the selected artifacts from dir.
func (a *App) ReadCache(dir string, want domain.CacheSelection) (domain.Registrations, error) {
	regs, err := a.store.Read(dir, want)
	if err != nil {
		return domain.Registrations{}, zerr.Wrap(err, "failed to read cache")
	}
	return regs, nil
}

// Clean removes every cache artifact from dir.
func (a *App) Clean(dir string) error {
	if err := a.store.Clear(dir); err != nil {
		return zerr.Wrap(err, "failed to clean cache")
	}
	a.logger.Info(fmt.Sprintf("removed cache in %s", dir))
	return nil
}
