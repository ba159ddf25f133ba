// Package app provides the application context and dependency management
// for the restomap CLI. It centralizes configuration, logging, and the
// reconciliation pipeline behind a single injectable struct.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/restomap/pkg/errors"
	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/reconcile"
)

// App represents the restomap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pipeline instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	pipeline *reconcile.Pipeline
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Bounds returns the configured region bounds.
func (a *App) Bounds() geo.Bounds {
	return a.config.Bounds
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// TopN returns the configured identity ranking size.
func (a *App) TopN() int {
	return a.config.TopN
}

// Pipeline returns the reconciliation pipeline, creating it lazily if
// needed. This is thread-safe and ensures only one instance is created.
func (a *App) Pipeline() (*reconcile.Pipeline, error) {
	a.mu.RLock()
	if a.pipeline != nil {
		p := a.pipeline
		a.mu.RUnlock()
		return p, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.pipeline != nil {
		return a.pipeline, nil
	}

	p, err := reconcile.NewPipeline(a.buildPipelineOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "pipeline", "", err)
	}

	a.pipeline = p
	return p, nil
}

// buildPipelineOptions constructs pipeline options from the app configuration.
func (a *App) buildPipelineOptions() []reconcile.PipelineOption {
	var opts []reconcile.PipelineOption

	if a.config.Bounds.IsValid() {
		opts = append(opts, reconcile.WithBounds(a.config.Bounds))
	}
	if schemas := a.config.schemas(); schemas != nil {
		opts = append(opts, reconcile.WithSchemas(schemas[0], schemas[1], schemas[2]))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithPipeline sets a custom pipeline instance (useful for testing).
func WithPipeline(p *reconcile.Pipeline) Option {
	return func(a *App) error {
		a.pipeline = p
		return nil
	}
}
