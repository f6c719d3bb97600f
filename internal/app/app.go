package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/dexter/internal/config"
	"github.com/five82/dexter/internal/logging"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/state"
	"github.com/five82/dexter/internal/ui"
)

// Options configure the dexter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dexter/prefs.toml
	LogFile    string // overrides log_file from the config
	Verbose    bool
}

// Env holds the dependencies shared by the TUI and the CLI commands.
type Env struct {
	Config config.Config
	RunID  string
	Logger *zap.Logger
	Prefs  prefs.File
	Source pokeapi.Source
}

// Setup loads configuration and builds the logger and API client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load dexter config: %w", err)
	}
	if logFile := strings.TrimSpace(opts.LogFile); logFile != "" {
		expanded, err := config.ExpandPath(logFile)
		if err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
		cfg.LogFile = expanded
	}

	run := logging.NewRunID()
	logger, err := logging.New(cfg.LogFile, opts.Verbose, run)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client, err := pokeapi.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init pokeapi client: %w", err)
	}

	logger.Debug("environment ready",
		zap.String("api_base", client.BaseURL()),
		zap.Int("limit", cfg.Limit),
		zap.Int("max_in_flight", cfg.MaxInFlight),
		zap.Duration("request_timeout", cfg.RequestTimeout))

	return &Env{
		Config: cfg,
		RunID:  run,
		Logger: logger,
		Prefs:  prefs.File{Path: opts.PrefsPath},
		Source: client,
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	if e.Logger != nil {
		_ = e.Logger.Sync()
	}
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Env) fetchOptions() FetchOptions {
	return FetchOptions{
		Limit:       e.Config.Limit,
		MaxInFlight: e.Config.MaxInFlight,
		Logger:      e.logger(),
	}
}

// Run boots the dexter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()
	return env.RunTUI(ctx)
}

// RunTUI starts the background load and blocks in the UI. The loader is
// cancelled and joined before returning.
func (e *Env) RunTUI(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	done := StartLoader(ctx, store, e.Source, e.fetchOptions())

	userPrefs := e.Prefs.Load()
	e.logger().Info("starting ui", zap.String("theme", userPrefs.Theme))

	err := ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Prefs:     e.Prefs,
		ThemeName: userPrefs.Theme,
		Logger:    e.logger(),
	})

	cancel()
	<-done
	return err
}
