package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/config"
	"github.com/alexisbeaulieu97/spacedeck/internal/logger"
	"github.com/alexisbeaulieu97/spacedeck/internal/prefs"
)

// AppContext resolves the long-lived services a command needs from the
// root flags.
type AppContext struct {
	flags *rootFlags
}

func newAppContext(flags *rootFlags) *AppContext {
	return &AppContext{flags: flags}
}

// session bundles everything one command invocation uses.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	log    *logger.Logger
	client *api.Client
	prefs  *prefs.Store
	close  func()
}

// Config loads the configuration with the root flags applied.
func (a *AppContext) Config() (*config.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, newCommandError("load configuration", "determining home directory", err, "Ensure your HOME directory is set correctly.")
	}

	overrides := config.Overrides{BackendURL: a.flags.backendURL, LogLevel: a.flags.logLevel}
	if a.flags.timeout > 0 {
		timeout := a.flags.timeout
		overrides.Timeout = &timeout
	}
	if a.flags.verbose && overrides.LogLevel == "" {
		overrides.LogLevel = "debug"
	}

	cfg, err := config.Load(config.LoadOptions{Home: home, Path: a.flags.configPath, Overrides: overrides})
	if err != nil {
		return nil, newCommandError("load configuration", "reading settings", err,
			fmt.Sprintf("Set %s (or --backend-url) to your backend, e.g. http://localhost:5000.", config.EnvBackendURL))
	}
	return cfg, nil
}

// CommandContext derives a context carrying a fresh correlation ID and a
// logger for the named component.
func (a *AppContext) CommandContext(cmd *cobra.Command, cfg *config.Config, component string, out io.Writer) (context.Context, *logger.Logger, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithCorrelationID(ctx, logger.NewCorrelationID())

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogFormat == config.DefaultLogFormat,
		Writer:        out,
		Component:     component,
	})
	if err != nil {
		return nil, nil, newCommandError("configure logging", "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}
	return ctx, log, nil
}

// Session loads config and builds the logger, client and preference store.
// When toFile is set, logs go to the configured log file so they do not
// corrupt a full-screen UI.
func (a *AppContext) Session(cmd *cobra.Command, component string, toFile bool) (*session, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}

	out := cmd.ErrOrStderr()
	closeFn := func() {}
	if toFile {
		f, err := openLogFile(cfg.LogPath)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Check permissions on "+filepath.Dir(cfg.LogPath)+".")
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	ctx, log, err := a.CommandContext(cmd, cfg, component, out)
	if err != nil {
		closeFn()
		return nil, err
	}

	client, err := api.New(cfg.BackendURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(log),
		api.WithUserAgent("spacedeck/"+version),
	)
	if err != nil {
		closeFn()
		return nil, newCommandError("start", "creating backend client", err, "Check backend_url in your configuration.")
	}

	store, err := prefs.Open(ctx, cfg.PreferencesPath, log)
	if err != nil {
		closeFn()
		return nil, newCommandError("start", "loading preferences", err, "Check permissions on "+cfg.PreferencesPath+".")
	}

	log.Debug(ctx, "session ready", "backend_url", cfg.BackendURL, "timeout", cfg.Timeout.String())
	return &session{ctx: ctx, cfg: cfg, log: log, client: client, prefs: store, close: closeFn}, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func backendSuggestion(s *session) string {
	return fmt.Sprintf("Check that the backend at %s is running and reachable.", s.cfg.BackendURL)
}
