package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/cmake2bazel/internal/config"
	"github.com/vk/cmake2bazel/internal/ctxlog"
)

// App encapsulates the converter's dependencies, configuration, and
// lifecycle. Results go to outW; logs and advisory warnings go to errW.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	settings *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and loaded settings.
// A failure to load settings is a fatal startup error and panics; the
// entrypoint recovers it into a clean exit message.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := loader.Load(ctx, cfg.SettingsPath)
	if err != nil {
		panic(fmt.Errorf("failed to load settings: %w", err))
	}

	// Command-line flags win over the settings file.
	if cfg.OutputFormat != "" {
		settings.Output.Format = cfg.OutputFormat
	}
	if cfg.Pretty {
		settings.Output.Pretty = true
	}
	if err := settings.Validate(); err != nil {
		panic(err)
	}
	logger.Debug("Settings resolved.", "format", settings.Output.Format, "variable_overrides", len(settings.Variables))

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		settings: settings,
	}
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() *config.Model {
	return a.settings
}
