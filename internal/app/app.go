package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/jvmtune/internal/config"
	"github.com/vk/jvmtune/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Plan output and log output are separate writers so the
// resolved plan stays machine-readable on stdout.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	program *config.ProgramConfig
}

// NewApp is the constructor for the main application. It loads the
// experiment configuration eagerly; a failure to load is a fatal startup
// error and panics, which cmd/cli recovers into a clean exit message.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	program, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.",
		"clusters", len(program.Clusters))

	return &App{
		outW:    outW,
		logger:  logger,
		program: program,
	}
}

// Program returns the loaded configuration tree. Primarily for testing.
func (a *App) Program() *config.ProgramConfig {
	return a.program
}
