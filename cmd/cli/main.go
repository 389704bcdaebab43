package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/jvmtune/internal/app"
	"github.com/vk/jvmtune/internal/cli"
	"github.com/vk/jvmtune/internal/config"
	"github.com/vk/jvmtune/internal/hclloader"
	"github.com/vk/jvmtune/internal/yamlloader"
)

// main is the entrypoint for the jvmtune application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, logW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors; recover them here into a
	// clean error for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	jvmtuneApp := app.NewApp(outW, logW, appConfig, selectLoader(appConfig.ConfigPath))

	return jvmtuneApp.Run(context.Background(), appConfig)
}

// selectLoader picks the loader from the config path's extension.
// Directories default to the HCL loader.
func selectLoader(path string) config.Loader {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yamlloader.NewLoader()
	}
	return hclloader.NewLoader()
}
