// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/vk/jvmtune/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly,
// or an ExitError. Log settings fall back to JVMTUNE_LOG_LEVEL and
// JVMTUNE_LOG_FORMAT when the flags are not given.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("jvmtune", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
jvmtune - resolves a JVM-tuning experiment configuration into a per-subject plan.

Usage:
  jvmtune [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a single .hcl/.yaml file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the config file or directory.")
	cFlag := flagSet.String("c", "", "Path to the config file or directory (shorthand).")
	outFlag := flagSet.String("out", "", "File to write the resolved plan to. Defaults to stdout.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	subjectCounts := map[string]int64{}
	flagSet.Func("subject-count",
		"External subject count for a group with number_of_subjects = 0, as 'cluster/group=N'. Repeatable.",
		func(value string) error {
			key, raw, ok := strings.Cut(value, "=")
			if !ok || !strings.Contains(key, "/") {
				return fmt.Errorf("expected 'cluster/group=N', got %q", value)
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid count in %q: %w", value, err)
			}
			subjectCounts[key] = n
			return nil
		})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	// Env fallback for log settings, so containerised runs can set them
	// without touching the command line.
	env := viper.New()
	env.SetEnvPrefix("JVMTUNE")
	env.AutomaticEnv()
	env.SetDefault("log_format", "json")
	env.SetDefault("log_level", "info")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat == "" {
		logFormat = strings.ToLower(env.GetString("log_format"))
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if logLevel == "" {
		logLevel = strings.ToLower(env.GetString("log_level"))
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath:    path,
		OutPath:       *outFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		SubjectCounts: subjectCounts,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
