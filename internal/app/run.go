package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/jvmtune/internal/ctxlog"
	"github.com/vk/jvmtune/internal/resolver"
)

// Run executes the main application logic: resolve the loaded tree into
// a per-subject plan and emit it.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	opts := resolver.Options{ExternalSubjectCounts: appConfig.SubjectCounts}
	plan, err := resolver.Resolve(ctx, a.program, opts)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration: %w", err)
	}

	baselines := 0
	for _, record := range plan {
		if record.IsBaseline {
			baselines++
		}
	}
	a.logger.Info("Experiment plan resolved.",
		"subjects", len(plan), "baseline_subjects", baselines)

	out := a.outW
	if appConfig.OutPath != "" {
		f, err := os.Create(appConfig.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create plan file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writePlan(out, plan); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
