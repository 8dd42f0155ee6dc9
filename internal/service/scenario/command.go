package scenario

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kazukazukun/building-controller/internal/config"
	"github.com/kazukazukun/building-controller/internal/logger"
)

// Options controls a scenario run.
type Options struct {
	// ConfigPath specifies the path to the building YAML file.
	ConfigPath string
	// LogLevel overrides the configured log level when not empty.
	LogLevel string
	// Steps replaces the configured scenario when not empty.
	Steps []config.Step
	// Summary prints the final building state after the steps.
	Summary bool
	// Output receives the step outcomes. Defaults to stdout.
	Output io.Writer
}

// Run loads the building description, executes the scenario and prints one
// line per step.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "building-controller")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err = applyLogLevel(opts.LogLevel, cfg.LogLevel); err != nil {
		return err
	}

	steps := cfg.Steps
	if len(opts.Steps) > 0 {
		steps = opts.Steps
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	b, err := newSite(cfg)
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "building_id", b.controller.ID())
	logger.InfoKV(ctx, "Running scenario", "steps", len(steps), "start_state", b.controller.CurrentState().String())

	for _, step := range steps {
		if _, err = fmt.Fprintln(out, b.execute(ctx, step)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if !opts.Summary {
		return nil
	}

	for _, line := range b.summary() {
		if _, err = fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

// applyLogLevel sets the flag level, falling back to the configured one.
func applyLogLevel(flagLevel, configLevel string) error {
	name := configLevel
	if flagLevel != "" {
		name = flagLevel
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, name)
	}

	logger.SetLevel(level)

	return nil
}
