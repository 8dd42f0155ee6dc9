package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kazukazukun/building-controller/internal/config"
	"github.com/kazukazukun/building-controller/internal/service/scenario"
	"github.com/kazukazukun/building-controller/internal/version"
)

var (
	// configPath to the building YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// summary prints the final building state.
	summary bool

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:   "building-controller",
		Short: "Drive a simulated building through its controller state machine.",
		Long: `Builds a simulated building from a YAML description and drives its controller.

The controller moves the building between the states 'open', 'closed',
'out of hours', 'fire alarm' and 'fire drill', running door, light and alarm
side effects before committing each change. Status reports concatenate the
lights, doors and fire alarm status lines and request an engineer when any of
them reports a fault.`,
		SilenceUsage: true,
	}
)

// Execute runs the building-controller CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScenario runs opts until done or interrupted.
func runScenario(cmd *cobra.Command, opts *scenario.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	opts.ConfigPath = configPath
	opts.LogLevel = logLevel
	opts.Output = cmd.OutOrStdout()

	return scenario.Run(ctx, opts)
}

// addSummaryFlag registers the summary flag on a command flag set.
func addSummaryFlag(fs *pflag.FlagSet) {
	fs.BoolVarP(&summary, "summary", "s", false, "print the final building state")
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to building description")
	flags.StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	addSummaryFlag(runCmd.Flags())
	addSummaryFlag(transitionCmd.Flags())

	rootCmd.AddCommand(runCmd, reportCmd, transitionCmd, statesCmd)
}
