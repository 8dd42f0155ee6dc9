package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kazukazukun/building-controller/internal/config"
	"github.com/kazukazukun/building-controller/internal/service/scenario"
)

var (
	// runCmd executes the scenario from the building description.
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the configured scenario.",
		Long: `Executes the steps listed in the building description in order, printing
one line per step. Without steps a single status report is produced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenario(cmd, &scenario.Options{Summary: summary})
		},
	}

	// reportCmd prints the status report of the configured building.
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Print the building status report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenario(cmd, &scenario.Options{
				Steps: []config.Step{{Action: config.ActionReport}},
			})
		},
	}

	// transitionCmd applies states given on the command line.
	transitionCmd = &cobra.Command{
		Use:   "transition <state>...",
		Short: "Apply states in order from the configured start state.",
		Long: `Applies each state in order, starting from the configured start state, and
prints whether the controller accepted it. Quote states containing spaces,
e.g. building-controller transition closed "fire alarm" closed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := make([]config.Step, 0, len(args))
			for _, state := range args {
				steps = append(steps, config.Step{Action: config.ActionTransition, State: state})
			}

			return runScenario(cmd, &scenario.Options{Steps: steps, Summary: summary})
		},
	}
)
