package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kazukazukun/building-controller/internal/domain/building"
)

// statesCmd prints the state tables.
var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List building states and which direct transitions are legal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printStates(cmd.OutOrStdout())
	},
}

// printStates writes one row per source state, marking denied targets with "-".
// Emergency exits are further limited to the interrupted state at run time.
func printStates(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	states := building.ValidStates()

	_, _ = fmt.Fprint(w, "FROM\\TO\tKIND")
	for _, to := range states {
		_, _ = fmt.Fprintf(w, "\t%s", to)
	}

	_, _ = fmt.Fprintln(w)

	for _, from := range states {
		kind := "normal"
		if building.IsAbnormalState(from) {
			kind = "emergency"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s", from, kind)

		for _, to := range states {
			mark := "yes"
			if !building.IsLegalTransition(from, to) {
				mark = "-"
			}

			_, _ = fmt.Fprintf(w, "\t%s", mark)
		}

		_, _ = fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write states: %w", err)
	}

	return nil
}
