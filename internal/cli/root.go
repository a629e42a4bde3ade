// Package cli wires the meetcost commands. The cost, score, and share
// engines live under internal/ and own no I/O; every command here is
// presentation over those packages plus the history store.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/config"
	"github.com/meetcost/meetcost/internal/currency"
	"github.com/meetcost/meetcost/internal/history"
)

// Dependencies carries the shared collaborators for all commands.
type Dependencies struct {
	Config    *config.Config
	Store     history.Store
	Converter *currency.Converter
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meetcost",
		Short: "Compute, score, and share the cost of meetings",
		Long: "MeetCost computes what a meeting costs from its attendees' compensation,\n" +
			"grades how defensible the meeting was, and produces shareable receipts.\n" +
			"All computation is local; nothing leaves your machine except the share\n" +
			"links you choose to send.",
	}

	rootCmd.AddCommand(NewCalcCmd(deps))
	rootCmd.AddCommand(NewScoreCmd(deps))
	rootCmd.AddCommand(NewHistoryCmd(deps))
	rootCmd.AddCommand(NewShareCmd(deps))
	rootCmd.AddCommand(NewExportCmd(deps))
	rootCmd.AddCommand(NewRatesCmd(deps))

	return rootCmd
}
