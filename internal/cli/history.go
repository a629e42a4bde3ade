package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/internal/history"
	"github.com/meetcost/meetcost/internal/receipt"
)

func NewHistoryCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect saved meetings",
	}

	cmd.AddCommand(newHistoryListCmd(deps))
	cmd.AddCommand(newHistoryShowCmd(deps))
	cmd.AddCommand(newHistoryClearCmd(deps))

	return cmd
}

func newHistoryListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved meetings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := deps.Store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list meetings: %w", err)
			}
			if len(meetings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved meetings")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tDURATION\tPEOPLE\tCOST\tDESCRIPTION")
			for _, m := range meetings {
				d := receipt.FormatDuration(m.Duration)
				desc := m.MeetingDescription
				if desc == "" {
					desc = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					m.ID,
					receipt.FormatDateISO(m.Timestamp),
					d.Readable,
					len(m.Participants),
					receipt.FormatCurrency(m.TotalCost),
					desc,
				)
			}
			return w.Flush()
		},
	}
}

func newHistoryShowCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Show one saved meeting in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting, err := deps.Store.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, history.ErrNotFound) {
					return fmt.Errorf("no meeting with ID %q", args[0])
				}
				return fmt.Errorf("failed to load meeting: %w", err)
			}

			printMeetingSummary(cmd, meeting)
			return nil
		},
	}
}

func newHistoryClearCmd(deps *Dependencies) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear history without --yes")
			}
			if err := deps.Store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	return cmd
}
