package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/internal/receipt"
	"github.com/meetcost/meetcost/internal/share"
)

func NewShareCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Work with share tokens",
	}

	cmd.AddCommand(newShareDecodeCmd(deps))
	cmd.AddCommand(newShareLinkCmd(deps))

	return cmd
}

func newShareDecodeCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token-or-url>",
		Short: "Decode a share token back into its meeting summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := extractToken(args[0])
			payload := share.Decode(token)
			if payload == nil {
				return fmt.Errorf("could not decode share token")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total cost: %s\n", receipt.FormatCurrency(payload.TotalCost))
			d := receipt.FormatDuration(payload.Duration)
			fmt.Fprintf(out, "Duration: %s\n", d.Readable)
			fmt.Fprintf(out, "Attendees: %d (%d full-time, %d contractor, %d unspecified)\n",
				payload.ParticipantCount, payload.Fulltime, payload.Contractor, payload.Unknown)
			fmt.Fprintf(out, "Average rate: %s\n", receipt.FormatHourlyRate(payload.AverageRate))
			if payload.Description != "" {
				fmt.Fprintf(out, "Meeting: %s\n", payload.Description)
			}
			if payload.Sector != "" {
				fmt.Fprintf(out, "Sector: %s\n", payload.Sector)
			}
			fmt.Fprintf(out, "Date: %s %s\n", receipt.FormatDateISO(payload.Timestamp), receipt.FormatTime24(payload.Timestamp))
			return nil
		},
	}
}

func newShareLinkCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "link <meeting-id>",
		Short: "Print the share link for a saved meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting, err := deps.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load meeting: %w", err)
			}
			link, err := share.URL(meeting, deps.Config.SiteURL)
			if err != nil {
				return fmt.Errorf("failed to build share link: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}

// extractToken accepts either a bare token or a full share URL and
// returns the token. Unparseable input is returned as-is so Decode can
// reject it.
func extractToken(arg string) string {
	if !strings.Contains(arg, "://") {
		return arg
	}
	u, err := url.Parse(arg)
	if err != nil {
		return arg
	}
	if r := u.Query().Get("r"); r != "" {
		return r
	}
	return arg
}
