package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/internal/receipt"
)

func NewExportCmd(deps *Dependencies) *cobra.Command {
	var (
		format       string
		participants bool
	)

	cmd := &cobra.Command{
		Use:   "export <meeting-id>",
		Short: "Export a saved meeting as a receipt",
		Long: "Renders a saved meeting as a Markdown receipt, a plain-text receipt,\n" +
			"or CSV rows suitable for a spreadsheet.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting, err := deps.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load meeting: %w", err)
			}

			opts := receipt.Options{
				SectorLabels:     deps.Config.SectorLabels,
				SectorDisclaimer: deps.Config.SectorDisclaimer,
				Footer:           deps.Config.ReceiptFooter,
				FooterMarkdown:   deps.Config.ReceiptFooterMarkdown,
			}

			var rendered string
			switch format {
			case "markdown", "md":
				rendered, err = receipt.Markdown(meeting, opts)
			case "text", "txt":
				rendered, err = receipt.PlainText(meeting, opts)
			case "csv":
				rendered, err = receipt.CSV(meeting, participants)
			default:
				return fmt.Errorf("unknown format %q (want markdown, text, or csv)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to render receipt: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (markdown, text, csv)")
	cmd.Flags().BoolVar(&participants, "participants", false, "csv only: one row per participant instead of a summary row")

	return cmd
}
