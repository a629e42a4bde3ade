package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/internal/models"
	"github.com/meetcost/meetcost/internal/score"
)

func NewScoreCmd(deps *Dependencies) *cobra.Command {
	var (
		cost         float64
		inPersonCost float64
		minutes      float64
		people       int
		meetingType  string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Grade a meeting from its raw numbers",
		Long: "Scores a meeting without building or saving it. Useful for what-if\n" +
			"questions: how much does moving this meeting to remote, or halving\n" +
			"the invite list, change the grade?",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cost < 0 {
				return fmt.Errorf("--cost must be non-negative, got %g", cost)
			}
			if people <= 0 {
				return fmt.Errorf("--people must be positive, got %d", people)
			}

			result := score.Compute(score.Input{
				TotalCost:        cost,
				Format:           models.MeetingFormat(format),
				MeetingType:      meetingType,
				DurationSeconds:  int64(minutes * 60),
				ParticipantCount: people,
				InPersonCost:     inPersonCost,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score: %d/100 (%s)\n", result.Score, result.Grade)
			fmt.Fprintf(out, "%s\n", result.Text)
			for _, factor := range result.Factors {
				fmt.Fprintf(out, "  - %s\n", factor)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&cost, "cost", 0, "total meeting cost in USD")
	cmd.Flags().Float64Var(&inPersonCost, "in-person-cost", 0, "portion of the cost attributable to in-person overhead")
	cmd.Flags().Float64Var(&minutes, "minutes", 30, "meeting duration in minutes")
	cmd.Flags().IntVar(&people, "people", 5, "number of attendees")
	cmd.Flags().StringVar(&meetingType, "type", "", "meeting type (e.g. \"Stand Up / Status Update\")")
	cmd.Flags().StringVar(&format, "format", string(models.FormatRemote), "meeting format (remote, in-person)")

	return cmd
}
