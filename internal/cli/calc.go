package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/internal/calculator"
	"github.com/meetcost/meetcost/internal/comparisons"
	"github.com/meetcost/meetcost/internal/models"
	"github.com/meetcost/meetcost/internal/quickmode"
	"github.com/meetcost/meetcost/internal/receipt"
	"github.com/meetcost/meetcost/internal/score"
	"github.com/meetcost/meetcost/internal/share"
)

type calcFlags struct {
	people      int
	salary      float64
	hourly      float64
	preset      string
	minutes     float64
	meetingType string
	description string
	sector      string
	format      string
	commute     float64
	extras      float64
	save        bool
	share       bool
}

func NewCalcCmd(deps *Dependencies) *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the cost of a meeting",
		Long: "Builds a meeting from uniform attendees and prints its cost, score,\n" +
			"and a purchasing-power comparison. Use --preset for sector defaults,\n" +
			"or --salary / --hourly to set compensation directly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			participants, err := buildParticipants(&flags)
			if err != nil {
				return err
			}

			opts := calculator.BuildOptions{
				SectorType:              models.SectorType(flags.sector),
				MeetingDescription:      flags.description,
				Format:                  models.MeetingFormat(flags.format),
				CommuteMinutesPerPerson: flags.commute,
				InPersonExtrasPerPerson: flags.extras,
			}
			if flags.preset != "" {
				opts.Preset = models.PresetType(flags.preset)
			}
			if opts.Format == models.FormatInPerson && flags.commute > 0 {
				opts.ApplyInPersonOverhead = true
			}
			if flags.meetingType != "" {
				opts.MeetingDescription = flags.meetingType
				if flags.description != "" {
					opts.MeetingDescription = flags.meetingType + ": " + flags.description
				}
			}

			durationSeconds := int64(flags.minutes * 60)
			meeting := calculator.BuildMeeting(participants, durationSeconds, time.Now().UnixMilli(), opts)

			printMeetingSummary(cmd, &meeting)

			if flags.save {
				trimmed, err := deps.Store.Add(cmd.Context(), &meeting)
				if err != nil {
					return fmt.Errorf("failed to save meeting: %w", err)
				}
				if trimmed {
					fmt.Fprintln(cmd.OutOrStdout(), "note: oldest meetings were evicted to stay under the history limit")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved as %s\n", meeting.ID)
			}

			if flags.share {
				url, err := share.URL(&meeting, deps.Config.SiteURL)
				if err != nil {
					return fmt.Errorf("failed to build share link: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nshare: %s\n", url)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&flags.people, "people", 5, "number of attendees")
	cmd.Flags().Float64Var(&flags.salary, "salary", 0, "annual salary per attendee")
	cmd.Flags().Float64Var(&flags.hourly, "hourly", 0, "hourly rate per attendee")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "compensation preset (tech, consulting, government, agency, corporate, startup, healthcare, nonprofit)")
	cmd.Flags().Float64Var(&flags.minutes, "minutes", 30, "meeting duration in minutes")
	cmd.Flags().StringVar(&flags.meetingType, "type", "", "meeting type (e.g. \"Stand Up / Status Update\")")
	cmd.Flags().StringVar(&flags.description, "description", "", "free-form meeting description")
	cmd.Flags().StringVar(&flags.sector, "sector", "", "sector (public, private)")
	cmd.Flags().StringVar(&flags.format, "format", string(models.FormatRemote), "meeting format (remote, in-person)")
	cmd.Flags().Float64Var(&flags.commute, "commute", 0, "commute minutes per person (in-person only)")
	cmd.Flags().Float64Var(&flags.extras, "extras", 0, "extra cost per person, e.g. catering (in-person only)")
	cmd.Flags().BoolVar(&flags.save, "save", false, "save the meeting to history")
	cmd.Flags().BoolVar(&flags.share, "share", false, "print a share link for the meeting")

	return cmd
}

func buildParticipants(flags *calcFlags) ([]models.Participant, error) {
	if flags.people <= 0 {
		return nil, fmt.Errorf("--people must be positive, got %d", flags.people)
	}
	if flags.salary > 0 && flags.hourly > 0 {
		return nil, fmt.Errorf("--salary and --hourly are mutually exclusive")
	}

	if flags.preset != "" {
		preset, ok := quickmode.Presets[models.PresetType(flags.preset)]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", flags.preset)
		}
		return quickmode.FromPreset(preset, flags.people), nil
	}

	switch {
	case flags.hourly > 0:
		return quickmode.Participants(flags.people, quickmode.CompensationHourly, flags.hourly), nil
	case flags.salary > 0:
		return quickmode.Participants(flags.people, quickmode.CompensationSalary, flags.salary), nil
	default:
		return quickmode.Participants(flags.people, quickmode.CompensationSalary, 90000), nil
	}
}

func printMeetingSummary(cmd *cobra.Command, m *models.Meeting) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Meeting cost: %s\n", receipt.FormatCurrency(m.TotalCost))
	if m.InPersonCost > 0 {
		fmt.Fprintf(out, "  meeting time: %s\n", receipt.FormatCurrency(m.MeetingCost))
		fmt.Fprintf(out, "  in-person overhead: %s\n", receipt.FormatCurrency(m.InPersonCost))
	}

	d := receipt.FormatDuration(m.Duration)
	fmt.Fprintf(out, "Duration: %s (%d attendees)\n", d.Readable, len(m.Participants))
	fmt.Fprintf(out, "Average rate: %s\n", receipt.FormatHourlyRate(m.AverageRate))

	result := score.Compute(score.FromMeeting(m))
	fmt.Fprintf(out, "\nScore: %d/100 (%s)\n", result.Score, result.Grade)
	fmt.Fprintf(out, "%s\n", result.Text)
	for _, factor := range result.Factors {
		fmt.Fprintf(out, "  - %s\n", factor)
	}

	if items := comparisons.List(m.TotalCost, 3); len(items) > 0 {
		fmt.Fprintf(out, "\nThat's about:\n")
		for _, item := range items {
			fmt.Fprintf(out, "  %s\n", item)
		}
	}
}
