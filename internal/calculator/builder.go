package calculator

import (
	"github.com/google/uuid"

	"github.com/meetcost/meetcost/internal/models"
)

// BuildOptions carries the optional classification metadata for a meeting.
type BuildOptions struct {
	SectorType         models.SectorType
	MeetingDescription string
	Preset             models.PresetType
	Format             models.MeetingFormat

	// ApplyInPersonOverhead enables commute/extras cost for in-person
	// meetings. Ignored unless Format is in-person and
	// CommuteMinutesPerPerson is positive.
	ApplyInPersonOverhead   bool
	CommuteMinutesPerPerson float64
	InPersonExtrasPerPerson float64
}

// BuildMeeting composes a completed Meeting record from participants,
// duration, and metadata. It computes the time cost via MeetingCost (a
// failed computation degrades to zero cost, matching the non-fatal error
// policy), the in-person overhead when applicable, and the average rate
// over ALL participants regardless of active state. Free-text fields are
// sanitized before embedding.
//
// The participant list must be non-empty; an empty list yields a NaN
// average rate.
func BuildMeeting(participants []models.Participant, durationSeconds int64, startTimestamp int64, opts BuildOptions) models.Meeting {
	meetingCost := MeetingCost(participants, durationSeconds).Cost
	costPerSecond := CostPerSecond(participants)

	var inPersonCost float64
	inPerson := opts.Format == models.FormatInPerson
	if inPerson && opts.ApplyInPersonOverhead && opts.CommuteMinutesPerPerson > 0 {
		inPersonCost = InPersonCost(participants, opts.CommuteMinutesPerPerson, opts.InPersonExtrasPerPerson)
	}

	var rateSum float64
	sanitized := make([]models.Participant, len(participants))
	for i, p := range participants {
		rateSum += p.EffectiveHourlyRate
		p.Role = SanitizeString(p.Role, MaxRoleLength)
		sanitized[i] = p
	}

	m := models.Meeting{
		ID:                 "mtg_" + uuid.New().String(),
		Timestamp:          startTimestamp,
		Duration:           durationSeconds,
		Participants:       sanitized,
		TotalCost:          meetingCost + inPersonCost,
		MeetingCost:        meetingCost,
		InPersonCost:       inPersonCost,
		CostPerSecond:      costPerSecond,
		CostPerMinute:      costPerSecond * 60,
		AverageRate:        rateSum / float64(len(participants)),
		Status:             models.StatusCompleted,
		SectorType:         opts.SectorType,
		MeetingDescription: SanitizeString(opts.MeetingDescription, MaxDescriptionLength),
		Preset:             opts.Preset,
		Format:             opts.Format,
	}
	if inPerson {
		m.CommuteMinutesPerPerson = opts.CommuteMinutesPerPerson
		m.InPersonExtrasPerPerson = opts.InPersonExtrasPerPerson
	}
	return m
}
