package models

// MeetingStatus tracks a meeting's lifecycle.
type MeetingStatus string

const (
	StatusSetup     MeetingStatus = "setup"
	StatusRunning   MeetingStatus = "running"
	StatusPaused    MeetingStatus = "paused"
	StatusCompleted MeetingStatus = "completed"
)

// SectorType distinguishes whose dollars a meeting burns.
// Public = taxpayer-funded; private = company/organization dollars.
type SectorType string

const (
	SectorPublic  SectorType = "public"
	SectorPrivate SectorType = "private"
)

// MeetingFormat is how the meeting was held.
type MeetingFormat string

const (
	FormatRemote   MeetingFormat = "remote"
	FormatInPerson MeetingFormat = "in-person"
)

// Meeting represents a completed meeting with all cost aggregates computed.
// Built once at stop/save time and immutable thereafter; history storage
// replaces whole records on update.
type Meeting struct {
	// ID is the unique identifier for the meeting (UUID format).
	ID string

	// Timestamp is when the meeting started, in epoch milliseconds.
	Timestamp int64

	// Duration is the meeting length in seconds (never negative).
	Duration int64

	// Participants is the attendee list in display order.
	// Order does not affect cost.
	Participants []Participant

	// TotalCost = MeetingCost + InPersonCost.
	TotalCost float64

	// MeetingCost is the time cost: sum of active participants'
	// effective hourly rates, prorated over Duration.
	MeetingCost float64

	// InPersonCost is the commute-and-extras overhead for in-person
	// meetings. Zero for remote meetings or when overhead is not applied.
	InPersonCost float64

	// CostPerSecond is the sum of active participants' effective hourly
	// rates divided by 3600.
	CostPerSecond float64

	// CostPerMinute = CostPerSecond * 60.
	CostPerMinute float64

	// AverageRate is the mean effective hourly rate over ALL
	// participants, active or not. Note the deliberate asymmetry with
	// the cost fields, which count active participants only.
	AverageRate float64

	// Status is always StatusCompleted for built meetings.
	Status MeetingStatus

	// SectorType is optional; empty when not classified.
	SectorType SectorType

	// MeetingDescription is the meeting type/description
	// (e.g. "Stand Up", "Touch Base"). Sanitized, max 200 chars.
	MeetingDescription string

	// Preset records which industry preset seeded the participants,
	// if any.
	Preset PresetType

	// Format is remote or in-person; empty when not specified.
	Format MeetingFormat

	// CommuteMinutesPerPerson is the one-way commute estimate used for
	// in-person overhead. Only set for in-person meetings.
	CommuteMinutesPerPerson float64

	// InPersonExtrasPerPerson is the flat per-person extras amount
	// (parking, etc.) used for in-person overhead. Only set for
	// in-person meetings.
	InPersonExtrasPerPerson float64
}

// ActiveParticipants returns the participants currently accruing cost.
func (m *Meeting) ActiveParticipants() []Participant {
	var active []Participant
	for _, p := range m.Participants {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

// ParticipantBreakdown counts participants by employment type.
type ParticipantBreakdown struct {
	Fulltime   int
	Contractor int
	Unknown    int
}

// Breakdown tallies all participants by employment type.
func (m *Meeting) Breakdown() ParticipantBreakdown {
	var b ParticipantBreakdown
	for _, p := range m.Participants {
		switch p.EmploymentType {
		case EmploymentFulltime:
			b.Fulltime++
		case EmploymentContractor:
			b.Contractor++
		default:
			b.Unknown++
		}
	}
	return b
}
