package models

// EmploymentType describes how a participant is compensated.
type EmploymentType string

const (
	// EmploymentFulltime participants are paid an annual salary.
	EmploymentFulltime EmploymentType = "fulltime"
	// EmploymentContractor participants are paid an hourly rate.
	EmploymentContractor EmploymentType = "contractor"
	// EmploymentUnknown participants are estimated with an hourly rate.
	EmploymentUnknown EmploymentType = "unknown"
)

// Participant represents one meeting attendee.
//
// Exactly one compensation field is authoritative per employment type:
// full-time uses AnnualSalary, everything else uses HourlyRate. The
// EffectiveHourlyRate is derived from whichever applies (salary / 2080
// working hours per year for full-time) and is the value all cost
// aggregation uses.
type Participant struct {
	// ID is the opaque unique identifier for the participant.
	ID string

	// EmploymentType selects which compensation field applies.
	EmploymentType EmploymentType

	// AnnualSalary is the yearly compensation in dollars.
	// Only meaningful for full-time participants; zero otherwise.
	AnnualSalary float64

	// HourlyRate is the direct hourly compensation in dollars.
	// Only meaningful for contractor/unknown participants; zero otherwise.
	HourlyRate float64

	// EffectiveHourlyRate is the normalized hourly cost of this
	// participant's time, derived from the authoritative field above.
	EffectiveHourlyRate float64

	// Role is an optional free-text role label (sanitized, max 100 chars).
	Role string

	// IsActive marks whether the participant currently accrues cost.
	// Inactive participants are excluded from cost totals but still
	// count toward the meeting's average rate.
	IsActive bool
}
