// Package score grades a meeting's cost-effectiveness.
//
// The score starts at 100 and a fixed, ordered battery of heuristic rules
// adds or subtracts points based on cost density, absolute cost, format
// appropriateness for the meeting type, in-person overhead, duration, and
// attendee count. Some rules intentionally overlap: an in-person stand-up
// that runs long is penalized both for its in-person duration and for
// being a long status-type meeting.
package score

import (
	"math"
	"strings"

	"github.com/meetcost/meetcost/internal/models"
)

// Input holds the meeting aggregates the scoring rules evaluate.
// Derived from a Meeting on demand; never persisted.
type Input struct {
	TotalCost        float64
	Format           models.MeetingFormat
	MeetingType      string
	DurationSeconds  int64
	ParticipantCount int
	InPersonCost     float64
}

// Result is the outcome of scoring one meeting.
type Result struct {
	// Score is an integer in [0, 100].
	Score int
	// Grade is a letter grade, A+ down to F.
	Grade string
	// Text is a one-line verdict chosen by score band.
	Text string
	// Factors lists every triggered rule's label in firing order.
	Factors []string
}

// Meeting types that often work async (Slack, email, etc.).
var asyncFriendlyTypes = []string{
	"Stand Up",
	"Status Update",
	"Sync",
	"Touch Base",
	"Review",
}

// Meeting types that typically benefit from in-person presence.
var inPersonJustifiedTypes = []string{
	"Brainstorm",
	"Kickoff",
	"All Hands",
}

// matchesType reports whether the meeting type contains any of the listed
// types, case-insensitively.
func matchesType(meetingType string, list []string) bool {
	lower := strings.ToLower(meetingType)
	for _, t := range list {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// ruleInput is the Input plus the derived values the rules share.
type ruleInput struct {
	Input
	costPerPersonHour float64
	durationHours     float64
	inPerson          bool
	asyncFriendly     bool
	inPersonJustified bool
}

// adjustment is one rule's contribution: a signed delta and its label.
type adjustment struct {
	delta int
	label string
}

// rule evaluates one heuristic; fired=false means no contribution.
type rule func(in ruleInput) (adj adjustment, fired bool)

// rules run in a fixed order; later factors assume the classification
// computed for earlier ones, and the order determines the factor list.
var rules = []rule{
	ruleCostEfficiency,
	ruleTotalCost,
	ruleFormat,
	ruleInPersonOverhead,
	ruleInPersonDuration,
	ruleInPersonScale,
	ruleAsyncDuration,
	ruleScale,
}

// Cost efficiency: high cost per attendee-hour is only penalized for
// in-person meetings, where real expenses are on the table. For remote
// meetings the "cost" is just salary time, which is expected.
func ruleCostEfficiency(in ruleInput) (adjustment, bool) {
	if !in.inPerson {
		return adjustment{}, false
	}
	switch {
	case in.costPerPersonHour > 150:
		return adjustment{-20, "High cost per attendee-hour (in-person)"}, true
	case in.costPerPersonHour > 100:
		return adjustment{-10, "Above-average cost per attendee-hour (in-person)"}, true
	case in.costPerPersonHour < 40 && in.ParticipantCount <= 6:
		return adjustment{+5, "Efficient cost per attendee-hour"}, true
	}
	return adjustment{}, false
}

func ruleTotalCost(in ruleInput) (adjustment, bool) {
	switch {
	case in.TotalCost > 15000:
		return adjustment{-18, "Very high total cost"}, true
	case in.TotalCost > 8000:
		return adjustment{-10, "High total cost"}, true
	}
	return adjustment{}, false
}

func ruleFormat(in ruleInput) (adjustment, bool) {
	if in.inPerson {
		if in.asyncFriendly {
			return adjustment{-22, "In-person for a meeting type that often works async"}, true
		}
		if !in.inPersonJustified {
			return adjustment{-8, "In-person (may have been remote)"}, true
		}
		return adjustment{}, false
	}
	if in.asyncFriendly {
		return adjustment{+5, "Remote for async-friendly meeting type"}, true
	}
	return adjustment{}, false
}

func ruleInPersonOverhead(in ruleInput) (adjustment, bool) {
	if !in.inPerson || in.InPersonCost <= 0 {
		return adjustment{}, false
	}
	if in.InPersonCost/in.TotalCost > 0.3 {
		return adjustment{-10, "Significant employee cost (commute, parking, etc.)"}, true
	}
	if in.InPersonCost > 500 {
		return adjustment{-6, "Notable employee cost (commute, parking, etc.)"}, true
	}
	return adjustment{}, false
}

// Long in-person meetings: even "justified" types get penalized at scale.
func ruleInPersonDuration(in ruleInput) (adjustment, bool) {
	if !in.inPerson {
		return adjustment{}, false
	}
	switch {
	case in.DurationSeconds > 6*3600:
		return adjustment{-12, "Very long in-person duration"}, true
	case in.DurationSeconds > 4*3600:
		return adjustment{-6, "Long in-person duration"}, true
	}
	return adjustment{}, false
}

func ruleInPersonScale(in ruleInput) (adjustment, bool) {
	if in.inPerson && in.ParticipantCount >= 50 {
		return adjustment{-10, "Large in-person gathering"}, true
	}
	return adjustment{}, false
}

// Duration appropriateness for status-type meetings. Fires regardless of
// format, independently of the in-person duration rule above.
func ruleAsyncDuration(in ruleInput) (adjustment, bool) {
	if !in.asyncFriendly {
		return adjustment{}, false
	}
	switch {
	case in.DurationSeconds > 3600:
		return adjustment{-15, "Long duration for a status-type meeting"}, true
	case in.DurationSeconds <= 900:
		return adjustment{+5, "Short duration for status-type meeting"}, true
	}
	return adjustment{}, false
}

// Scale: mutually exclusive bands, first match wins.
func ruleScale(in ruleInput) (adjustment, bool) {
	switch {
	case in.ParticipantCount >= 15 && in.asyncFriendly:
		return adjustment{-12, "Large audience for a simple meeting type"}, true
	case in.ParticipantCount >= 50:
		return adjustment{-8, "Very large meeting"}, true
	case in.ParticipantCount >= 25:
		return adjustment{-8, "Large meeting"}, true
	case in.ParticipantCount >= 8 && in.ParticipantCount <= 14:
		return adjustment{-5, "Medium-sized meeting (consider if all attendees are necessary)"}, true
	}
	return adjustment{}, false
}

// Compute scores a meeting. It never fails: inputs are floored and clamped
// into safe ranges before use.
func Compute(input Input) Result {
	in := ruleInput{
		Input:             input,
		durationHours:     math.Max(0.001, float64(input.DurationSeconds)/3600),
		inPerson:          input.Format == models.FormatInPerson,
		asyncFriendly:     matchesType(input.MeetingType, asyncFriendlyTypes),
		inPersonJustified: matchesType(input.MeetingType, inPersonJustifiedTypes),
	}
	if input.ParticipantCount > 0 {
		in.costPerPersonHour = input.TotalCost / (float64(input.ParticipantCount) * in.durationHours)
	}

	points := 100
	var factors []string
	for _, r := range rules {
		if adj, fired := r(in); fired {
			points += adj.delta
			factors = append(factors, adj.label)
		}
	}

	clamped := min(100, max(0, points))
	if len(factors) == 0 {
		factors = []string{"Meeting cost and format considered"}
	}
	return Result{
		Score:   clamped,
		Grade:   gradeFor(clamped),
		Text:    textFor(clamped),
		Factors: factors,
	}
}

// gradeFor maps a clamped score to the standard letter bands.
func gradeFor(score int) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 93:
		return "A"
	case score >= 90:
		return "A-"
	case score >= 87:
		return "B+"
	case score >= 83:
		return "B"
	case score >= 80:
		return "B-"
	case score >= 77:
		return "C+"
	case score >= 73:
		return "C"
	case score >= 70:
		return "C-"
	case score >= 67:
		return "D+"
	case score >= 63:
		return "D"
	case score >= 60:
		return "D-"
	default:
		return "F"
	}
}

// textFor picks the one-line verdict by score band. Purely cosmetic.
func textFor(score int) string {
	switch {
	case score >= 85:
		return "Efficient use of time. Remote, lean, and justified."
	case score >= 70:
		return "Has Slack vibes."
	case score >= 50:
		return "This meeting has strong 'could have been an email' energy."
	default:
		return "Ouch. Could this have been a remote 120 minute instead?"
	}
}

// FromMeeting derives a scoring input from a built meeting.
func FromMeeting(m *models.Meeting) Input {
	return Input{
		TotalCost:        m.TotalCost,
		Format:           m.Format,
		MeetingType:      m.MeetingDescription,
		DurationSeconds:  m.Duration,
		ParticipantCount: len(m.Participants),
		InPersonCost:     m.InPersonCost,
	}
}
