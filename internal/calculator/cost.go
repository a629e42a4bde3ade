package calculator

import (
	"math"

	"github.com/meetcost/meetcost/internal/models"
)

// CostError identifies why a cost could not be computed. All values are
// non-fatal: they mean "cost undefined", and callers render a zero or an
// inline message rather than aborting.
type CostError string

const (
	// ErrNoParticipants: the participant list was empty.
	ErrNoParticipants CostError = "no participants provided"
	// ErrInvalidDuration: the duration was negative.
	ErrInvalidDuration CostError = "invalid duration"
	// ErrNoActiveParticipants: every participant was toggled off.
	ErrNoActiveParticipants CostError = "no active participants"
	// ErrInvalidRates: active participants sum to a zero hourly rate.
	ErrInvalidRates CostError = "invalid hourly rates"
)

func (e CostError) Error() string { return string(e) }

// CostResult carries the computed cost together with an optional CostError.
// Cost is always zero when Err is set.
type CostResult struct {
	Cost float64
	Err  CostError
}

// OK reports whether the cost was computed.
func (r CostResult) OK() bool { return r.Err == "" }

// totalActiveHourlyRate sums the effective hourly rates of active
// participants, treating NaN rates as zero. Returns the sum and the number
// of active participants.
func totalActiveHourlyRate(participants []models.Participant) (float64, int) {
	var total float64
	var active int
	for _, p := range participants {
		if !p.IsActive {
			continue
		}
		active++
		if !math.IsNaN(p.EffectiveHourlyRate) {
			total += p.EffectiveHourlyRate
		}
	}
	return total, active
}

// MeetingCost computes the cost of a meeting over the given duration.
// Validation short-circuits in a fixed order: empty participant list, then
// negative duration, then no active participants, then a zero total rate.
func MeetingCost(participants []models.Participant, durationSeconds int64) CostResult {
	if len(participants) == 0 {
		return CostResult{Err: ErrNoParticipants}
	}
	if durationSeconds < 0 {
		return CostResult{Err: ErrInvalidDuration}
	}

	totalHourlyRate, active := totalActiveHourlyRate(participants)
	if active == 0 {
		return CostResult{Err: ErrNoActiveParticipants}
	}
	if totalHourlyRate == 0 {
		return CostResult{Err: ErrInvalidRates}
	}

	costPerSecond := totalHourlyRate / 3600
	return CostResult{Cost: costPerSecond * float64(durationSeconds)}
}

// CostPerSecond is the lenient companion to MeetingCost used for live
// ticker updates: no validation, and zero (not an error) when no active
// participants exist.
func CostPerSecond(participants []models.Participant) float64 {
	totalHourlyRate, _ := totalActiveHourlyRate(participants)
	return totalHourlyRate / 3600
}

// AverageHourlyRate returns the mean effective hourly rate over ACTIVE
// participants only, with ok=false when none are active. This deliberately
// differs from Meeting.AverageRate, which BuildMeeting computes over all
// participants.
func AverageHourlyRate(participants []models.Participant) (avg float64, ok bool) {
	totalHourlyRate, active := totalActiveHourlyRate(participants)
	if active == 0 {
		return 0, false
	}
	return totalHourlyRate / float64(active), true
}
