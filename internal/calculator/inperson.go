package calculator

import "github.com/meetcost/meetcost/internal/models"

// InPersonCost computes the overhead of holding a meeting in person:
// each active participant's commute billed at their own effective rate,
// plus a flat extras amount (parking, coffee, etc.) per active person.
func InPersonCost(participants []models.Participant, commuteMinutesPerPerson, extrasPerPerson float64) float64 {
	var commuteCost float64
	var active int
	for _, p := range participants {
		if !p.IsActive {
			continue
		}
		active++
		commuteCost += p.EffectiveHourlyRate * commuteMinutesPerPerson / 60
	}
	return commuteCost + extrasPerPerson*float64(active)
}
