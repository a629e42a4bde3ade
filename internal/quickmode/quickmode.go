// Package quickmode generates participant lists from a headcount and a
// single compensation figure, or from an industry preset.
package quickmode

import (
	"github.com/google/uuid"

	"github.com/meetcost/meetcost/internal/calculator"
	"github.com/meetcost/meetcost/internal/models"
)

// CompensationType selects how the quick-mode value is interpreted.
type CompensationType string

const (
	// CompensationSalary treats the value as an annual salary.
	CompensationSalary CompensationType = "salary"
	// CompensationHourly treats the value as an hourly rate.
	CompensationHourly CompensationType = "hourly"
)

// Participants creates n identical active participants from one
// compensation figure. Salary values produce full-time participants,
// hourly values produce contractors.
func Participants(n int, compensation CompensationType, value float64) []models.Participant {
	participants := make([]models.Participant, 0, n)
	for i := 0; i < n; i++ {
		p := models.Participant{
			ID:       "p-" + uuid.New().String(),
			IsActive: true,
		}
		if compensation == CompensationSalary {
			p.EmploymentType = models.EmploymentFulltime
			p.AnnualSalary = value
		} else {
			p.EmploymentType = models.EmploymentContractor
			p.HourlyRate = value
		}
		p.EffectiveHourlyRate = calculator.EffectiveHourlyRate(p)
		participants = append(participants, p)
	}
	return participants
}

// FromPreset creates n active participants seeded from an industry preset's
// average compensation.
func FromPreset(preset models.Preset, n int) []models.Participant {
	if preset.DefaultEmploymentType == models.EmploymentFulltime && preset.AverageSalary > 0 {
		return Participants(n, CompensationSalary, preset.AverageSalary)
	}
	return Participants(n, CompensationHourly, preset.AverageRate)
}
