package calculator

import "github.com/meetcost/meetcost/internal/models"

// WorkingHoursPerYear is the divisor for converting annual salary to an
// hourly rate: 40 hrs/week x 52 weeks.
const WorkingHoursPerYear = 2080

// EffectiveHourlyRate converts a participant's compensation into an hourly
// rate. Full-time participants with a salary use salary / 2080; everyone
// else (contractor, unknown, or full-time with no salary set) falls through
// to their hourly rate, which defaults to zero.
func EffectiveHourlyRate(p models.Participant) float64 {
	if p.EmploymentType == models.EmploymentFulltime && p.AnnualSalary > 0 {
		return p.AnnualSalary / WorkingHoursPerYear
	}
	return p.HourlyRate
}
