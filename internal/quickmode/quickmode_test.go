package quickmode

import (
	"math"
	"testing"

	"github.com/meetcost/meetcost/internal/models"
)

func TestParticipants(t *testing.T) {
	t.Run("salary mode creates full-timers with derived rate", func(t *testing.T) {
		got := Participants(4, CompensationSalary, 90000)
		if len(got) != 4 {
			t.Fatalf("len = %d, want 4", len(got))
		}
		for _, p := range got {
			if p.EmploymentType != models.EmploymentFulltime {
				t.Errorf("EmploymentType = %q, want fulltime", p.EmploymentType)
			}
			if p.AnnualSalary != 90000 || p.HourlyRate != 0 {
				t.Errorf("compensation fields = %v/%v", p.AnnualSalary, p.HourlyRate)
			}
			if math.Abs(p.EffectiveHourlyRate-90000.0/2080) > 1e-9 {
				t.Errorf("EffectiveHourlyRate = %v, want salary/2080", p.EffectiveHourlyRate)
			}
			if !p.IsActive || p.ID == "" {
				t.Errorf("participant not active or missing ID: %+v", p)
			}
		}
	})

	t.Run("hourly mode creates contractors", func(t *testing.T) {
		got := Participants(2, CompensationHourly, 60)
		for _, p := range got {
			if p.EmploymentType != models.EmploymentContractor {
				t.Errorf("EmploymentType = %q, want contractor", p.EmploymentType)
			}
			if p.EffectiveHourlyRate != 60 || p.AnnualSalary != 0 {
				t.Errorf("rate fields = %v/%v", p.EffectiveHourlyRate, p.AnnualSalary)
			}
		}
	})

	t.Run("unique IDs", func(t *testing.T) {
		got := Participants(10, CompensationHourly, 50)
		seen := make(map[string]bool)
		for _, p := range got {
			if seen[p.ID] {
				t.Fatalf("duplicate participant ID %q", p.ID)
			}
			seen[p.ID] = true
		}
	})
}

func TestFromPreset(t *testing.T) {
	t.Run("salaried preset", func(t *testing.T) {
		got := FromPreset(Presets[models.PresetTech], 3)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].AnnualSalary != 97000 {
			t.Errorf("AnnualSalary = %v, want preset average", got[0].AnnualSalary)
		}
		if math.Abs(got[0].EffectiveHourlyRate-97000.0/2080) > 1e-9 {
			t.Errorf("EffectiveHourlyRate = %v", got[0].EffectiveHourlyRate)
		}
	})

	t.Run("hourly preset", func(t *testing.T) {
		got := FromPreset(Presets[models.PresetConsulting], 2)
		if got[0].EmploymentType != models.EmploymentContractor {
			t.Errorf("EmploymentType = %q, want contractor", got[0].EmploymentType)
		}
		if got[0].EffectiveHourlyRate != 150 {
			t.Errorf("EffectiveHourlyRate = %v, want 150", got[0].EffectiveHourlyRate)
		}
	})
}

func TestPresetRatesMatchSalaries(t *testing.T) {
	// Advertised AverageRate should agree with AverageSalary/2080 for
	// salaried presets (within rounding of the published figure).
	for name, preset := range Presets {
		if preset.AverageSalary == 0 {
			continue
		}
		derived := preset.AverageSalary / 2080
		if math.Abs(derived-preset.AverageRate) > 0.01 {
			t.Errorf("%s: AverageRate %v disagrees with salary-derived %v", name, preset.AverageRate, derived)
		}
	}
}
