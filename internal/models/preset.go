package models

// PresetType identifies an industry salary preset.
type PresetType string

const (
	PresetTech       PresetType = "tech"
	PresetConsulting PresetType = "consulting"
	PresetGovernment PresetType = "government"
	PresetAgency     PresetType = "agency"
	PresetCorporate  PresetType = "corporate"
	PresetStartup    PresetType = "startup"
	PresetHealthcare PresetType = "healthcare"
	PresetNonprofit  PresetType = "nonprofit"
	PresetCustom     PresetType = "custom"
)

// Preset holds industry defaults used to seed participants.
// Averages are starting estimates based on US market data; every value
// can be customized per participant afterwards.
type Preset struct {
	// Type is the preset's identifier.
	Type PresetType

	// Label is the human-readable name (e.g. "Tech / Software").
	Label string

	// DefaultEmploymentType is applied to generated participants.
	DefaultEmploymentType EmploymentType

	// AverageSalary is the annual salary estimate for salaried presets.
	// Zero for hourly presets.
	AverageSalary float64

	// AverageRate is the effective hourly rate estimate.
	AverageRate float64

	// Description lists typical roles covered by this preset.
	Description string
}
