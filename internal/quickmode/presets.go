package quickmode

import "github.com/meetcost/meetcost/internal/models"

// Presets holds industry salary defaults, keyed by preset type.
// Figures are US market estimates (PayScale, Robert Half, BLS) meant as
// starting points, not authoritative data.
var Presets = map[models.PresetType]models.Preset{
	models.PresetTech: {
		Type:                  models.PresetTech,
		Label:                 "Tech / Software",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         97000,
		AverageRate:           46.63,
		Description:           "Engineers, PMs, Designers",
	},
	models.PresetConsulting: {
		Type:                  models.PresetConsulting,
		Label:                 "Consulting",
		DefaultEmploymentType: models.EmploymentContractor,
		AverageRate:           150,
		Description:           "Strategy, Analysis, Advisory",
	},
	models.PresetGovernment: {
		Type:                  models.PresetGovernment,
		Label:                 "Government / Public Sector",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         75000,
		AverageRate:           36.06,
		Description:           "Public agencies, State employees",
	},
	models.PresetAgency: {
		Type:                  models.PresetAgency,
		Label:                 "Agency / Creative",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         81000,
		AverageRate:           38.94,
		Description:           "Marketing, Design, Content",
	},
	models.PresetCorporate: {
		Type:                  models.PresetCorporate,
		Label:                 "Corporate",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         88000,
		AverageRate:           42.31,
		Description:           "Management, Operations, Business",
	},
	models.PresetStartup: {
		Type:                  models.PresetStartup,
		Label:                 "Startup",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         75000,
		AverageRate:           36.06,
		Description:           "Early stage, Venture-backed",
	},
	models.PresetHealthcare: {
		Type:                  models.PresetHealthcare,
		Label:                 "Healthcare",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         85000,
		AverageRate:           40.87,
		Description:           "Clinical, Admin, Healthcare ops",
	},
	models.PresetNonprofit: {
		Type:                  models.PresetNonprofit,
		Label:                 "Nonprofit / Education",
		DefaultEmploymentType: models.EmploymentFulltime,
		AverageSalary:         68000,
		AverageRate:           32.69,
		Description:           "Education, Social services, NGOs",
	},
}
