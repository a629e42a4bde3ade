// Package receipt renders a completed meeting as Markdown, plain text, or
// CSV for export and sharing. PDF/PNG rendering is left to downstream
// consumers of these text forms.
package receipt

import (
	"encoding/csv"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/meetcost/meetcost/internal/calculator"
	"github.com/meetcost/meetcost/internal/comparisons"
	"github.com/meetcost/meetcost/internal/models"
)

// Options carries the presentation strings rendered into receipts.
type Options struct {
	SectorLabels     map[models.SectorType]string
	SectorDisclaimer string
	Footer           string
	FooterMarkdown   string
}

// DefaultOptions returns the stock MeetCost labels.
func DefaultOptions() Options {
	return Options{
		SectorLabels: map[models.SectorType]string{
			models.SectorPublic:  "Public sector (taxpayer dollars)",
			models.SectorPrivate: "Private sector",
		},
		SectorDisclaimer: "MeetCost assumes all public-sector dollars are taxpayer-funded.",
		Footer:           "Tracked with MeetCost • meetcost.app",
		FooterMarkdown:   "Tracked with [MeetCost](https://meetcost.app)",
	}
}

// view is the precomputed data both text templates render.
type view struct {
	Date           string
	Time           string
	Duration       Duration
	Attendees      int
	MeetingType    string
	SectorLabel    string
	Breakdown      []string
	AverageRate    string
	TotalCost      string
	Comparisons    []string
	AnnualCost     string
	CostPerMinute  string
	CostPerSecond  string
	Disclaimer     string
	Footer         string
	FooterMarkdown string
}

func buildView(m *models.Meeting, opts Options) view {
	b := m.Breakdown()
	var lines []string
	if b.Fulltime > 0 {
		lines = append(lines, strconv.Itoa(b.Fulltime)+" full-time employees")
	}
	if b.Contractor > 0 {
		lines = append(lines, strconv.Itoa(b.Contractor)+" contractors")
	}
	if b.Unknown > 0 {
		lines = append(lines, strconv.Itoa(b.Unknown)+" unknown/estimated")
	}

	v := view{
		Date:           FormatDate(m.Timestamp),
		Time:           FormatTime(m.Timestamp),
		Duration:       FormatDuration(m.Duration),
		Attendees:      len(m.Participants),
		MeetingType:    calculator.SanitizeString(m.MeetingDescription, calculator.MaxDescriptionLength),
		Breakdown:      lines,
		AverageRate:    FormatCurrency(m.AverageRate),
		TotalCost:      FormatCurrency(m.TotalCost),
		Comparisons:    comparisons.List(m.TotalCost, 3),
		AnnualCost:     FormatCurrency(m.TotalCost * 52),
		CostPerMinute:  FormatCurrency(m.CostPerMinute),
		CostPerSecond:  FormatCurrency(m.CostPerSecond),
		Footer:         opts.Footer,
		FooterMarkdown: opts.FooterMarkdown,
	}
	if m.SectorType != "" {
		v.SectorLabel = opts.SectorLabels[m.SectorType]
	}
	if m.SectorType == models.SectorPublic {
		v.Disclaimer = opts.SectorDisclaimer
	}
	return v
}

var markdownTmpl = template.Must(template.New("markdown").Parse(`# Meeting Receipt

**Date:** {{.Date}} at {{.Time}}
**Duration:** {{.Duration.Readable}}
**Attendees:** {{.Attendees}} people
{{if .MeetingType}}**Meeting type:** {{.MeetingType}}
{{end}}{{if .SectorLabel}}**Sector:** {{.SectorLabel}}
{{end}}
## Breakdown
{{range .Breakdown}}- {{.}}
{{end}}
**Average Rate:** {{.AverageRate}}/hour

---

## Total Cost: {{.TotalCost}}

---
{{if .Comparisons}}
### Fun Fact
This meeting cost the same as:
{{range .Comparisons}}- {{.}}
{{end}}{{end}}
### If Repeated Weekly
Annual cost: **{{.AnnualCost}}**

### Burn Rates
- Per-minute: {{.CostPerMinute}}/min
- Per-second: {{.CostPerSecond}}/sec

### How meeting cost is calculated
- **Average rate:** Sum of each participant's hourly rate / number of participants. Full-time: salary / 2,080 hrs/yr (40 hrs/week x 52 weeks). Contractor: hourly rate.
- **Total cost:** (Sum of hourly rates x duration in seconds) / 3,600 sec/hr

---

{{if .Disclaimer}}*{{.Disclaimer}}*

{{end}}*{{.FooterMarkdown}}*
`))

var plainTextTmpl = template.Must(template.New("plain").Parse(`MEETING RECEIPT
===============

Date: {{.Date}} at {{.Time}}
Duration: {{.Duration.Readable}}
Attendees: {{.Attendees}} people
{{if .MeetingType}}Meeting type: {{.MeetingType}}
{{end}}{{if .SectorLabel}}Sector: {{.SectorLabel}}
{{end}}
Breakdown:
{{range .Breakdown}}- {{.}}
{{end}}
Average Rate: {{.AverageRate}}/hour

----------------------------------------

TOTAL COST: {{.TotalCost}}

----------------------------------------
{{if .Comparisons}}
Fun Fact:
This meeting cost the same as:
{{range .Comparisons}}- {{.}}
{{end}}{{end}}
If Repeated Weekly:
Annual cost: {{.AnnualCost}}

Burn Rates:
- Per-minute: {{.CostPerMinute}}/min
- Per-second: {{.CostPerSecond}}/sec

{{if .Disclaimer}}{{.Disclaimer}}

{{end}}{{.Footer}}
`))

// Markdown renders the meeting as a Markdown receipt.
func Markdown(m *models.Meeting, opts Options) (string, error) {
	var b strings.Builder
	if err := markdownTmpl.Execute(&b, buildView(m, opts)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// PlainText renders the meeting as a plain-text receipt.
func PlainText(m *models.Meeting, opts Options) (string, error) {
	var b strings.Builder
	if err := plainTextTmpl.Execute(&b, buildView(m, opts)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// CSV renders the meeting as a single summary row. When
// includeParticipants is set it instead emits one row per participant
// with their individual cost share.
func CSV(m *models.Meeting, includeParticipants bool) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	duration := FormatDuration(m.Duration)

	if includeParticipants {
		if err := w.Write([]string{
			"Meeting ID", "Date", "Time", "Participant", "Employment Type",
			"Compensation", "Salary/Rate", "Hourly Rate", "Duration (min)", "Individual Cost",
		}); err != nil {
			return "", err
		}
		for _, p := range m.Participants {
			compensation := "Hourly"
			amount := p.HourlyRate
			if p.EmploymentType == models.EmploymentFulltime {
				compensation = "Salary"
				amount = p.AnnualSalary
			}
			individualCost := p.EffectiveHourlyRate * float64(m.Duration) / 3600
			if err := w.Write([]string{
				m.ID,
				FormatDateISO(m.Timestamp),
				FormatTime24(m.Timestamp),
				p.ID,
				string(p.EmploymentType),
				compensation,
				strconv.FormatFloat(amount, 'f', -1, 64),
				FormatCurrency(p.EffectiveHourlyRate),
				strconv.Itoa(duration.TotalMinutes),
				FormatCurrency(individualCost),
			}); err != nil {
				return "", err
			}
		}
		w.Flush()
		return b.String(), w.Error()
	}

	breakdown := m.Breakdown()
	if err := w.Write([]string{
		"Date", "Time", "Meeting Type", "Duration (minutes)", "Attendees",
		"Full-Time", "Contractors", "Unknown", "Sector", "Average Rate",
		"Total Cost", "Cost Per Minute", "Cost Per Second", "Annual (Weekly)", "Generated At",
	}); err != nil {
		return "", err
	}
	if err := w.Write([]string{
		FormatDateISO(m.Timestamp),
		FormatTime24(m.Timestamp),
		calculator.SanitizeString(m.MeetingDescription, calculator.MaxDescriptionLength),
		strconv.Itoa(duration.TotalMinutes),
		strconv.Itoa(len(m.Participants)),
		strconv.Itoa(breakdown.Fulltime),
		strconv.Itoa(breakdown.Contractor),
		strconv.Itoa(breakdown.Unknown),
		string(m.SectorType),
		FormatCurrency(m.AverageRate),
		FormatCurrency(m.TotalCost),
		FormatCurrency(m.CostPerMinute),
		FormatCurrency(m.CostPerSecond),
		FormatCurrency(m.TotalCost * 52),
		time.UnixMilli(m.Timestamp).UTC().Format(time.RFC3339),
	}); err != nil {
		return "", err
	}
	w.Flush()
	return b.String(), w.Error()
}
