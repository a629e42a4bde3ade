package receipt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a dollar amount with en-US grouping,
// e.g. 24112.5 -> "$24,112.50".
func FormatCurrency(value float64) string {
	return usd.Sprintf("$%.2f", value)
}

// FormatHourlyRate renders a rate as "$X.XX/hr".
func FormatHourlyRate(value float64) string {
	return FormatCurrency(value) + "/hr"
}

// Duration breaks a second count into display components.
type Duration struct {
	Hours        int
	Minutes      int
	Seconds      int
	TotalMinutes int
	TotalSeconds int
	// Readable is the long form, e.g. "1 hour 23 minutes".
	Readable string
	// Detail is the compact form, e.g. "1h 23m 5s".
	Detail string
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatDuration converts seconds into display components.
func FormatDuration(seconds int64) Duration {
	total := int(seconds)
	d := Duration{
		Hours:        total / 3600,
		Minutes:      (total % 3600) / 60,
		Seconds:      total % 60,
		TotalMinutes: total / 60,
		TotalSeconds: total,
	}

	switch {
	case d.Hours > 0:
		d.Readable = plural(d.Hours, "hour") + " " + plural(d.Minutes, "minute")
		d.Detail = fmt.Sprintf("%dh %dm %ds", d.Hours, d.Minutes, d.Seconds)
	case d.Minutes > 0:
		d.Readable = plural(d.Minutes, "minute")
		if d.Seconds > 0 {
			d.Readable += " " + plural(d.Seconds, "second")
			d.Detail = fmt.Sprintf("%d min %d sec", d.Minutes, d.Seconds)
		} else {
			d.Detail = fmt.Sprintf("%d min", d.Minutes)
		}
	default:
		d.Readable = plural(d.Seconds, "second")
		d.Detail = fmt.Sprintf("%d sec", d.Seconds)
	}
	return d
}

// FormatDate renders an epoch-millisecond timestamp as a long date,
// e.g. "February 9, 2026".
func FormatDate(timestampMillis int64) string {
	return time.UnixMilli(timestampMillis).Format("January 2, 2006")
}

// FormatTime renders the time of day, e.g. "3:04 PM".
func FormatTime(timestampMillis int64) string {
	return time.UnixMilli(timestampMillis).Format("3:04 PM")
}

// FormatDateISO renders the date as YYYY-MM-DD.
func FormatDateISO(timestampMillis int64) string {
	return time.UnixMilli(timestampMillis).Format("2006-01-02")
}

// FormatTime24 renders the time as HH:MM.
func FormatTime24(timestampMillis int64) string {
	return time.UnixMilli(timestampMillis).Format("15:04")
}
