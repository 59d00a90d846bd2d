package salat

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Format constants for display modes.
const (
	FormatTimeRemaining      = "time-remaining"
	FormatNextPrayerTime     = "next-prayer-time"
	FormatNameAndTime        = "name-and-time"
	FormatNameAndRemaining   = "name-and-remaining"
	FormatShortNameAndTime   = "short-name-and-time"
	FormatShortNameAndRemain = "short-name-and-remaining"
	FormatFull               = "full"
)

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Name      string // full prayer name, e.g. "Asr"
	ShortName string // abbreviated name, e.g. "A"
	Time      string // formatted prayer time, e.g. "15:02" or "3:02 PM"
	Remaining string // time remaining, e.g. "2h 15m"
	Hours     int    // whole hours remaining
	Minutes   int    // remaining minutes after hours
}

// FormatRemaining formats a duration as "Xh Ym", or "Ym" when under an hour.
// Negative durations collapse to "0m".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatOutput formats a prayer for display according to the chosen format
// mode. timeFormat should be "15:04" for 24h or "3:04 PM" for 12h.
//
// A mode containing "{{" is treated as a custom Go template string with
// fields .Name, .ShortName, .Time, .Remaining, .Hours, .Minutes.
//
// Example: "{{.Name}} in {{.Remaining}}" -> "Asr in 2h 15m"
func FormatOutput(p Prayer, at time.Time, mode string, timeFormat string) string {
	d := p.Time.Sub(at)
	remaining := FormatRemaining(d)
	timeStr := p.Time.Format(timeFormat)
	short := ShortNames[p.Name]

	if strings.Contains(mode, "{{") {
		return formatCustom(mode, FormatData{
			Name:      p.Name.String(),
			ShortName: short,
			Time:      timeStr,
			Remaining: remaining,
			Hours:     int(d.Hours()),
			Minutes:   int(d.Minutes()) % 60,
		})
	}

	switch mode {
	case FormatTimeRemaining:
		return remaining
	case FormatNextPrayerTime:
		return timeStr
	case FormatNameAndTime:
		return fmt.Sprintf("%s %s", p.Name, timeStr)
	case FormatNameAndRemaining:
		return fmt.Sprintf("%s %s", p.Name, remaining)
	case FormatShortNameAndTime:
		return fmt.Sprintf("%s %s", short, timeStr)
	case FormatShortNameAndRemain:
		return fmt.Sprintf("%s %s", short, remaining)
	case FormatFull:
		return fmt.Sprintf("%s %s (%s)", p.Name, timeStr, remaining)
	default:
		return fmt.Sprintf("%s %s", p.Name, timeStr)
	}
}

// formatCustom executes a user-provided Go template string against the
// FormatData.
func formatCustom(tmpl string, data FormatData) string {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	return buf.String()
}
