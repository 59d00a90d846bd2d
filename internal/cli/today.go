package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hmaged/salat/internal/display"
	"github.com/hmaged/salat/internal/salat"
)

func runToday(cmd *cobra.Command, args []string) error {
	date, err := resolveDate()
	if err != nil {
		return err
	}

	p, loc, err := resolveParams(cmd, date)
	if err != nil {
		return err
	}

	cfg := effectiveConfig(cmd)
	goTimeFmt := goTimeFormat(cfg)

	times := computeTimes(p, date)
	now := time.Now().In(p.Location())

	// Current/next markers only make sense when showing the current day.
	sameDay := now.Format("2006-01-02") == times.Date().Format("2006-01-02")
	current, next := salat.NameNone, salat.NameNone
	if sameDay {
		current = times.CurrentName(now)
		next = times.NextName(now)
	}

	if FlagJSON {
		return printTodayJSON(times, p, loc, current, next, now, goTimeFmt)
	}

	printTodayRich(times, p, loc, current, next, now, goTimeFmt)
	return nil
}

// printTodayRich renders the colored terminal output for a day's schedule.
func printTodayRich(times salat.Times, p salat.Params, loc resolvedLocation, current, next salat.Name, now time.Time, goTimeFmt string) {
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Prayer Times"))
	fmt.Println()
	fmt.Printf("  %s\n", locationString(loc))
	fmt.Printf("  UTC%+g, %s Asr\n", p.TimezoneOffset, p.AsrMethod)
	fmt.Printf("  %s\n", times.Date().Format("Mon, 02 Jan 2006"))
	fmt.Println()

	maxNameLen := 0
	for _, pr := range times.Ordered() {
		if n := len(pr.Name.String()); n > maxNameLen {
			maxNameLen = n
		}
	}

	for _, pr := range times.Ordered() {
		line := fmt.Sprintf("  %-*s  %s", maxNameLen, pr.Name, pr.Time.Format(goTimeFmt))

		switch pr.Name {
		case current:
			// Current prayer window: dimmed.
			fmt.Println(display.Dim(line))
		case next:
			remaining, ok := times.Remaining(now)
			suffix := ""
			if ok {
				suffix = fmt.Sprintf("  <- next in %s", salat.FormatRemaining(remaining))
			}
			fmt.Println(display.Accent(line + suffix))
		default:
			fmt.Println(line)
		}
	}

	fmt.Println()
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location  todayJSONLocation `json:"location"`
	Date      string            `json:"date"`
	AsrMethod string            `json:"asr_method"`
	Timings   map[string]string `json:"timings"`
	Current   string            `json:"current,omitempty"`
	Next      *todayJSONNext    `json:"next,omitempty"`
}

type todayJSONLocation struct {
	City           string  `json:"city,omitempty"`
	Country        string  `json:"country,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	TimezoneOffset float64 `json:"timezone_offset"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(times salat.Times, p salat.Params, loc resolvedLocation, current, next salat.Name, now time.Time, goTimeFmt string) error {
	timings := make(map[string]string, 5)
	for _, pr := range times.Ordered() {
		timings[strings.ToLower(pr.Name.String())] = pr.Time.Format(goTimeFmt)
	}

	out := todayJSON{
		Location: todayJSONLocation{
			City:           loc.City,
			Country:        loc.Country,
			Latitude:       p.Latitude,
			Longitude:      p.Longitude,
			TimezoneOffset: p.TimezoneOffset,
		},
		Date:      times.Date().Format("2006-01-02"),
		AsrMethod: p.AsrMethod.String(),
		Timings:   timings,
	}

	if current != salat.NameNone {
		out.Current = strings.ToLower(current.String())
	}
	if next != salat.NameNone {
		if inst, ok := times.NextInstant(now); ok {
			out.Next = &todayJSONNext{
				Prayer:    strings.ToLower(next.String()),
				Time:      inst.Format(goTimeFmt),
				Remaining: salat.FormatRemaining(inst.Sub(now)),
			}
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
