package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hmaged/salat/internal/display"
	"github.com/hmaged/salat/internal/salat"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days starting at --date (default: 7).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, 7)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		Long:  "Alias for 'list 7'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		Long:  "Alias for 'list 30'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 30)
		},
	}
}

// runList is the handler for the list subcommand.
func runList(cmd *cobra.Command, args []string, defaultDays int) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of days: %q (must be a positive integer)", args[0])
		}
		days = n
	}

	start, err := resolveDate()
	if err != nil {
		return err
	}

	p, loc, err := resolveParams(cmd, start)
	if err != nil {
		return err
	}

	cfg := effectiveConfig(cmd)
	goTimeFmt := goTimeFormat(cfg)

	now := time.Now().In(p.Location())
	todayStr := now.Format("2006-01-02")

	all := make([]salat.Times, 0, days)
	for i := 0; i < days; i++ {
		all = append(all, computeTimes(p, start.AddDate(0, 0, i)))
	}

	if FlagJSON {
		return printListJSON(all, p, loc, goTimeFmt)
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("Prayer Times (%d days)", days)))
	fmt.Println()
	fmt.Printf("  %s\n", locationString(loc))
	fmt.Println()

	headers := []string{"Date"}
	for _, n := range salat.AllNames {
		headers = append(headers, n.String())
	}
	tbl := display.NewTable(headers)

	for i, times := range all {
		row := []string{times.Date().Format("Mon 02 Jan")}
		for _, pr := range times.Ordered() {
			row = append(row, pr.Time.Format(goTimeFmt))
		}
		tbl.AddRow(row)

		if times.Date().Format("2006-01-02") == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}

// listJSONDay is one day's entry in the list JSON output.
type listJSONDay struct {
	Date    string            `json:"date"`
	Timings map[string]string `json:"timings"`
}

func printListJSON(all []salat.Times, p salat.Params, loc resolvedLocation, goTimeFmt string) error {
	out := struct {
		Location todayJSONLocation `json:"location"`
		Days     []listJSONDay     `json:"days"`
	}{
		Location: todayJSONLocation{
			City:           loc.City,
			Country:        loc.Country,
			Latitude:       p.Latitude,
			Longitude:      p.Longitude,
			TimezoneOffset: p.TimezoneOffset,
		},
	}

	for _, times := range all {
		day := listJSONDay{
			Date:    times.Date().Format("2006-01-02"),
			Timings: make(map[string]string, 5),
		}
		for _, pr := range times.Ordered() {
			day.Timings[strings.ToLower(pr.Name.String())] = pr.Time.Format(goTimeFmt)
		}
		out.Days = append(out.Days, day)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
