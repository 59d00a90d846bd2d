package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hmaged/salat/internal/display"
	"github.com/hmaged/salat/internal/salat"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long:  "Print the time of one prayer for the selected date, or across multiple days with --days.",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	name, err := salat.ParseName(args[0])
	if err != nil {
		return err
	}

	days := 1
	switch flagQueryDays {
	case "":
	case "week":
		days = 7
	case "month":
		days = 30
	default:
		n, convErr := strconv.Atoi(flagQueryDays)
		if convErr != nil || n < 1 {
			return fmt.Errorf("invalid --days %q: want a positive integer, 'week' or 'month'", flagQueryDays)
		}
		days = n
	}

	start, err := resolveDate()
	if err != nil {
		return err
	}

	p, _, err := resolveParams(cmd, start)
	if err != nil {
		return err
	}

	cfg := effectiveConfig(cmd)
	goTimeFmt := goTimeFormat(cfg)

	if days == 1 {
		times := computeTimes(p, start)
		inst, _ := times.Get(name)
		fmt.Printf("%s %s\n", name, inst.Format(goTimeFmt))
		return nil
	}

	tbl := display.NewTable([]string{"Date", name.String()})
	for i := 0; i < days; i++ {
		times := computeTimes(p, start.AddDate(0, 0, i))
		inst, _ := times.Get(name)
		tbl.AddRow([]string{times.Date().Format("Mon 02 Jan"), inst.Format(goTimeFmt)})
	}

	fmt.Println()
	fmt.Print(tbl.Render())
	fmt.Println()
	return nil
}
