package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hmaged/salat/internal/salat"
)

var flagFormat string

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nDesigned for status bars: the output is a single line without trailing newline.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", salat.FormatFull, "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	now := time.Now()

	p, _, err := resolveParams(cmd, now)
	if err != nil {
		return err
	}

	cfg := effectiveConfig(cmd)
	goTimeFmt := goTimeFormat(cfg)

	now = now.In(p.Location())
	times := computeTimes(p, now)

	name := times.NextName(now)
	if name == salat.NameNone {
		// Past the +24h window of today's Fajr; recompute against the next
		// calendar day so the status line never goes blank.
		times = computeTimes(p, now.AddDate(0, 0, 1))
		name = times.NextName(now)
	}
	if name == salat.NameNone {
		return fmt.Errorf("could not determine next prayer")
	}

	inst, _ := times.NextInstant(now)
	fmt.Print(salat.FormatOutput(salat.Prayer{Name: name, Time: inst}, now, flagFormat, goTimeFmt))
	return nil
}

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the prayer window the current time falls in",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			p, _, err := resolveParams(cmd, now)
			if err != nil {
				return err
			}

			cfg := effectiveConfig(cmd)
			goTimeFmt := goTimeFormat(cfg)

			now = now.In(p.Location())
			times := computeTimes(p, now)

			current := times.CurrentName(now)
			if current == salat.NameNone {
				fmt.Println("No prayer window active (before Fajr).")
				return nil
			}

			start, _ := times.Get(current)
			line := fmt.Sprintf("%s (since %s", current, start.Format(goTimeFmt))
			if next := times.NextName(now); next != salat.NameNone {
				if remaining, ok := times.Remaining(now); ok {
					line += fmt.Sprintf(", %s in %s", next, salat.FormatRemaining(remaining))
				}
			}
			fmt.Println(line + ")")
			return nil
		},
	}
}
