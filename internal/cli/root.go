// Package cli implements the salat command tree. All prayer instants are
// computed in-process from the solar formulas in internal/astro; the only
// network access anywhere is the optional IP geolocation fallback when no
// coordinates are configured.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hmaged/salat/internal/config"
)

// Global flags shared across all subcommands.
var (
	FlagLatitude   float64
	FlagLongitude  float64
	FlagTimezone   float64
	FlagAsrMethod  string
	FlagDate       string
	FlagJSON       bool
	FlagCacheDir   string
	FlagTimeFormat string
	FlagVerbose    bool
)

// loadedConfig holds the config loaded during PersistentPreRunE.
// Available to all subcommand handlers.
var loadedConfig *config.Config

// NewRootCmd creates the root command for the salat CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "salat",
		Short:   "Offline Islamic prayer times CLI",
		Long:    "Compute Islamic prayer times for any location and date from solar position formulas.\nFully offline: no prayer-times API, no lookup tables.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg
			return nil
		},
		// Default action: show the day's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Latitude in degrees, north positive (overrides config)")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Longitude in degrees, east positive (overrides config)")
	pf.Float64Var(&FlagTimezone, "timezone", 0, "UTC offset in hours, e.g. 2 or -5 (overrides config)")
	pf.StringVar(&FlagAsrMethod, "asr-method", "", "Asr method: standard, shafi or hanafi (overrides config)")
	pf.StringVar(&FlagDate, "date", "", "Date to compute, YYYY-MM-DD (default: today)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Geolocation cache directory (default: ~/.cache/salat/)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Trace parameter resolution and solar intermediates to stderr")

	// Register subcommands.
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newCurrentCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// setupLogging configures the global zerolog logger. Debug output is only
// emitted under --verbose; everything goes to stderr so it never mixes
// with parseable stdout.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if FlagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		empty := config.Config{}
		cfg = &empty
	}

	defaults := config.Defaults()

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "latitude") {
		cfg.Latitude = FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Longitude = FlagLongitude
	}
	if flagWasSet(flags, root, "timezone") {
		tz := FlagTimezone
		cfg.Timezone = &tz
	}
	if flagWasSet(flags, root, "asr-method") {
		cfg.AsrMethod = FlagAsrMethod
	}
	if cfg.AsrMethod == "" {
		cfg.AsrMethod = defaults.AsrMethod
	}
	if flagWasSet(flags, root, "cache-dir") {
		cfg.CacheDir = FlagCacheDir
	}

	// Time format: CLI flag > config > default ("24h").
	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFormat = FlagTimeFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaults.TimeFormat
	}

	return cfg
}

// flagWasSet checks if a flag was explicitly set on either the local or
// persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// goTimeFormat maps the config time_format value to a Go layout string.
func goTimeFormat(cfg *config.Config) string {
	if cfg.TimeFormat == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
