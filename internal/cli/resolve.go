package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hmaged/salat/internal/astro"
	"github.com/hmaged/salat/internal/cache"
	"github.com/hmaged/salat/internal/config"
	"github.com/hmaged/salat/internal/geo"
	"github.com/hmaged/salat/internal/salat"
)

// resolvedLocation describes where the effective coordinates came from.
type resolvedLocation struct {
	Lat, Lon float64
	City     string // only set when auto-detected
	Country  string
	Timezone string // IANA hint from geo-detection, may be empty
	Auto     bool
}

// resolveParams builds validated calculation parameters for the given date.
// Priority for coordinates: CLI flags > config file > cached geolocation >
// IP auto-detect. Priority for the timezone offset: flags/config > detected
// IANA zone resolved on the date > host's local offset.
func resolveParams(cmd *cobra.Command, date time.Time) (salat.Params, resolvedLocation, error) {
	cfg := effectiveConfig(cmd)

	loc, err := resolveLocation(cfg)
	if err != nil {
		return salat.Params{}, resolvedLocation{}, err
	}

	tz, err := resolveTimezone(cfg, loc, date)
	if err != nil {
		return salat.Params{}, resolvedLocation{}, err
	}

	method := cfg.AsrMethodOrDefault(salat.AsrStandard)

	p, err := salat.NewParams(loc.Lat, loc.Lon, tz, method)
	if err != nil {
		return salat.Params{}, resolvedLocation{}, err
	}

	log.Debug().
		Float64("latitude", p.Latitude).
		Float64("longitude", p.Longitude).
		Float64("timezone", p.TimezoneOffset).
		Str("asr_method", p.AsrMethod.String()).
		Bool("auto_detected", loc.Auto).
		Msg("resolved calculation parameters")

	return p, loc, nil
}

// resolveLocation determines the effective coordinates.
func resolveLocation(cfg *config.Config) (resolvedLocation, error) {
	if cfg.Latitude != 0 || cfg.Longitude != 0 {
		return resolvedLocation{Lat: cfg.Latitude, Lon: cfg.Longitude}, nil
	}

	// No coordinates anywhere: fall back to IP geolocation, cached for a
	// day so status-bar polling stays cheap.
	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	if c != nil {
		if cached := c.LoadGeo(); cached != nil {
			log.Debug().Str("city", cached.City).Msg("using cached geolocation")
			return resolvedLocation{
				Lat:      cached.Latitude,
				Lon:      cached.Longitude,
				City:     cached.City,
				Country:  cached.Country,
				Timezone: cached.Timezone,
				Auto:     true,
			}, nil
		}
	}

	detected, err := geo.DetectLocation()
	if err != nil {
		return resolvedLocation{}, fmt.Errorf("no location configured and auto-detection failed: %w", err)
	}

	if c != nil {
		_ = c.SaveGeo(detected) // best-effort
	}

	return resolvedLocation{
		Lat:      detected.Latitude,
		Lon:      detected.Longitude,
		City:     detected.City,
		Country:  detected.Country,
		Timezone: detected.Timezone,
		Auto:     true,
	}, nil
}

// resolveTimezone determines the UTC offset in hours for the date.
func resolveTimezone(cfg *config.Config, loc resolvedLocation, date time.Time) (float64, error) {
	if cfg.Timezone != nil {
		return *cfg.Timezone, nil
	}

	if loc.Timezone != "" {
		detected := &geo.Location{Timezone: loc.Timezone}
		tz, err := detected.UTCOffsetHours(date)
		if err == nil {
			return tz, nil
		}
		log.Debug().Err(err).Str("zone", loc.Timezone).Msg("detected zone unusable, using host offset")
	}

	_, offsetSec := time.Now().Zone()
	return float64(offsetSec) / 3600, nil
}

// resolveDate parses the --date flag, defaulting to the current day.
func resolveDate() (time.Time, error) {
	if FlagDate == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", FlagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", FlagDate)
	}
	return d, nil
}

// computeTimes runs the calculation, tracing the solar intermediates under
// --verbose.
func computeTimes(p salat.Params, date time.Time) salat.Times {
	if e := log.Debug(); e.Enabled() {
		year, month, day := date.Date()
		eph := astro.Ephemeris(astro.JulianDay(year, int(month), day))
		e.Float64("julian_day", eph.JulianDay).
			Float64("julian_century", eph.JulianCentury).
			Float64("declination", eph.Declination).
			Float64("equation_of_time_min", eph.EquationOfTime).
			Msg("solar ephemeris")
	}
	return salat.Calculate(p, date)
}

// locationString builds a human-readable location label.
func locationString(loc resolvedLocation) string {
	if loc.City != "" && loc.Country != "" {
		return loc.City + ", " + loc.Country
	}
	return fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lon)
}
