package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hmaged/salat/internal/cache"
	"github.com/hmaged/salat/internal/config"
	"github.com/hmaged/salat/internal/geo"
	"github.com/hmaged/salat/internal/salat"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

// salat-status is a single-line status bar companion to the salat CLI,
// meant to be polled from tmux, waybar or similar. It computes everything
// in-process; the only possible network access is the IP geolocation
// fallback when no coordinates are configured anywhere.
func main() {
	// Location flags
	latitude := flag.Float64("latitude", 0, "Latitude for prayer time calculation")
	longitude := flag.Float64("longitude", 0, "Longitude for prayer time calculation")
	timezone := flag.Float64("timezone", -99, "UTC offset in hours (e.g. 2 or -5). -99 to auto-resolve.")

	// Calculation flags
	asrMethod := flag.String("asr-method", "", "Asr method: standard, shafi or hanafi")

	// Display flags
	format := flag.String("format", salat.FormatNameAndTime, "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template (e.g. '{{.Name}} in {{.Remaining}}'). Template fields: .Name, .ShortName, .Time, .Remaining, .Hours, .Minutes")
	timeFormat := flag.String("time-format", "24h", "Time format: 12h or 24h")

	// Cache flags
	cacheDir := flag.String("cache-dir", "", "Geolocation cache directory (default: ~/.cache/salat/)")

	// Info flags
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("salat-status %s\n", version)
		return
	}

	if err := run(*latitude, *longitude, *timezone, *asrMethod, *format, *timeFormat, *cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(lat, lon, tz float64, asrMethod, format, timeFmt, cacheDir string) error {
	// Flag values fill in anything the config file does not specify.
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	if lat != 0 || lon != 0 {
		cfg.Latitude = lat
		cfg.Longitude = lon
	}
	if tz != -99 {
		cfg.Timezone = &tz
	}
	if asrMethod != "" {
		cfg.AsrMethod = asrMethod
	}
	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}

	goTimeFmt := "15:04" // 24h
	if timeFmt == "12h" {
		goTimeFmt = "3:04 PM"
	}

	lat, lon, zoneHint, err := resolveLocation(cfg)
	if err != nil {
		return err
	}

	now := time.Now()

	offset, err := resolveTimezone(cfg, zoneHint, now)
	if err != nil {
		return err
	}

	p, err := salat.NewParams(lat, lon, offset, cfg.AsrMethodOrDefault(salat.AsrStandard))
	if err != nil {
		return err
	}

	now = now.In(p.Location())
	times := salat.Calculate(p, now)

	next := times.NextName(now)
	instant, _ := times.NextInstant(now)

	// Past the Isha window entirely: roll to the next calendar day.
	if next == salat.NameNone {
		tomorrow := times.Date().AddDate(0, 0, 1)
		times = salat.Calculate(p, tomorrow)
		next = salat.NameFajr
		instant, _ = times.Get(salat.NameFajr)
	}

	fmt.Print(salat.FormatOutput(salat.Prayer{Name: next, Time: instant}, now, format, goTimeFmt))
	return nil
}

// resolveLocation determines the effective coordinates: configured values,
// then cached geolocation, then IP auto-detection.
func resolveLocation(cfg *config.Config) (float64, float64, string, error) {
	if cfg.Latitude != 0 || cfg.Longitude != 0 {
		return cfg.Latitude, cfg.Longitude, "", nil
	}

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
	}

	if c != nil {
		if cached := c.LoadGeo(); cached != nil {
			return cached.Latitude, cached.Longitude, cached.Timezone, nil
		}
	}

	detected, err := geo.DetectLocation()
	if err != nil {
		return 0, 0, "", fmt.Errorf("no location configured and auto-detection failed: %w", err)
	}

	if c != nil {
		_ = c.SaveGeo(detected) // best-effort
	}

	return detected.Latitude, detected.Longitude, detected.Timezone, nil
}

// resolveTimezone determines the UTC offset in hours, preferring an explicit
// setting, then the detected IANA zone, then the host's local offset.
func resolveTimezone(cfg *config.Config, zoneHint string, now time.Time) (float64, error) {
	if cfg.Timezone != nil {
		return *cfg.Timezone, nil
	}

	if zoneHint != "" {
		detected := &geo.Location{Timezone: zoneHint}
		if tz, err := detected.UTCOffsetHours(now); err == nil {
			return tz, nil
		}
	}

	_, offsetSec := now.Zone()
	return float64(offsetSec) / 3600, nil
}
