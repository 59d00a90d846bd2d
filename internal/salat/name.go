// Package salat computes the five daily prayer instants for a location and
// date using the offline solar formulas in internal/astro, and exposes
// ordering-aware queries (next prayer, current prayer, time remaining) over
// the result.
//
// The whole package is side-effect free: queries take an explicit reference
// instant, so "now" is injected at the caller's boundary, never read here.
package salat

import (
	"fmt"
	"strings"
	"time"
)

// Name identifies one of the five daily prayers. The zero value NameNone
// means "no prayer" and is returned by queries that come up empty.
type Name int

const (
	NameNone Name = iota
	NameFajr
	NameDhuhr
	NameAsr
	NameMaghrib
	NameIsha
)

// AllNames lists the five prayers in chronological scan order. Next/current
// queries walk this order.
var AllNames = []Name{NameFajr, NameDhuhr, NameAsr, NameMaghrib, NameIsha}

// ShortNames maps prayer names to single-character abbreviations used in
// compact display formats.
var ShortNames = map[Name]string{
	NameFajr:    "F",
	NameDhuhr:   "D",
	NameAsr:     "A",
	NameMaghrib: "M",
	NameIsha:    "I",
}

func (n Name) String() string {
	switch n {
	case NameFajr:
		return "Fajr"
	case NameDhuhr:
		return "Dhuhr"
	case NameAsr:
		return "Asr"
	case NameMaghrib:
		return "Maghrib"
	case NameIsha:
		return "Isha"
	}
	return "None"
}

// ParseName parses a prayer name case-insensitively.
func ParseName(s string) (Name, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fajr":
		return NameFajr, nil
	case "dhuhr":
		return NameDhuhr, nil
	case "asr":
		return NameAsr, nil
	case "maghrib":
		return NameMaghrib, nil
	case "isha":
		return NameIsha, nil
	}
	return NameNone, fmt.Errorf("unknown prayer name: %q", s)
}

// Prayer pairs a prayer name with its computed instant.
type Prayer struct {
	Name Name
	Time time.Time
}
