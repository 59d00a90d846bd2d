package salat

import (
	"fmt"
	"strings"
	"time"
)

// AsrMethod selects the juristic shadow-length convention for Asr.
type AsrMethod int

const (
	// AsrStandard uses a shadow factor of 1 (majority opinion).
	AsrStandard AsrMethod = iota
	// AsrShafi is numerically identical to AsrStandard.
	AsrShafi
	// AsrHanafi uses a shadow factor of 2, which yields a later Asr.
	AsrHanafi
)

func (m AsrMethod) String() string {
	switch m {
	case AsrShafi:
		return "shafi"
	case AsrHanafi:
		return "hanafi"
	}
	return "standard"
}

// ShadowFactor returns the shadow-length multiple that defines Asr for the
// method.
func (m AsrMethod) ShadowFactor() float64 {
	if m == AsrHanafi {
		return 2
	}
	return 1
}

// ParseAsrMethod parses an Asr method name case-insensitively.
func ParseAsrMethod(s string) (AsrMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return AsrStandard, nil
	case "shafi":
		return AsrShafi, nil
	case "hanafi":
		return AsrHanafi, nil
	}
	return AsrStandard, fmt.Errorf("unknown asr method: %q (valid: standard, shafi, hanafi)", s)
}

// InvalidArgumentError reports a construction argument outside its allowed
// bounds.
type InvalidArgumentError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: must be between %v and %v",
		e.Field, e.Value, e.Min, e.Max)
}

// Params is a validated calculation configuration. Construct it through
// NewParams or NewParamsLocalTZ; a Params obtained from either is always in
// range and never mutated afterwards.
type Params struct {
	Latitude       float64 // degrees, north positive
	Longitude      float64 // degrees, east positive
	TimezoneOffset float64 // hours east of UTC
	AsrMethod      AsrMethod
}

// NewParams validates the coordinates and returns a parameter set. It fails
// with an *InvalidArgumentError naming the offending bound; no partially
// valid Params is ever produced.
func NewParams(latitude, longitude, timezoneOffset float64, method AsrMethod) (Params, error) {
	if latitude < -90 || latitude > 90 {
		return Params{}, &InvalidArgumentError{Field: "latitude", Value: latitude, Min: -90, Max: 90}
	}
	if longitude < -180 || longitude > 180 {
		return Params{}, &InvalidArgumentError{Field: "longitude", Value: longitude, Min: -180, Max: 180}
	}
	return Params{
		Latitude:       latitude,
		Longitude:      longitude,
		TimezoneOffset: timezoneOffset,
		AsrMethod:      method,
	}, nil
}

// NewParamsLocalTZ builds Params from the host's current UTC offset, sampled
// once in whole hours at construction time. Later daylight-saving
// transitions are not tracked.
func NewParamsLocalTZ(latitude, longitude float64, method AsrMethod) (Params, error) {
	_, offsetSec := time.Now().Zone()
	return NewParams(latitude, longitude, float64(offsetSec/3600), method)
}

// Location returns a fixed-offset time.Location matching the parameter's
// timezone offset. Computed instants carry this location.
func (p Params) Location() *time.Location {
	offsetSec := int(p.TimezoneOffset * 3600)
	name := fmt.Sprintf("UTC%+g", p.TimezoneOffset)
	if p.TimezoneOffset == 0 {
		name = "UTC"
	}
	return time.FixedZone(name, offsetSec)
}
