// Package geo resolves a user's coordinates and UTC offset from their
// public IP address. It is strictly a CLI convenience: the calculation
// library takes explicit coordinates and never goes near the network.
package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location holds geographic coordinates detected from the user's IP.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"` // IANA zone name, e.g. "Africa/Cairo"
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// geoAPIURL is the geolocation API endpoint. It is a variable (not a
// constant) so that tests can override it with an httptest server URL.
var geoAPIURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country,timezone"

// DetectLocation uses ip-api.com to determine the user's location from
// their public IP address. This is a free service that requires no API key.
func DetectLocation() (*Location, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(geoAPIURL)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}, nil
}

// UTCOffsetHours resolves the location's IANA timezone name to its UTC
// offset, in hours, on the given date. DST is baked into whichever offset
// the zone uses on that date; the returned value is a one-time sample, not
// a live subscription.
func (l *Location) UTCOffsetHours(date time.Time) (float64, error) {
	if l.Timezone == "" {
		return 0, fmt.Errorf("no timezone in detected location")
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return 0, fmt.Errorf("invalid timezone %q: %w", l.Timezone, err)
	}
	_, offsetSec := date.In(loc).Zone()
	return float64(offsetSec) / 3600, nil
}
