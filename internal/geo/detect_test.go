package geo

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDetectLocation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","lat":30.0444,"lon":31.2357,"city":"Cairo","country":"Egypt","timezone":"Africa/Cairo"}`))
	}))
	defer srv.Close()

	orig := geoAPIURL
	geoAPIURL = srv.URL
	defer func() { geoAPIURL = orig }()

	loc, err := DetectLocation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Latitude != 30.0444 || loc.Longitude != 31.2357 {
		t.Errorf("coordinates = %f, %f", loc.Latitude, loc.Longitude)
	}
	if loc.Timezone != "Africa/Cairo" {
		t.Errorf("timezone = %q", loc.Timezone)
	}
}

func TestDetectLocation_APIFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	orig := geoAPIURL
	geoAPIURL = srv.URL
	defer func() { geoAPIURL = orig }()

	if _, err := DetectLocation(); err == nil {
		t.Error("expected error for failed lookup")
	}
}

func TestDetectLocation_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	orig := geoAPIURL
	geoAPIURL = srv.URL
	defer func() { geoAPIURL = orig }()

	if _, err := DetectLocation(); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestUTCOffsetHours(t *testing.T) {
	loc := &Location{Timezone: "Africa/Cairo"}

	// Cairo is UTC+2 in December (no DST).
	got, err := loc.UTCOffsetHours(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("Cairo December offset = %f, want 2", got)
	}
}

func TestUTCOffsetHours_Invalid(t *testing.T) {
	if _, err := (&Location{}).UTCOffsetHours(time.Now()); err == nil {
		t.Error("empty timezone should error")
	}
	if _, err := (&Location{Timezone: "Mars/Olympus"}).UTCOffsetHours(time.Now()); err == nil {
		t.Error("unknown timezone should error")
	}
}
