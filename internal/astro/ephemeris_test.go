package astro

import (
	"math"
	"testing"
)

func jcFor(year, month, day int) float64 {
	return JulianCentury(JulianDay(year, month, day))
}

// ---------------------------------------------------------------------------
// Ephemeris chain sanity against well-known solar behavior
// ---------------------------------------------------------------------------

func TestDeclination_Seasons(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		min, max         float64
	}{
		{"June solstice", 2025, 6, 21, 23.3, 23.5},
		{"December solstice", 2025, 12, 21, -23.5, -23.3},
		{"March equinox", 2025, 3, 20, -1.0, 1.0},
		{"September equinox", 2025, 9, 22, -1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Declination(jcFor(tt.year, tt.month, tt.day))
			if dec < tt.min || dec > tt.max {
				t.Errorf("Declination on %04d-%02d-%02d = %f, want within [%f, %f]",
					tt.year, tt.month, tt.day, dec, tt.min, tt.max)
			}
		})
	}
}

func TestEquationOfTime_Extremes(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		min, max         float64 // minutes
	}{
		// The sundial runs ~14 minutes behind the clock in mid February
		// and ~16 minutes ahead in early November.
		{"February trough", 2025, 2, 11, -15.5, -13.0},
		{"November peak", 2025, 11, 3, 15.0, 17.5},
		{"mid April near zero", 2025, 4, 15, -1.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := EquationOfTime(jcFor(tt.year, tt.month, tt.day))
			if eq < tt.min || eq > tt.max {
				t.Errorf("EquationOfTime on %04d-%02d-%02d = %f min, want within [%f, %f]",
					tt.year, tt.month, tt.day, eq, tt.min, tt.max)
			}
		})
	}
}

func TestGeomMeanValues_Normalized(t *testing.T) {
	// Longitudes and anomalies must come out in [0, 360) across a wide
	// range of centuries, including negative jc.
	for year := 1900; year <= 2100; year += 13 {
		jc := jcFor(year, 7, 1)
		l := GeomMeanLongitude(jc)
		m := GeomMeanAnomaly(jc)
		if l < 0 || l >= 360 {
			t.Errorf("GeomMeanLongitude(jc=%f) = %f, want [0, 360)", jc, l)
		}
		if m < 0 || m >= 360 {
			t.Errorf("GeomMeanAnomaly(jc=%f) = %f, want [0, 360)", jc, m)
		}
	}
}

func TestMeanObliquity_NearCurrentValue(t *testing.T) {
	// The obliquity of the ecliptic is about 23.43 degrees in the current
	// era and drifts very slowly.
	obl := MeanObliquity(jcFor(2025, 1, 1))
	if obl < 23.42 || obl > 23.45 {
		t.Errorf("MeanObliquity(2025) = %f, want about 23.43", obl)
	}

	corr := ObliquityCorrection(jcFor(2025, 1, 1))
	if math.Abs(corr-obl) > 0.01 {
		t.Errorf("ObliquityCorrection differs from mean by %f, want < 0.01 deg", corr-obl)
	}
}

func TestEphemeris_MatchesChainFunctions(t *testing.T) {
	jd := JulianDay(2025, 12, 15)
	eph := Ephemeris(jd)

	jc := JulianCentury(jd)
	if eph.JulianDay != jd || eph.JulianCentury != jc {
		t.Fatalf("Ephemeris carried jd=%f jc=%f, want %f/%f",
			eph.JulianDay, eph.JulianCentury, jd, jc)
	}
	if eph.Declination != Declination(jc) {
		t.Errorf("Ephemeris declination %f != Declination(jc) %f", eph.Declination, Declination(jc))
	}
	if eph.EquationOfTime != EquationOfTime(jc) {
		t.Errorf("Ephemeris eq of time %f != EquationOfTime(jc) %f", eph.EquationOfTime, EquationOfTime(jc))
	}
}

// ---------------------------------------------------------------------------
// Hour angle and time-of-day solver
// ---------------------------------------------------------------------------

func TestHourAngle_Equator(t *testing.T) {
	// On the equator with zero declination the sun crosses the horizon at
	// a 90 degree hour angle.
	got := HourAngle(0, 0, 0)
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("HourAngle(0, 0, 0) = %f, want 90", got)
	}
}

func TestHourAngle_PolarClamp(t *testing.T) {
	tests := []struct {
		name          string
		lat, dec, alt float64
		want          float64
	}{
		// Polar night: the sun never gets up to the target altitude, the
		// cosine argument exceeds +1 and clamps to an angle of 0.
		{"polar night clamps high", 89.9, -23.4, -18, 0},
		// Midnight sun: the sun never gets down to the target altitude,
		// the argument falls below -1 and clamps to 180.
		{"polar day clamps low", 89.9, 23.4, -18, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourAngle(tt.lat, tt.dec, tt.alt)
			if math.IsNaN(got) {
				t.Fatalf("HourAngle(%f, %f, %f) = NaN", tt.lat, tt.dec, tt.alt)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HourAngle(%f, %f, %f) = %f, want %f",
					tt.lat, tt.dec, tt.alt, got, tt.want)
			}
		})
	}
}

func TestHourAngle_NonNegative(t *testing.T) {
	for lat := -89.0; lat <= 89.0; lat += 17 {
		for _, alt := range []float64{-19.5, -17.5, -0.833, 30} {
			if got := HourAngle(lat, -20.5, alt); got < 0 {
				t.Errorf("HourAngle(%f, -20.5, %f) = %f, want >= 0", lat, alt, got)
			}
		}
	}
}

func TestTimeAtAltitude_Greenwich(t *testing.T) {
	// At longitude 0, UTC, with no equation-of-time offset, solar noon is
	// exactly half the day and a 90 degree hour angle lands at 18:00.
	if got := TimeAtAltitude(0, 0, 0, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("TimeAtAltitude(0,0,0,0) = %f, want 0.5", got)
	}
	if got := TimeAtAltitude(0, 0, 0, 90); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("TimeAtAltitude(0,0,0,90) = %f, want 0.75", got)
	}
	if got := TimeAtAltitude(0, 0, 0, -90); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("TimeAtAltitude(0,0,0,-90) = %f, want 0.25", got)
	}
}

func TestTimeAtAltitude_AlwaysInDayRange(t *testing.T) {
	// Extreme longitude/timezone pairs push the raw value outside [0, 1);
	// it must wrap back in.
	for _, lon := range []float64{-180, -179, 0, 179, 180} {
		for _, tz := range []float64{-12, 0, 14} {
			got := TimeAtAltitude(lon, tz, 16.4, 110)
			if got < 0 || got >= 1 {
				t.Errorf("TimeAtAltitude(lon=%f, tz=%f) = %f, want [0, 1)", lon, tz, got)
			}
		}
	}
}

func TestWrapDayFraction(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{2.5, 0.5},
	}
	for _, tt := range tests {
		if got := WrapDayFraction(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapDayFraction(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
