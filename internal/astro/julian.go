// Package astro implements the solar-position formulas behind the prayer
// time calculations: Julian Day conversions, a NOAA-style solar ephemeris
// chain, and the hour-angle solver.
//
// Every function is pure and deterministic. Angles are in degrees unless a
// name says otherwise; degree/radian conversions are always explicit.
// Nothing here returns an error: out-of-domain geometry near the poles is
// clamped into range rather than rejected, so results degrade instead of
// failing.
package astro

import "math"

// JulianDay returns the Julian Day number for midnight (00:00) of the given
// Gregorian calendar date. January and February count as months 13 and 14 of
// the previous year before the century correction is applied.
func JulianDay(year, month, day int) float64 {
	y := year
	m := month
	if m <= 2 {
		y--
		m += 12
	}

	b := 2 - y/100 + y/100/4

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5
}

// CalendarDate converts a Julian Day number back to a calendar date. It is
// the inverse of JulianDay; values before the Gregorian cutover
// (Z < 2299161) take the Julian-calendar branch.
func CalendarDate(jd float64) (year, month, day int) {
	z := math.Floor(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}

// JulianCentury returns centuries since the J2000.0 epoch.
func JulianCentury(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}
