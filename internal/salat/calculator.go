package salat

import (
	"math"
	"time"

	"github.com/hmaged/salat/internal/astro"
)

// Twilight altitudes of the Egyptian General Authority of Survey convention,
// in degrees below the horizon.
const (
	fajrAltitude = -19.5
	ishaAltitude = -17.5

	// Sunset with the standard refraction and solar-radius adjustment.
	sunsetAltitude = -0.833
)

// maghribShift is the conventional one-minute delay applied after sunset.
const maghribShift = time.Minute

// Calculate computes the five prayer instants for the calendar date of date
// under the given parameters. Any time-of-day component of date is ignored.
//
// The function is pure and never fails: parameter validation already
// happened at construction, and polar geometry degrades through clamping
// into approximate (possibly coincident) instants rather than an error.
func Calculate(p Params, date time.Time) Times {
	year, month, day := date.Date()

	jd := astro.JulianDay(year, int(month), day)
	eph := astro.Ephemeris(jd)
	loc := p.Location()

	// Dhuhr is solar noon, the hour-angle-zero case.
	dhuhr := astro.TimeAtAltitude(p.Longitude, p.TimezoneOffset, eph.EquationOfTime, 0)

	// Fajr on the morning side, Isha on the evening side of noon.
	fajrHA := astro.HourAngle(p.Latitude, eph.Declination, fajrAltitude)
	fajr := astro.TimeAtAltitude(p.Longitude, p.TimezoneOffset, eph.EquationOfTime, -fajrHA)

	ishaHA := astro.HourAngle(p.Latitude, eph.Declination, ishaAltitude)
	isha := astro.TimeAtAltitude(p.Longitude, p.TimezoneOffset, eph.EquationOfTime, ishaHA)

	sunsetHA := astro.HourAngle(p.Latitude, eph.Declination, sunsetAltitude)
	sunset := astro.TimeAtAltitude(p.Longitude, p.TimezoneOffset, eph.EquationOfTime, sunsetHA)

	asrHA := astro.HourAngle(p.Latitude, eph.Declination, asrAltitude(p, eph.Declination))
	asr := astro.TimeAtAltitude(p.Longitude, p.TimezoneOffset, eph.EquationOfTime, asrHA)

	return Times{
		date:    time.Date(year, month, day, 0, 0, 0, 0, loc),
		fajr:    instant(jd, fajr, loc),
		dhuhr:   instant(jd, dhuhr, loc),
		asr:     instant(jd, asr, loc),
		maghrib: instant(jd, sunset, loc).Add(maghribShift),
		isha:    instant(jd, isha, loc),
	}
}

// asrAltitude solves the shadow-length equation for the altitude at which
// Asr begins: alt = atan(1 / (k + |tan(latitude - declination)|)), with the
// method's shadow factor k.
func asrAltitude(p Params, declination float64) float64 {
	k := p.AsrMethod.ShadowFactor()
	spread := math.Abs(math.Tan(astro.Deg2Rad(p.Latitude - declination)))
	return astro.Rad2Deg(math.Atan(1 / (k + spread)))
}

// instant converts a fraction of day on the calendar date of jd into a
// concrete time in loc, rounded to the nearest whole minute. Rounding past
// midnight rolls into the next day.
func instant(jd, frac float64, loc *time.Location) time.Time {
	frac = astro.WrapDayFraction(frac)
	year, month, day := astro.CalendarDate(jd)
	minutes := int(math.Round(frac * 24 * 60))

	midnight := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	return midnight.Add(time.Duration(minutes) * time.Minute)
}
