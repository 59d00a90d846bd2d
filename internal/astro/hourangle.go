package astro

import "math"

// HourAngle returns the hour angle, in degrees, at which the sun reaches
// targetAlt for an observer at the given latitude, given the solar
// declination. The cosine argument is clamped to [-1, 1] so polar latitudes
// and extreme declinations degrade to a 0° or 180° angle instead of leaving
// the acos domain. The result is always non-negative; the caller picks the
// morning (negative) or evening (positive) side.
func HourAngle(latitude, declination, targetAlt float64) float64 {
	lat := Deg2Rad(latitude)
	dec := Deg2Rad(declination)
	alt := Deg2Rad(targetAlt)

	cosH := (math.Sin(alt) - math.Sin(lat)*math.Sin(dec)) /
		(math.Cos(lat) * math.Cos(dec))
	if cosH > 1 {
		cosH = 1
	} else if cosH < -1 {
		cosH = -1
	}
	return Rad2Deg(math.Acos(cosH))
}

// TimeAtAltitude converts an hour angle into a local fraction of day.
// Local solar noon is (720 - 4·lon - eqTime + tz·60)/1440 and each degree
// of hour angle is four minutes of time. The result is wrapped into [0, 1).
func TimeAtAltitude(longitude, timezoneHours, eqTimeMinutes, hourAngleDeg float64) float64 {
	noon := (720.0 - 4.0*longitude - eqTimeMinutes + timezoneHours*60.0) / 1440.0
	return WrapDayFraction(noon + hourAngleDeg*4.0/1440.0)
}

// WrapDayFraction normalizes a fraction of day into [0, 1).
func WrapDayFraction(f float64) float64 {
	for f < 0 {
		f++
	}
	for f >= 1 {
		f--
	}
	return f
}
