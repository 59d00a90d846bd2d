package astro

import "math"

// Ephem bundles the solar ephemeris quantities for one Julian Day. Values
// are recomputed on every call; nothing is cached between calls.
type Ephem struct {
	JulianDay         float64
	JulianCentury     float64
	MeanLongitude     float64 // degrees
	MeanAnomaly       float64 // degrees
	ApparentLongitude float64 // degrees
	Obliquity         float64 // corrected obliquity, degrees
	Declination       float64 // degrees
	EquationOfTime    float64 // minutes
}

// Ephemeris evaluates the full solar chain for the given Julian Day so that
// callers run it once per date and share the results across all five
// prayers.
func Ephemeris(jd float64) Ephem {
	jc := JulianCentury(jd)
	return Ephem{
		JulianDay:         jd,
		JulianCentury:     jc,
		MeanLongitude:     GeomMeanLongitude(jc),
		MeanAnomaly:       GeomMeanAnomaly(jc),
		ApparentLongitude: ApparentLongitude(jc),
		Obliquity:         ObliquityCorrection(jc),
		Declination:       Declination(jc),
		EquationOfTime:    EquationOfTime(jc),
	}
}

// GeomMeanLongitude returns the sun's geometric mean longitude in degrees,
// normalized to [0, 360).
func GeomMeanLongitude(jc float64) float64 {
	return normalize360(280.46646 + jc*(36000.76983+jc*0.0003032))
}

// GeomMeanAnomaly returns the sun's geometric mean anomaly in degrees,
// normalized to [0, 360).
func GeomMeanAnomaly(jc float64) float64 {
	return normalize360(357.52911 + jc*(35999.05029-0.0001537*jc))
}

// EccentricityEarthOrbit returns the eccentricity of Earth's orbit
// (dimensionless).
func EccentricityEarthOrbit(jc float64) float64 {
	return 0.016708634 - jc*(0.000042037+0.0000001267*jc)
}

// EquationOfCenter returns the sun's equation of center in degrees, a
// three-term sine series in the mean anomaly.
func EquationOfCenter(jc, meanAnomaly float64) float64 {
	m := Deg2Rad(meanAnomaly)
	return math.Sin(m)*(1.914602-jc*(0.004817+0.000014*jc)) +
		math.Sin(2*m)*(0.019993-0.000101*jc) +
		math.Sin(3*m)*0.000289
}

// TrueLongitude returns the sun's true longitude in degrees: the geometric
// mean longitude plus the equation of center.
func TrueLongitude(jc float64) float64 {
	return GeomMeanLongitude(jc) + EquationOfCenter(jc, GeomMeanAnomaly(jc))
}

// ApparentLongitude returns the sun's apparent longitude in degrees,
// correcting the true longitude for nutation and aberration.
func ApparentLongitude(jc float64) float64 {
	omega := 125.04 - 1934.136*jc
	return TrueLongitude(jc) - 0.00569 - 0.00478*math.Sin(Deg2Rad(omega))
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees,
// built up from the arc-minute/arc-second polynomial in jc.
func MeanObliquity(jc float64) float64 {
	seconds := 21.448 - jc*(46.815+jc*(0.00059-jc*0.001813))
	return 23.0 + (26.0+seconds/60.0)/60.0
}

// ObliquityCorrection returns the obliquity of the ecliptic in degrees,
// corrected for nutation.
func ObliquityCorrection(jc float64) float64 {
	omega := 125.04 - 1934.136*jc
	return MeanObliquity(jc) + 0.00256*math.Cos(Deg2Rad(omega))
}

// Declination returns the sun's declination in degrees.
func Declination(jc float64) float64 {
	e := Deg2Rad(ObliquityCorrection(jc))
	lambda := Deg2Rad(ApparentLongitude(jc))
	return Rad2Deg(math.Asin(math.Sin(e) * math.Sin(lambda)))
}

// EquationOfTime returns the difference between apparent and mean solar
// time in minutes. Positive means the sundial runs ahead of the clock.
func EquationOfTime(jc float64) float64 {
	eps := Deg2Rad(ObliquityCorrection(jc))
	l0 := Deg2Rad(GeomMeanLongitude(jc))
	m := Deg2Rad(GeomMeanAnomaly(jc))
	e := EccentricityEarthOrbit(jc)

	y := math.Tan(eps / 2)
	y *= y

	eq := y*math.Sin(2*l0) -
		2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)

	// The radian result maps to minutes at 4 min per degree.
	return 4 * Rad2Deg(eq)
}

func normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
