// model.go: closed-form astronomical fallback for dates outside the table window.
//
// The Sun uses the low-precision solar theory from Meeus, Astronomical
// Algorithms ch. 25 (about 0.01 degree accuracy). The Moon uses a truncated
// ELP lunar series (about 0.05 degree). Planets use Keplerian mean elements
// valid 1800-2050 propagated to the requested instant, converted to true
// geocentric vectors by subtracting the heliocentric Earth position.
// Heliocentric longitudes are never returned directly: they are not
// astrologically valid.
package ephemeris

import (
	"math"
	"time"

	"github.com/soluna/temple-go/internal/errors"
)

const (
	j2000            = 2451545.0
	daysPerCentury   = 36525.0
	secondsPerDay    = 86400.0
	unixEpochJulian  = 2440587.5
	degToRad         = math.Pi / 180.0
	keplerTolerance  = 1e-8
	keplerMaxIterate = 40
)

// JulianDay converts a UTC instant to a Julian day number.
func JulianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/1000.0/secondsPerDay + unixEpochJulian
}

// julianCenturies returns Julian centuries since J2000.0.
func julianCenturies(t time.Time) float64 {
	return (JulianDay(t) - j2000) / daysPerCentury
}

// NormalizeDegrees wraps an angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// ComputeLongitude returns the geocentric ecliptic longitude of a body at the
// given instant using the analytic model. Earth is rejected here: it is
// derived from the Sun by the provider and has no model of its own.
func ComputeLongitude(body Body, t time.Time) (float64, error) {
	T := julianCenturies(t)
	switch body {
	case Sun:
		return sunLongitude(T), nil
	case Moon:
		return moonLongitude(T), nil
	case TrueNode:
		return nodeLongitude(T), nil
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, Chiron:
		el, ok := planetElements[body]
		if !ok {
			return 0, errors.Newf("no orbital elements for body %s", body).
				Category(errors.CategoryEphemerisModel).
				Component("ephemeris").
				Build()
		}
		return geocentricLongitude(el, T), nil
	default:
		return 0, errors.Newf("unknown body %s", body).
			Category(errors.CategoryEphemerisModel).
			Component("ephemeris").
			Build()
	}
}

// sunLongitude returns the apparent geocentric ecliptic longitude of the Sun.
func sunLongitude(T float64) float64 {
	l0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	m := 357.52911 + 35999.05029*T - 0.0001537*T*T
	mRad := m * degToRad

	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(mRad) +
		(0.019993-0.000101*T)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	trueLongitude := l0 + c

	// Apparent longitude: nutation and aberration correction.
	omega := (125.04 - 1934.136*T) * degToRad
	apparent := trueLongitude - 0.00569 - 0.00478*math.Sin(omega)

	return NormalizeDegrees(apparent)
}

// moonLongitude returns the geocentric ecliptic longitude of the Moon from the
// largest periodic terms of the lunar theory.
func moonLongitude(T float64) float64 {
	// Fundamental arguments, degrees.
	lp := 218.3164477 + 481267.88123421*T // mean longitude
	d := 297.8501921 + 445267.1114034*T   // mean elongation
	m := 357.5291092 + 35999.0502909*T    // Sun mean anomaly
	mp := 134.9633964 + 477198.8675055*T  // Moon mean anomaly
	f := 93.2720950 + 483202.0175233*T    // argument of latitude

	dR, mR, mpR, fR := d*degToRad, m*degToRad, mp*degToRad, f*degToRad

	lon := lp +
		6.288774*math.Sin(mpR) +
		1.274027*math.Sin(2*dR-mpR) +
		0.658314*math.Sin(2*dR) +
		0.213618*math.Sin(2*mpR) -
		0.185116*math.Sin(mR) -
		0.114332*math.Sin(2*fR) +
		0.058793*math.Sin(2*dR-2*mpR) +
		0.057066*math.Sin(2*dR-mR-mpR) +
		0.053322*math.Sin(2*dR+mpR) +
		0.045758*math.Sin(2*dR-mR) -
		0.040923*math.Sin(mR-mpR) -
		0.034720*math.Sin(dR) -
		0.030383*math.Sin(mR+mpR) +
		0.015327*math.Sin(2*dR-2*fR) -
		0.012528*math.Sin(mpR+2*fR) +
		0.010980*math.Sin(mpR-2*fR)

	return NormalizeDegrees(lon)
}

// nodeLongitude returns the longitude of the Moon's ascending node. The mean
// node is used as an approximation of the true node; the true node oscillates
// about 1.5 degrees around it, well inside a single gate arc.
func nodeLongitude(T float64) float64 {
	return NormalizeDegrees(125.04452 - 1934.136261*T + 0.0020708*T*T)
}

// keplerElements holds mean orbital elements at J2000 and their per-century rates.
// Angles in degrees, semi-major axis in AU.
type keplerElements struct {
	a, aDot       float64 // semi-major axis
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination
	l, lDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

// Mean elements for 1800 AD - 2050 AD. Chiron elements are osculating values
// near J2000; perturbations by Saturn and Uranus degrade them over long spans,
// which is acceptable at gate-arc (5.625 degree) resolution.
var planetElements = map[Body]keplerElements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	Venus:   {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	Mars:    {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, -4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	Saturn:  {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	Uranus:  {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939, 313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372, -55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
	Pluto:   {39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818, 238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482},
	Chiron:  {13.69810, 0.0, 0.37945, 0.0, 6.92900, 0.0, 216.30000, 713.29900, 188.90000, 0.0, 209.30000, 0.0},
}

// earthElements are the EMB mean elements, used only as the origin for
// geocentric conversion.
var earthElements = keplerElements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0.0, 0.0}

// solveKepler solves Kepler's equation M = E - e*sin(E) by Newton iteration.
// Inputs and output in radians.
func solveKepler(m, e float64) float64 {
	eAnom := m + e*math.Sin(m)
	for i := 0; i < keplerMaxIterate; i++ {
		delta := (m - (eAnom - e*math.Sin(eAnom))) / (1 - e*math.Cos(eAnom))
		eAnom += delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return eAnom
}

// heliocentric returns the heliocentric ecliptic rectangular coordinates (AU)
// of a body at T Julian centuries from J2000.
func heliocentric(el keplerElements, T float64) (x, y, z float64) {
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	inc := (el.i + el.iDot*T) * degToRad
	l := el.l + el.lDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	// Mean anomaly and argument of perihelion.
	m := NormalizeDegrees(l-peri) * degToRad
	w := (peri - node) * degToRad
	nodeR := node * degToRad

	eAnom := solveKepler(m, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(eAnom) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(eAnom)

	cosW, sinW := math.Cos(w), math.Sin(w)
	cosN, sinN := math.Cos(nodeR), math.Sin(nodeR)
	cosI, sinI := math.Cos(inc), math.Sin(inc)

	x = (cosW*cosN-sinW*sinN*cosI)*xp + (-sinW*cosN-cosW*sinN*cosI)*yp
	y = (cosW*sinN+sinW*cosN*cosI)*xp + (-sinW*sinN+cosW*cosN*cosI)*yp
	z = sinW*sinI*xp + cosW*sinI*yp
	return x, y, z
}

// geocentricLongitude converts heliocentric positions of a planet and of the
// Earth into the planet's geocentric ecliptic longitude.
func geocentricLongitude(el keplerElements, T float64) float64 {
	px, py, _ := heliocentric(el, T)
	ex, ey, _ := heliocentric(earthElements, T)
	return NormalizeDegrees(math.Atan2(py-ey, px-ex) / degToRad)
}

// isRetrograde reports whether a body's geocentric longitude is decreasing at
// the given instant, sampled over a 12 hour window.
func isRetrograde(body Body, t time.Time) bool {
	switch body {
	case Sun, Moon, Earth:
		return false
	}
	before, err1 := ComputeLongitude(body, t.Add(-6*time.Hour))
	after, err2 := ComputeLongitude(body, t.Add(6*time.Hour))
	if err1 != nil || err2 != nil {
		return false
	}
	return SignedDelta(after, before) < 0
}

// SignedDelta returns the signed angular difference a-b wrapped to (-180,180].
func SignedDelta(a, b float64) float64 {
	d := math.Mod(a-b, 360.0)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
