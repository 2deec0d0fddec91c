// math/math.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

const NauticalMilesToFeet = 6076.12
const FeetToNauticalMiles = 1 / NauticalMilesToFeet
const NauticalMilesToStatuteMiles = 1.15078
const NauticalMilesToKilometers = 1.852

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

// MakePoint2LL constructs a Point2LL from a latitude and longitude given
// in that order, since essentially all external data sources state
// latitude first.
func MakePoint2LL(lat, long float32) Point2LL {
	return Point2LL{long, lat}
}

// DDString returns the position in decimal degrees, e.g.:
// (40.641300, -73.778100)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

func sqr(x float64) float64 { return x * x }

// NMDistance2LL returns the distance in nautical miles between two
// provided lat-long coordinates.
func NMDistance2LL(a Point2LL, b Point2LL) float32 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	const R = 6371000 // metres
	rad := func(d float64) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(float64(a[1])), rad(float64(a[0]))
	lat2, lon2 := rad(float64(b[1])), rad(float64(b[0]))
	dlat, dlon := lat2-lat1, lon2-lon1

	x := sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	dm := R * c // in metres

	return float32(dm * 0.000539957)
}

// PathLengthNM returns the total length in nautical miles of the
// polyline through the given points.
func PathLengthNM(pts []Point2LL) float32 {
	var d float32
	for i := 1; i < len(pts); i++ {
		d += NMDistance2LL(pts[i-1], pts[i])
	}
	return d
}

// UnwrapLongitudes adjusts the longitudes of the given points in place so
// that successive points never differ by more than 180 degrees; routes
// that cross the antimeridian then interpolate through it rather than
// snapping across the map. The first point is left as-is and the returned
// slice aliases the provided one.
func UnwrapLongitudes(pts []Point2LL) []Point2LL {
	for i := 1; i < len(pts); i++ {
		for pts[i][0]-pts[i-1][0] > 180 {
			pts[i][0] -= 360
		}
		for pts[i][0]-pts[i-1][0] < -180 {
			pts[i][0] += 360
		}
	}
	return pts
}

// NormalizeLongitude wraps a longitude value (possibly unwrapped by
// UnwrapLongitudes) back into [-180, 180).
func NormalizeLongitude(long float32) float32 {
	for long >= 180 {
		long -= 360
	}
	for long < -180 {
		long += 360
	}
	return long
}

func Clamp[T ~int | ~float32 | ~float64](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}
