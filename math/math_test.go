// math/math_test.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"testing"
)

func TestNMDistance2LL(t *testing.T) {
	jfk := MakePoint2LL(40.6413, -73.7781)
	lax := MakePoint2LL(33.9416, -118.4085)

	// JFK-LAX is about 2145nm great circle.
	d := NMDistance2LL(jfk, lax)
	if d < 2120 || d > 2170 {
		t.Errorf("JFK-LAX distance %f, expected ~2145nm", d)
	}

	if d := NMDistance2LL(jfk, jfk); d != 0 {
		t.Errorf("distance from a point to itself %f, expected 0", d)
	}
}

func TestPathLengthNM(t *testing.T) {
	a := MakePoint2LL(0, 0)
	b := MakePoint2LL(1, 0)
	c := MakePoint2LL(2, 0)

	ab := NMDistance2LL(a, b)
	abc := PathLengthNM([]Point2LL{a, b, c})
	if gomath.Abs(float64(abc-2*ab)) > 1 {
		t.Errorf("path length %f, expected %f", abc, 2*ab)
	}

	if PathLengthNM(nil) != 0 {
		t.Errorf("empty path should have zero length")
	}
	if PathLengthNM([]Point2LL{a}) != 0 {
		t.Errorf("single-point path should have zero length")
	}
}

func TestUnwrapLongitudes(t *testing.T) {
	// SFO to Tokyo-ish: crosses the antimeridian going west.
	pts := []Point2LL{
		MakePoint2LL(37.6213, -122.3790),
		MakePoint2LL(45, -170),
		MakePoint2LL(42, 170), // wrapped
		MakePoint2LL(35.7653, 140.3856),
	}
	UnwrapLongitudes(pts)

	for i := 1; i < len(pts); i++ {
		delta := pts[i][0] - pts[i-1][0]
		if delta > 180 || delta < -180 {
			t.Errorf("point %d: longitude step %f after unwrapping", i, delta)
		}
	}

	// The wrapped point should now be continuous with its neighbor.
	if pts[2][0] != -190 {
		t.Errorf("expected unwrapped longitude -190, got %f", pts[2][0])
	}
}

func TestNormalizeLongitude(t *testing.T) {
	for _, tc := range []struct{ in, want float32 }{
		{-190, 170},
		{190, -170},
		{0, 0},
		{-180, -180},
		{180, -180},
	} {
		if got := NormalizeLongitude(tc.in); got != tc.want {
			t.Errorf("NormalizeLongitude(%f) = %f, expected %f", tc.in, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(120, 0, 100) != 100 {
		t.Errorf("clamp high failed")
	}
	if Clamp(-3, 0, 100) != 0 {
		t.Errorf("clamp low failed")
	}
	if Clamp(42, 0, 100) != 42 {
		t.Errorf("clamp passthrough failed")
	}
}
