// aviation/route.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skytrail/skytrail/math"
)

var (
	// Airway designators: letters followed by digits, e.g. "UL975", "J80".
	airwayRe = regexp.MustCompile(`^[A-Z]+[0-9]+$`)
	// Oceanic coordinate tokens, e.g. "5000N/05000W".
	oceanicRe = regexp.MustCompile(`^([0-9]+)([NS])/([0-9]+)([EW])$`)
)

// ParseRoute decodes a filed flight plan route string into an ordered
// sequence of locations, bracketed by the resolved origin and destination
// airports. Airway designators and North Atlantic track references name
// segments rather than points and are dropped; oceanic coordinate tokens
// are decoded directly; named tokens are looked up first in the waypoint
// database and then in the static airport table. Anything unrecognized is
// skipped so that garbled route text degrades the path rather than
// failing it. Consecutive duplicate points are not removed.
func ParseRoute(routeText, origin, destination string, db *WaypointDB) []math.Point2LL {
	points := []math.Point2LL{ResolveAirport(origin)}

	for _, token := range strings.Fields(routeText) {
		token = strings.ToUpper(token)

		if airwayRe.MatchString(token) {
			continue
		}
		if strings.HasPrefix(token, "NATW") {
			continue
		}
		if p, ok := parseOceanicToken(token); ok {
			points = append(points, p)
			continue
		}
		if wp, ok := db.Lookup(token); ok {
			points = append(points, wp.Location)
			continue
		}
		if p, ok := LookupAirport(token); ok {
			points = append(points, p)
			continue
		}
		// Unrecognized token; skip it.
	}

	return append(points, ResolveAirport(destination))
}

// parseOceanicToken decodes condensed oceanic coordinates of the form
// "<lat><N|S>/<long><E|W>". Four-digit latitudes and five-digit
// longitudes carry implied fractional degrees and are divided by 100;
// shorter values are whole degrees.
func parseOceanicToken(token string) (math.Point2LL, bool) {
	m := oceanicRe.FindStringSubmatch(token)
	if m == nil {
		return math.Point2LL{}, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return math.Point2LL{}, false
	}
	if len(m[1]) == 4 {
		lat /= 100
	}
	if m[2] == "S" {
		lat = -lat
	}

	long, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return math.Point2LL{}, false
	}
	if len(m[3]) == 5 {
		long /= 100
	}
	if m[4] == "W" {
		long = -long
	}

	return math.MakePoint2LL(float32(lat), float32(long)), true
}
