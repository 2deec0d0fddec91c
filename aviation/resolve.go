// aviation/resolve.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/skytrail/skytrail/math"
)

// airportLocations is a static table of major airports so that routes can
// be drawn without any waypoint database loaded. Keys are IATA codes.
var airportLocations = map[string]math.Point2LL{
	"AKL": math.MakePoint2LL(-37.0082, 174.7850),
	"AMS": math.MakePoint2LL(52.3105, 4.7683),
	"ATL": math.MakePoint2LL(33.6407, -84.4277),
	"BOS": math.MakePoint2LL(42.3656, -71.0096),
	"CDG": math.MakePoint2LL(49.0097, 2.5479),
	"DEN": math.MakePoint2LL(39.8561, -104.6737),
	"DFW": math.MakePoint2LL(32.8998, -97.0403),
	"DOH": math.MakePoint2LL(25.2731, 51.6080),
	"DXB": math.MakePoint2LL(25.2532, 55.3657),
	"EWR": math.MakePoint2LL(40.6895, -74.1745),
	"FCO": math.MakePoint2LL(41.8003, 12.2389),
	"FRA": math.MakePoint2LL(50.0379, 8.5622),
	"GRU": math.MakePoint2LL(-23.4356, -46.4731),
	"HKG": math.MakePoint2LL(22.3080, 113.9185),
	"HND": math.MakePoint2LL(35.5494, 139.7798),
	"HNL": math.MakePoint2LL(21.3245, -157.9251),
	"IAD": math.MakePoint2LL(38.9531, -77.4565),
	"ICN": math.MakePoint2LL(37.4602, 126.4407),
	"JFK": math.MakePoint2LL(40.6413, -73.7781),
	"LAX": math.MakePoint2LL(33.9416, -118.4085),
	"LGW": math.MakePoint2LL(51.1537, -0.1821),
	"LHR": math.MakePoint2LL(51.4700, -0.4543),
	"MAD": math.MakePoint2LL(40.4983, -3.5676),
	"MEX": math.MakePoint2LL(19.4363, -99.0721),
	"MIA": math.MakePoint2LL(25.7959, -80.2870),
	"NRT": math.MakePoint2LL(35.7653, 140.3856),
	"ORD": math.MakePoint2LL(41.9742, -87.9073),
	"PEK": math.MakePoint2LL(40.0799, 116.6031),
	"SEA": math.MakePoint2LL(47.4502, -122.3088),
	"SFO": math.MakePoint2LL(37.6213, -122.3790),
	"SIN": math.MakePoint2LL(1.3644, 103.9915),
	"SYD": math.MakePoint2LL(-33.9399, 151.1753),
	"YVR": math.MakePoint2LL(49.1967, -123.1815),
	"YYZ": math.MakePoint2LL(43.6777, -79.6248),
	"ZRH": math.MakePoint2LL(47.4582, 8.5555),
}

// LookupAirport returns the location of the given airport if it is in the
// static table. Matching is case-insensitive.
func LookupAirport(code string) (math.Point2LL, bool) {
	p, ok := airportLocations[normalizeIdent(code)]
	return p, ok
}

// ResolveAirport always returns a location for the given code: the static
// table entry when there is one and otherwise a deterministic placeholder
// derived from the code itself, so that an unknown airport lands on the
// same spot every time it is drawn. The placeholder has no geographic
// meaning.
func ResolveAirport(code string) math.Point2LL {
	if p, ok := LookupAirport(code); ok {
		return p
	}

	hash := 0
	for _, b := range []byte(normalizeIdent(code)) {
		hash += int(b)
	}
	lat := -60 + float32(hash%1200)/10   // [-60, 60)
	long := -180 + float32(hash%3600)/10 // [-180, 180)
	return math.MakePoint2LL(lat, long)
}
