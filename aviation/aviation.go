// aviation/aviation.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strings"

	"github.com/skytrail/skytrail/math"
)

// Airport describes one endpoint of a flight, as reported by the flight
// data provider. Identifier codes may be ICAO, IATA, or the provider's
// own generic code; any of them may be empty.
type Airport struct {
	Code     string `json:"code"`
	CodeICAO string `json:"code_icao"`
	CodeIATA string `json:"code_iata"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
}

// Ident returns the best available identifier code for the airport,
// preferring IATA since that is what the static coordinate table and the
// award search API use.
func (a Airport) Ident() string {
	for _, code := range []string{a.CodeIATA, a.CodeICAO, a.Code} {
		if code != "" {
			return code
		}
	}
	return ""
}

// Flight is a single flight instance from the flight data provider. The
// nine timestamps are RFC 3339 strings straight from the API; an empty
// string indicates the field was absent. Out/off/on correspond to gate
// departure, takeoff, and landing.
type Flight struct {
	Ident        string `json:"ident"`
	IdentICAO    string `json:"ident_icao"`
	IdentIATA    string `json:"ident_iata"`
	Operator     string `json:"operator"`
	OperatorICAO string `json:"operator_icao"`
	OperatorIATA string `json:"operator_iata"`
	FlightNumber string `json:"flight_number"`

	Origin      Airport `json:"origin"`
	Destination Airport `json:"destination"`

	ScheduledOut string `json:"scheduled_out"`
	EstimatedOut string `json:"estimated_out"`
	ActualOut    string `json:"actual_out"`
	ScheduledOff string `json:"scheduled_off"`
	EstimatedOff string `json:"estimated_off"`
	ActualOff    string `json:"actual_off"`
	ScheduledOn  string `json:"scheduled_on"`
	EstimatedOn  string `json:"estimated_on"`
	ActualOn     string `json:"actual_on"`

	Status    string `json:"status"`
	Cancelled bool   `json:"cancelled"`
	Diverted  bool   `json:"diverted"`
	Blocked   bool   `json:"blocked"`

	ProgressPercent *int `json:"progress_percent"`
	RouteDistance   *int `json:"route_distance"`
	FiledAltitude   *int `json:"filed_altitude"`
	FiledAirspeed   *int `json:"filed_airspeed"`
	FiledETE        *int `json:"filed_ete"`

	AircraftType string `json:"aircraft_type"`
	Route        string `json:"route"`
}

// RouteFix is an ordered waypoint from the provider's route endpoint;
// when the provider has these they are preferred over decoding the filed
// route string ourselves.
type RouteFix struct {
	Name              string  `json:"name"`
	Latitude          float32 `json:"latitude"`
	Longitude         float32 `json:"longitude"`
	Type              string  `json:"type"`
	OutboundCourse    *int    `json:"outbound_course"`
	DistanceThisLegNM *int    `json:"distance_this_leg"`
}

// Waypoint is a named navigation fix with its location and the metadata
// carried in the waypoint database file.
type Waypoint struct {
	Ident    string
	Location math.Point2LL
	Type     string
	Usage    string
	Region   string
}

// FlightPathPoints returns the lat-long polyline for a flight: the
// provider's route fixes when at least two have locations, otherwise the
// decoded filed route string. Longitudes are unwrapped so that
// Pacific-crossing routes stay continuous across the antimeridian.
func FlightPathPoints(f Flight, fixes []RouteFix, db *WaypointDB) []math.Point2LL {
	var pts []math.Point2LL
	for _, fix := range fixes {
		if fix.Latitude != 0 || fix.Longitude != 0 {
			pts = append(pts, math.MakePoint2LL(fix.Latitude, fix.Longitude))
		}
	}
	if len(pts) >= 2 {
		return math.UnwrapLongitudes(pts)
	}

	pts = ParseRoute(f.Route, f.Origin.Ident(), f.Destination.Ident(), db)
	return math.UnwrapLongitudes(pts)
}

// FiledRouteDistanceNM returns the length of the flight's path in
// nautical miles, preferring the provider's own distance when it
// reported one.
func FiledRouteDistanceNM(f Flight, fixes []RouteFix, db *WaypointDB) float32 {
	if f.RouteDistance != nil && *f.RouteDistance > 0 {
		return float32(*f.RouteDistance)
	}
	return math.PathLengthNM(FlightPathPoints(f, fixes, db))
}

func normalizeIdent(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
