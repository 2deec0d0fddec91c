// aviation/aggregate.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/skytrail/skytrail/util"
)

// FiledRoute is one filed-IFR-route record from the flight data
// provider's route statistics endpoint: a route string, how many flights
// filed it, and which aircraft types flew it.
type FiledRoute struct {
	Route            string   `json:"route"`
	Count            int      `json:"count"`
	AircraftTypes    []string `json:"aircraft_types"`
	FiledAltitudeMin *int     `json:"filed_altitude_min"`
	FiledAltitudeMax *int     `json:"filed_altitude_max"`
}

// AwardSummary pairs an award availability row with its best bookable
// cabin (CabinNone when nothing qualifies).
type AwardSummary struct {
	Availability AwardAvailability
	BestCabin    Cabin
}

// AggregateView is the merged, view-ready result of one route lookup's
// three API calls.
type AggregateView struct {
	CommonAircraft []string
	TotalFlights   int
	Flights        []Flight
	Awards         []AwardSummary
}

const maxCommonAircraft = 8

// Aggregate merges route statistics, scheduled flights, and award
// availability rows into a single view. Aircraft types are deduplicated
// across all route records and ordered by descending frequency with ties
// broken alphabetically, keeping the first eight. Missing inputs simply
// yield empty collections.
func Aggregate(routes []FiledRoute, flights []Flight, awards []AwardAvailability) AggregateView {
	counts := make(map[string]int)
	for _, r := range routes {
		for _, ac := range r.AircraftTypes {
			if ac = strings.TrimSpace(ac); ac != "" {
				counts[ac]++
			}
		}
	}
	aircraft := util.SortedMapKeys(counts)
	sort.SliceStable(aircraft, func(i, j int) bool {
		return counts[aircraft[i]] > counts[aircraft[j]]
	})
	if len(aircraft) > maxCommonAircraft {
		aircraft = aircraft[:maxCommonAircraft]
	}

	total := util.ReduceSlice(routes, func(r FiledRoute, sum int) int { return sum + r.Count }, 0)

	summaries := util.MapSlice(awards, func(a AwardAvailability) AwardSummary {
		best, _ := a.BestCabin()
		return AwardSummary{Availability: a, BestCabin: best}
	})

	return AggregateView{
		CommonAircraft: aircraft,
		TotalFlights:   total,
		Flights:        flights,
		Awards:         summaries,
	}
}

// TotalFlightCount renders the flight count the way the route card
// displays it: an empty string for zero, the decimal form otherwise.
func (v AggregateView) TotalFlightCount() string {
	if v.TotalFlights == 0 {
		return ""
	}
	return strconv.Itoa(v.TotalFlights)
}
