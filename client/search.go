// client/search.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package client

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skytrail/skytrail/aviation"
	"github.com/skytrail/skytrail/log"
)

// RouteSearch fans out the three independent lookups for one route (route
// statistics, scheduled flights, award availability) and merges the
// results. The calls run concurrently; each fills its own slot and a
// failure in one never blocks or discards the others.
type RouteSearch struct {
	Flights *FlightAPI
	Awards  *AwardAPI

	// Timeout bounds the whole fan-out; navigating away cancels the
	// caller's context and with it every in-flight request.
	Timeout time.Duration

	lg *log.Logger
}

func NewRouteSearch(flights *FlightAPI, awards *AwardAPI, lg *log.Logger) *RouteSearch {
	return &RouteSearch{
		Flights: flights,
		Awards:  awards,
		Timeout: 30 * time.Second,
		lg:      lg,
	}
}

// RouteSearchResult carries each call's results and error independently
// so that partial failures still render everything that did arrive.
type RouteSearchResult struct {
	Routes  []aviation.FiledRoute
	Flights []aviation.Flight
	Awards  []aviation.AwardAvailability

	RoutesErr  error
	FlightsErr error
	AwardsErr  error
}

// Failed reports whether every call failed; a view with nothing at all to
// show is the only case worth an error screen.
func (r RouteSearchResult) Failed() bool {
	return r.RoutesErr != nil && r.FlightsErr != nil && r.AwardsErr != nil
}

// Search runs the three lookups for the given origin/destination pair and
// date range.
func (s *RouteSearch) Search(ctx context.Context, origin, destination string, startDate, endDate string) RouteSearchResult {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	var result RouteSearchResult

	// Deliberately not errgroup.WithContext: one call failing must not
	// cancel the other two.
	var g errgroup.Group
	g.Go(func() error {
		result.Routes, result.RoutesErr = s.Flights.RoutesBetween(ctx, origin, destination)
		return nil
	})
	g.Go(func() error {
		result.Flights, result.FlightsErr = s.Flights.ScheduledFlights(ctx, origin, destination)
		return nil
	})
	g.Go(func() error {
		result.Awards, result.AwardsErr = s.Awards.Search(ctx, AwardQuery{
			Origin:      origin,
			Destination: destination,
			StartDate:   startDate,
			EndDate:     endDate,
			OrderBy:     "lowest_mileage",
		})
		return nil
	})
	g.Wait()

	for _, err := range []error{result.RoutesErr, result.FlightsErr, result.AwardsErr} {
		if err != nil {
			s.lg.Warnf("route search %s-%s: %v", origin, destination, err)
		}
	}
	return result
}

// Aggregate merges the search result into the view-ready form.
func (r RouteSearchResult) Aggregate() aviation.AggregateView {
	return aviation.Aggregate(r.Routes, r.Flights, r.Awards)
}
