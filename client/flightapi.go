// client/flightapi.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/skytrail/skytrail/aviation"
	"github.com/skytrail/skytrail/log"
)

const DefaultFlightAPITimeout = 15 * time.Second

// FlightAPI is a thin client for the flight data provider's REST API.
// Requests are authenticated with a static API key header and carry the
// caller's context so that an abandoned search cancels its requests.
type FlightAPI struct {
	BaseURL string
	APIKey  string

	client *http.Client
	lg     *log.Logger
}

func NewFlightAPI(baseURL, apiKey string, lg *log.Logger) *FlightAPI {
	return &FlightAPI{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: DefaultFlightAPITimeout},
		lg:      lg,
	}
}

func (c *FlightAPI) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-apikey", c.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.lg.Debugf("GET %s: %d in %s", path, resp.StatusCode, time.Since(start))

	if err := flightAPIStatusError(resp); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FlightInfo returns the provider's flight instances for the given flight
// identifier (most recent first, per the provider).
func (c *FlightAPI) FlightInfo(ctx context.Context, ident string) ([]aviation.Flight, error) {
	var result struct {
		Flights []aviation.Flight `json:"flights"`
	}
	if err := c.get(ctx, "/flights/"+url.PathEscape(ident), nil, &result); err != nil {
		return nil, err
	}
	return result.Flights, nil
}

// RouteFixes returns the provider's decoded waypoints for a flight's
// filed route; preferred over parsing the route text when non-empty.
func (c *FlightAPI) RouteFixes(ctx context.Context, ident string) ([]aviation.RouteFix, error) {
	var result struct {
		RouteDistance string              `json:"route_distance"`
		Fixes         []aviation.RouteFix `json:"fixes"`
	}
	if err := c.get(ctx, "/flights/"+url.PathEscape(ident)+"/route", nil, &result); err != nil {
		return nil, err
	}
	return result.Fixes, nil
}

// RoutesBetween returns the filed-IFR-route statistics for flights
// between two airports.
func (c *FlightAPI) RoutesBetween(ctx context.Context, origin, destination string) ([]aviation.FiledRoute, error) {
	var result struct {
		Routes []aviation.FiledRoute `json:"routes"`
	}
	path := "/airports/" + url.PathEscape(origin) + "/routes/" + url.PathEscape(destination)
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Routes, nil
}

// ScheduledFlights returns the scheduled flights from origin to
// destination.
func (c *FlightAPI) ScheduledFlights(ctx context.Context, origin, destination string) ([]aviation.Flight, error) {
	var result struct {
		Flights []aviation.Flight `json:"flights"`
	}
	path := "/airports/" + url.PathEscape(origin) + "/flights/to/" + url.PathEscape(destination)
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Flights, nil
}
