// client/awardapi.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skytrail/skytrail/aviation"
	"github.com/skytrail/skytrail/log"
)

const DefaultAwardAPITimeout = 15 * time.Second

// AwardAPI is a thin client for the award seat availability provider.
type AwardAPI struct {
	BaseURL string
	APIKey  string

	client *http.Client
	lg     *log.Logger
}

func NewAwardAPI(baseURL, apiKey string, lg *log.Logger) *AwardAPI {
	return &AwardAPI{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: DefaultAwardAPITimeout},
		lg:      lg,
	}
}

// AwardQuery is the search request: a route, a date range, and optional
// cabin and result-ordering filters.
type AwardQuery struct {
	Origin      string
	Destination string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Cabin       aviation.Cabin
	OrderBy     string
	Take        int
}

// awardRow is the provider's wire format for one availability row: per
// cabin, a single-letter prefix selects the tier (Y/W/J/F).
type awardRow struct {
	ID    string `json:"ID"`
	Route struct {
		OriginAirport      string `json:"OriginAirport"`
		DestinationAirport string `json:"DestinationAirport"`
	} `json:"Route"`
	Date   string `json:"Date"`
	Source string `json:"Source"`

	YAvailable bool `json:"YAvailable"`
	WAvailable bool `json:"WAvailable"`
	JAvailable bool `json:"JAvailable"`
	FAvailable bool `json:"FAvailable"`

	YMileageCost string `json:"YMileageCost"`
	WMileageCost string `json:"WMileageCost"`
	JMileageCost string `json:"JMileageCost"`
	FMileageCost string `json:"FMileageCost"`

	YRemainingSeats int `json:"YRemainingSeats"`
	WRemainingSeats int `json:"WRemainingSeats"`
	JRemainingSeats int `json:"JRemainingSeats"`
	FRemainingSeats int `json:"FRemainingSeats"`
}

func (r awardRow) toAvailability() aviation.AwardAvailability {
	return aviation.AwardAvailability{
		ID:          r.ID,
		Origin:      r.Route.OriginAirport,
		Destination: r.Route.DestinationAirport,
		Date:        r.Date,
		Program:     r.Source,
		Economy: aviation.CabinAward{
			Available: r.YAvailable, MileageCost: r.YMileageCost, RemainingSeats: r.YRemainingSeats},
		PremiumEconomy: aviation.CabinAward{
			Available: r.WAvailable, MileageCost: r.WMileageCost, RemainingSeats: r.WRemainingSeats},
		Business: aviation.CabinAward{
			Available: r.JAvailable, MileageCost: r.JMileageCost, RemainingSeats: r.JRemainingSeats},
		First: aviation.CabinAward{
			Available: r.FAvailable, MileageCost: r.FMileageCost, RemainingSeats: r.FRemainingSeats},
	}
}

// Search runs an award availability search and returns the matching rows.
func (c *AwardAPI) Search(ctx context.Context, q AwardQuery) ([]aviation.AwardAvailability, error) {
	query := url.Values{}
	query.Set("origin_airport", q.Origin)
	query.Set("destination_airport", q.Destination)
	if q.StartDate != "" {
		query.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		query.Set("end_date", q.EndDate)
	}
	if q.Cabin != aviation.CabinNone {
		query.Set("cabin", q.Cabin.Code())
	}
	if q.OrderBy != "" {
		query.Set("order_by", q.OrderBy)
	}
	if q.Take > 0 {
		query.Set("take", strconv.Itoa(q.Take))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Partner-Authorization", c.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	c.lg.Debugf("GET /search %s-%s: %d in %s", q.Origin, q.Destination, resp.StatusCode, time.Since(start))

	if err := awardAPIStatusError(resp); err != nil {
		return nil, err
	}

	var result struct {
		Data []awardRow `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	avail := make([]aviation.AwardAvailability, 0, len(result.Data))
	for _, row := range result.Data {
		avail = append(avail, row.toAvailability())
	}
	return avail, nil
}
