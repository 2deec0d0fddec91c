// cmd/skytrail/main.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// skytrail looks up live flights and award seat availability from the
// command line: "skytrail flight UAL1" prints a flight's times, progress,
// and decoded route; "skytrail route JFK LHR" prints route statistics,
// scheduled flights, and award availability for an airport pair.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	av "github.com/skytrail/skytrail/aviation"
	"github.com/skytrail/skytrail/client"
	"github.com/skytrail/skytrail/log"
)

var (
	logLevel      = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir        = flag.String("logdir", "", "log file directory")
	envFile       = flag.String("env", "", "env file with API configuration")
	waypointsFile = flag.String("waypoints", "", "ARINC-424 waypoint database file (optionally .zst)")
	airlineDBFile = flag.String("airlinedb", "airlines.db", "airline reference database")
	startDate     = flag.String("start", "", "award search start date (YYYY-MM-DD)")
	endDate       = flag.String("end", "", "award search end date (YYYY-MM-DD)")
)

const usage = `usage:
  skytrail [flags] flight <ident>
  skytrail [flags] route <origin> <destination>`

type config struct {
	flightAPIURL string
	flightAPIKey string
	awardAPIURL  string
	awardAPIKey  string
}

func loadConfig(lg *log.Logger) config {
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			lg.Warnf("%s: %v", *envFile, err)
		}
	} else {
		// Best effort; missing .env just means the environment is already set.
		_ = godotenv.Load()
	}

	getenv := func(name, fallback string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return fallback
	}

	return config{
		flightAPIURL: getenv("SKYTRAIL_FLIGHT_API_URL", "https://aeroapi.flightaware.com/aeroapi"),
		flightAPIKey: os.Getenv("SKYTRAIL_FLIGHT_API_KEY"),
		awardAPIURL:  getenv("SKYTRAIL_AWARD_API_URL", "https://seats.aero/partnerapi"),
		awardAPIKey:  os.Getenv("SKYTRAIL_AWARD_API_KEY"),
	}
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	lg := log.New(*logLevel, *logDir)
	cfg := loadConfig(lg)

	db := av.NewWaypointDB()
	if *waypointsFile != "" {
		if err := db.LoadWaypointFile(*waypointsFile, lg); err != nil {
			lg.Errorf("%s: %v", *waypointsFile, err)
			fmt.Fprintf(os.Stderr, "%s: %v\n", *waypointsFile, err)
		}
	}

	flightAPI := client.NewFlightAPI(cfg.flightAPIURL, cfg.flightAPIKey, lg)
	awardAPI := client.NewAwardAPI(cfg.awardAPIURL, cfg.awardAPIKey, lg)

	var dir *client.AirlineDirectory
	if store, err := client.OpenAirlineDB(*airlineDBFile); err == nil {
		defer store.Close()
		dir = client.NewAirlineDirectory(store)
	} else {
		lg.Warnf("%s: %v", *airlineDBFile, err)
	}

	ctx := context.Background()

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "flight":
		if flag.NArg() != 2 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
		err = showFlight(ctx, flightAPI, dir, db, flag.Arg(1))

	case "route":
		if flag.NArg() != 3 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
		search := client.NewRouteSearch(flightAPI, awardAPI, lg)
		err = showRoute(ctx, search, flag.Arg(1), flag.Arg(2))

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command\n%s\n", cmd, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showFlight(ctx context.Context, api *client.FlightAPI, dir *client.AirlineDirectory,
	db *av.WaypointDB, ident string) error {
	flights, err := api.FlightInfo(ctx, ident)
	if err != nil {
		return fmt.Errorf("%s: %w", ident, err)
	}
	if len(flights) == 0 {
		return fmt.Errorf("%s: %w", ident, client.ErrNotFound)
	}
	f := flights[0]

	operator := f.Operator
	if dir != nil {
		if p, err := dir.OperatorProfile(ctx, f); err == nil {
			operator = p.Name
		}
	}

	fmt.Printf("%s  %s  %s-%s\n", f.Ident, operator, f.Origin.Ident(), f.Destination.Ident())

	now := time.Now()
	dep, arr := f.DepartureDisplay(), f.ArrivalDisplay()
	fmt.Printf("  Departure: %-14s %s\n", dep.TimeString(), dep.StatusString())
	fmt.Printf("  Arrival:   %-14s %s\n", arr.TimeString(), arr.StatusString())
	if f.InProgress(now) {
		fmt.Printf("  Progress:  %d%%\n", f.ProgressPercentAt(now))
	}

	fixes, err := api.RouteFixes(ctx, ident)
	if err != nil {
		// The route drawing is optional; everything above still prints.
		fixes = nil
	}
	if pts := av.FlightPathPoints(f, fixes, db); len(pts) > 0 {
		fmt.Printf("  Route:     %d points, %.0f nm\n", len(pts), av.FiledRouteDistanceNM(f, fixes, db))
	}
	return nil
}

func showRoute(ctx context.Context, search *client.RouteSearch, origin, destination string) error {
	start, end := *startDate, *endDate
	if start == "" {
		start = time.Now().Format("2006-01-02")
	}
	if end == "" {
		end = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	}

	result := search.Search(ctx, origin, destination, start, end)
	if result.Failed() {
		return fmt.Errorf("%s-%s: %w", origin, destination, result.RoutesErr)
	}

	view := result.Aggregate()
	fmt.Printf("%s-%s\n", origin, destination)
	if n := view.TotalFlightCount(); n != "" {
		fmt.Printf("  Flights:  %s\n", n)
	}
	if len(view.CommonAircraft) > 0 {
		fmt.Printf("  Aircraft: %s\n", strings.Join(view.CommonAircraft, " "))
	}

	for _, award := range view.Awards {
		a := award.Availability
		if award.BestCabin == av.CabinNone {
			fmt.Printf("  %s  %-12s no award space\n", a.Date, a.Program)
			continue
		}
		tier := a.Tier(award.BestCabin)
		fmt.Printf("  %s  %-12s %s: %s miles, %d seats\n",
			a.Date, a.Program, award.BestCabin, tier.MileageCost, tier.RemainingSeats)
	}
	return nil
}
