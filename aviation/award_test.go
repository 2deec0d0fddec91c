// aviation/award_test.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"slices"
	"testing"
)

func TestBestCabin(t *testing.T) {
	avail := func(cost string, seats int) CabinAward {
		return CabinAward{Available: true, MileageCost: cost, RemainingSeats: seats}
	}

	tests := []struct {
		name   string
		award  AwardAvailability
		want   Cabin
		wantOk bool
	}{
		{
			name:   "business beats economy",
			award:  AwardAvailability{Business: avail("57500", 4), Economy: avail("25000", 9)},
			want:   CabinBusiness,
			wantOk: true,
		},
		{
			name:   "first beats everything",
			award:  AwardAvailability{First: avail("110000", 1), Business: avail("57500", 4), Economy: avail("25000", 9)},
			want:   CabinFirst,
			wantOk: true,
		},
		{
			name:   "premium economy beats economy",
			award:  AwardAvailability{PremiumEconomy: avail("40000", 2), Economy: avail("25000", 9)},
			want:   CabinPremiumEconomy,
			wantOk: true,
		},
		{
			name:   "economy only",
			award:  AwardAvailability{Economy: avail("25000", 9)},
			want:   CabinEconomy,
			wantOk: true,
		},
		{
			name:  "first without a cost falls through to business",
			award: AwardAvailability{First: CabinAward{Available: true, RemainingSeats: 1}, Business: avail("57500", 4)},
			want:  CabinBusiness, wantOk: true,
		},
		{
			name:  "available flag alone is not enough",
			award: AwardAvailability{Business: CabinAward{Available: true}},
			want:  CabinNone, wantOk: false,
		},
		{
			name:  "nothing available",
			award: AwardAvailability{Economy: CabinAward{MileageCost: "25000", RemainingSeats: 9}},
			want:  CabinNone, wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.award.BestCabin()
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("BestCabin = %v/%v, expected %v/%v", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestCabinStrings(t *testing.T) {
	if CabinBusiness.String() != "Business" || CabinBusiness.Code() != "J" {
		t.Errorf("CabinBusiness = %q/%q", CabinBusiness.String(), CabinBusiness.Code())
	}
	if CabinNone.String() != "" || CabinNone.Code() != "" {
		t.Errorf("CabinNone should render empty")
	}
}

func TestAggregate(t *testing.T) {
	routes := []FiledRoute{
		{Route: "WAVEY EMJAY J174", Count: 12, AircraftTypes: []string{"B738", "A321", "B738"}},
		{Route: "MERIT ROBUC3", Count: 5, AircraftTypes: []string{"A321", "E190", ""}},
		{Route: "GREKI JUDDS", Count: 0, AircraftTypes: []string{"B738"}},
	}
	awards := []AwardAvailability{
		{Business: CabinAward{Available: true, MileageCost: "57500", RemainingSeats: 2}},
		{},
	}

	view := Aggregate(routes, nil, awards)

	// B738 appears three times, A321 twice, E190 once; the empty type is
	// dropped.
	if !slices.Equal(view.CommonAircraft, []string{"B738", "A321", "E190"}) {
		t.Errorf("CommonAircraft = %v", view.CommonAircraft)
	}

	if view.TotalFlights != 17 {
		t.Errorf("TotalFlights = %d, expected 17", view.TotalFlights)
	}
	if view.TotalFlightCount() != "17" {
		t.Errorf("TotalFlightCount = %q, expected \"17\"", view.TotalFlightCount())
	}

	if len(view.Awards) != 2 {
		t.Fatalf("got %d award summaries, expected 2", len(view.Awards))
	}
	if view.Awards[0].BestCabin != CabinBusiness {
		t.Errorf("award 0 best cabin = %v, expected Business", view.Awards[0].BestCabin)
	}
	if view.Awards[1].BestCabin != CabinNone {
		t.Errorf("award 1 best cabin = %v, expected none", view.Awards[1].BestCabin)
	}
}

func TestAggregateTiesAlphabetical(t *testing.T) {
	routes := []FiledRoute{
		{AircraftTypes: []string{"E175", "A320", "C208"}},
	}
	view := Aggregate(routes, nil, nil)
	if !slices.Equal(view.CommonAircraft, []string{"A320", "C208", "E175"}) {
		t.Errorf("tied aircraft not alphabetical: %v", view.CommonAircraft)
	}
}

func TestAggregateTopEight(t *testing.T) {
	routes := []FiledRoute{
		{AircraftTypes: []string{"A318", "A319", "A320", "A321", "B737", "B738", "B739", "B752", "B763", "B772"}},
	}
	view := Aggregate(routes, nil, nil)
	if len(view.CommonAircraft) != 8 {
		t.Errorf("got %d aircraft, expected cap of 8", len(view.CommonAircraft))
	}
}

func TestAggregateEmpty(t *testing.T) {
	view := Aggregate(nil, nil, nil)
	if len(view.CommonAircraft) != 0 || len(view.Awards) != 0 || view.TotalFlights != 0 {
		t.Errorf("empty aggregate not empty: %+v", view)
	}
	if view.TotalFlightCount() != "" {
		t.Errorf("TotalFlightCount = %q, expected empty string", view.TotalFlightCount())
	}
}
