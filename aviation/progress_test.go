// aviation/progress_test.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"testing"
	"time"
)

var progressNow = time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

func rfc3339(t time.Time) string {
	return t.Format(time.RFC3339)
}

func intp(v int) *int { return &v }

func TestInProgress(t *testing.T) {
	now := progressNow

	tests := []struct {
		name   string
		flight Flight
		want   bool
	}{
		{
			name:   "status en route",
			flight: Flight{Status: "En Route"},
			want:   true,
		},
		{
			name:   "status en route / delayed",
			flight: Flight{Status: "En Route / Delayed"},
			want:   true,
		},
		{
			name:   "status airborne",
			flight: Flight{Status: "Airborne"},
			want:   true,
		},
		{
			name: "departed and not yet landed",
			flight: Flight{
				Status:    "Unknown",
				ActualOff: rfc3339(now.Add(-time.Hour)),
			},
			want: true,
		},
		{
			name: "landed",
			flight: Flight{
				Status:    "Arrived",
				ActualOff: rfc3339(now.Add(-5 * time.Hour)),
				ActualOn:  rfc3339(now.Add(-time.Hour)),
			},
			want: false,
		},
		{
			name:   "not yet departed",
			flight: Flight{Status: "Scheduled"},
			want:   false,
		},
		{
			name: "unparseable departure time",
			flight: Flight{
				Status:    "Taxiing",
				ActualOff: "not a timestamp",
			},
			want: false,
		},
		{
			name: "departure in the future",
			flight: Flight{
				Status:    "Scheduled",
				ActualOff: rfc3339(now.Add(time.Hour)),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flight.InProgress(now); got != tt.want {
				t.Errorf("InProgress = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestProgressPercent(t *testing.T) {
	now := progressNow

	tests := []struct {
		name   string
		flight Flight
		want   int
	}{
		{
			name: "halfway through a four hour flight",
			flight: Flight{
				Status:       "En Route",
				ScheduledOut: rfc3339(now.Add(-2 * time.Hour)),
				ScheduledOn:  rfc3339(now.Add(2 * time.Hour)),
			},
			want: 50,
		},
		{
			name: "clamped at 100 when past scheduled arrival",
			flight: Flight{
				Status:       "En Route",
				ScheduledOut: rfc3339(now.Add(-6 * time.Hour)),
				ScheduledOn:  rfc3339(now.Add(-time.Hour)),
			},
			want: 100,
		},
		{
			name: "non-positive scheduled duration falls back to provider",
			flight: Flight{
				Status:          "En Route",
				ScheduledOut:    rfc3339(now.Add(time.Hour)),
				ScheduledOn:     rfc3339(now.Add(-time.Hour)),
				ProgressPercent: intp(31),
			},
			want: 31,
		},
		{
			name: "non-positive scheduled duration without provider value",
			flight: Flight{
				Status:       "En Route",
				ScheduledOut: rfc3339(now),
				ScheduledOn:  rfc3339(now),
			},
			want: 0,
		},
		{
			name: "missing schedule falls back to provider",
			flight: Flight{
				Status:          "En Route",
				ProgressPercent: intp(62),
			},
			want: 62,
		},
		{
			name: "not in progress uses provider value",
			flight: Flight{
				Status:          "Scheduled",
				ScheduledOut:    rfc3339(now.Add(-2 * time.Hour)),
				ScheduledOn:     rfc3339(now.Add(2 * time.Hour)),
				ProgressPercent: intp(0),
			},
			want: 0,
		},
		{
			name:   "no data at all",
			flight: Flight{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flight.ProgressPercentAt(now); got != tt.want {
				t.Errorf("ProgressPercentAt = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestMakeTimeDisplay(t *testing.T) {
	sched := "2026-03-15T18:00:00Z"
	est10Late := "2026-03-15T18:10:00Z"
	est10Early := "2026-03-15T17:50:00Z"
	actual := "2026-03-15T18:12:00Z"

	t.Run("actual is authoritative", func(t *testing.T) {
		td := MakeTimeDisplay(actual, est10Late, sched, "", false)
		if !td.Actual || td.Time.IsZero() {
			t.Fatalf("actual time not selected: %+v", td)
		}
		if td.TimeString() != "6:12 PM UTC" {
			t.Errorf("TimeString = %q", td.TimeString())
		}
		if !td.ShowScheduled() {
			t.Errorf("scheduled time should be shown for comparison")
		}
	})

	t.Run("estimated before scheduled", func(t *testing.T) {
		td := MakeTimeDisplay("", est10Late, sched, "", false)
		if td.Actual || !td.Estimated {
			t.Fatalf("estimated time not selected: %+v", td)
		}
		if td.DelayMinutes != 10 {
			t.Errorf("DelayMinutes = %d, expected 10", td.DelayMinutes)
		}
		if td.StatusString() != "Delayed 10 min" {
			t.Errorf("StatusString = %q", td.StatusString())
		}
	})

	t.Run("early flight", func(t *testing.T) {
		td := MakeTimeDisplay("", est10Early, sched, "", false)
		if td.DelayMinutes != -10 {
			t.Errorf("DelayMinutes = %d, expected -10", td.DelayMinutes)
		}
		if td.StatusString() != "Early 10 min" {
			t.Errorf("StatusString = %q", td.StatusString())
		}
	})

	t.Run("on time", func(t *testing.T) {
		td := MakeTimeDisplay("", sched, sched, "", false)
		if td.DelayMinutes != 0 {
			t.Errorf("DelayMinutes = %d, expected 0", td.DelayMinutes)
		}
		if td.StatusString() != "On time" {
			t.Errorf("StatusString = %q", td.StatusString())
		}
	})

	t.Run("cancelled overrides delay", func(t *testing.T) {
		td := MakeTimeDisplay("", est10Late, sched, "", true)
		if td.StatusString() != "Cancelled" {
			t.Errorf("StatusString = %q, expected Cancelled", td.StatusString())
		}
	})

	t.Run("no data sentinel", func(t *testing.T) {
		td := MakeTimeDisplay("", "", "", "", false)
		if td.HasTime() {
			t.Errorf("HasTime true with no data")
		}
		if td.TimeString() != "TBD" {
			t.Errorf("TimeString = %q, expected TBD", td.TimeString())
		}
	})

	t.Run("scheduled only", func(t *testing.T) {
		td := MakeTimeDisplay("", "", sched, "", false)
		if !td.HasTime() || td.Actual || td.Estimated {
			t.Fatalf("scheduled time not selected: %+v", td)
		}
		if td.ShowScheduled() {
			t.Errorf("scheduled time should not be shown twice")
		}
	})

	t.Run("timezone conversion", func(t *testing.T) {
		td := MakeTimeDisplay("", "", sched, "America/New_York", false)
		if td.TimeString() != "2:00 PM EDT" {
			t.Errorf("TimeString = %q", td.TimeString())
		}
	})

	t.Run("bad timezone falls back to UTC", func(t *testing.T) {
		td := MakeTimeDisplay("", "", sched, "Mars/Olympus_Mons", false)
		if td.TimeString() != "6:00 PM UTC" {
			t.Errorf("TimeString = %q", td.TimeString())
		}
	})
}
