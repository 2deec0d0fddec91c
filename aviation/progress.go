// aviation/progress.go
// Copyright(c) 2024-2026 skytrail contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	gomath "math"
	"strings"
	"time"

	"github.com/skytrail/skytrail/math"
)

// Status strings from the provider that indicate an airborne flight even
// when the timestamp fields are incomplete.
var inProgressStatus = []string{"en route", "in progress", "airborne"}

func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// InProgress reports whether the flight is airborne at the given time.
// The provider's status string is authoritative when it names an airborne
// state; otherwise the flight must have taken off and not yet landed.
func (f Flight) InProgress(now time.Time) bool {
	status := strings.ToLower(f.Status)
	for _, s := range inProgressStatus {
		if strings.Contains(status, s) {
			return true
		}
	}

	if f.ActualOff == "" || f.ActualOn != "" {
		return false
	}
	off, ok := parseInstant(f.ActualOff)
	return ok && off.Before(now)
}

// ProgressPercentAt returns the flight's completion percentage in
// [0,100]. For an in-progress flight it is interpolated from elapsed time
// against the scheduled gate-to-gate duration; otherwise (and whenever
// the schedule is missing, unparseable, or non-positive) the provider's
// own progress value is used, defaulting to 0.
func (f Flight) ProgressPercentAt(now time.Time) int {
	fallback := 0
	if f.ProgressPercent != nil {
		fallback = *f.ProgressPercent
	}

	if !f.InProgress(now) {
		return fallback
	}

	dep, ok := parseInstant(f.ScheduledOut)
	if !ok {
		return fallback
	}
	arr, ok := parseInstant(f.ScheduledOn)
	if !ok {
		return fallback
	}

	total := arr.Sub(dep)
	if total <= 0 {
		return fallback
	}
	elapsed := now.Sub(dep)
	percent := int(gomath.Round(float64(elapsed) / float64(total) * 100))
	return math.Clamp(percent, 0, 100)
}

// TimeDisplay is everything the presentation layer needs to render one of
// a flight's times: the authoritative instant (actual beats estimated
// beats scheduled), the scheduled instant for strikethrough comparison,
// and the early/delayed/cancelled state.
type TimeDisplay struct {
	Time      time.Time // zero if no data at all
	Scheduled time.Time // zero if absent
	Actual    bool      // Time is from an actual timestamp
	Estimated bool      // Time is from an estimated timestamp

	// DelayMinutes is positive for a delayed flight and negative for an
	// early one, computed from estimated vs. scheduled.
	DelayMinutes int
	Cancelled    bool
}

func (td TimeDisplay) HasTime() bool {
	return !td.Time.IsZero()
}

// ShowScheduled reports whether the scheduled time should be rendered
// (struck through) next to the authoritative time.
func (td TimeDisplay) ShowScheduled() bool {
	return !td.Scheduled.IsZero() && td.HasTime() && !td.Scheduled.Equal(td.Time)
}

// TimeString formats the authoritative time in its zone, or the "TBD"
// sentinel when there is no data.
func (td TimeDisplay) TimeString() string {
	if !td.HasTime() {
		return "TBD"
	}
	return td.Time.Format("3:04 PM MST")
}

// StatusString renders the early/delayed state; cancellation overrides
// any timing deltas.
func (td TimeDisplay) StatusString() string {
	switch {
	case td.Cancelled:
		return "Cancelled"
	case td.DelayMinutes > 0:
		return fmt.Sprintf("Delayed %d min", td.DelayMinutes)
	case td.DelayMinutes < 0:
		return fmt.Sprintf("Early %d min", -td.DelayMinutes)
	default:
		return "On time"
	}
}

// MakeTimeDisplay assembles the display state for one flight phase from
// its actual/estimated/scheduled timestamps. tzName is an IANA zone name;
// if it is empty or unresolvable the times are shown in UTC.
func MakeTimeDisplay(actual, estimated, scheduled, tzName string, cancelled bool) TimeDisplay {
	loc := time.UTC
	if tzName != "" {
		if l, err := time.LoadLocation(tzName); err == nil {
			loc = l
		}
	}

	act, actOK := parseInstant(actual)
	est, estOK := parseInstant(estimated)
	sched, schedOK := parseInstant(scheduled)

	td := TimeDisplay{Cancelled: cancelled}

	if estOK && schedOK {
		// Positive difference means the flight is running early.
		difference := sched.Sub(est)
		td.DelayMinutes = -int(difference.Minutes())
	}

	if schedOK {
		td.Scheduled = sched.In(loc)
	}

	switch {
	case actOK:
		td.Time = act.In(loc)
		td.Actual = true
	case estOK:
		td.Time = est.In(loc)
		td.Estimated = true
	case schedOK:
		td.Time = sched.In(loc)
	}

	return td
}

// DepartureDisplay and ArrivalDisplay build the gate departure and
// arrival time displays for a flight.
func (f Flight) DepartureDisplay() TimeDisplay {
	return MakeTimeDisplay(f.ActualOut, f.EstimatedOut, f.ScheduledOut, f.Origin.Timezone, f.Cancelled)
}

func (f Flight) ArrivalDisplay() TimeDisplay {
	return MakeTimeDisplay(f.ActualOn, f.EstimatedOn, f.ScheduledOn, f.Destination.Timezone, f.Cancelled)
}
