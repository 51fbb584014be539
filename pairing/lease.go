package pairing

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MinutesPerUnit scales wall-clock minutes into lease units: 1 hour = 4 units.
	MinutesPerUnit = 15

	// TransferWindow is the hand-over margin in minutes; a lease shorter than
	// this crosses midnight and gets the ±24h treatment.
	TransferWindow = 60

	minutesPerDay = 24 * 60
)

// ParseClock converts an "HH:mm" string into minutes from midnight.
// Numeric fields outside their range are normalized modulo 24h/60m, so
// "24:30" means 00:30. Anything non-numeric or not two-part is ErrBadClock.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, ErrBadClock
	}
	hh, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, ErrBadClock
	}
	mm, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, ErrBadClock
	}
	if hh < 0 || mm < 0 {
		return 0, ErrBadClock
	}

	return (hh%24)*60 + mm%60, nil
}

// window resolves a task's start and end minute-of-day, the end wrapped
// across midnight.
func window(t Task) (start, end int, err error) {
	start, err = ParseClock(t.Start)
	if err != nil {
		return 0, 0, err
	}
	end = (start + t.Duration) % minutesPerDay

	return start, end, nil
}

// LeaseMinutes computes the lease time between two daily events: the time a
// shared resource stays held from endFirst to startSecond, in minutes.
//
// A negative raw difference wraps by +24h. A lease shorter than the
// transfer window crosses midnight in practice, and gets re-expressed
// around a full day: later end ⇒ 24h − (start − end), otherwise
// 24h + (start − end).
func LeaseMinutes(endFirst, startSecond int) int {
	lease := endFirst - startSecond
	if lease < 0 {
		lease += minutesPerDay
	}
	if lease < TransferWindow {
		if endFirst > startSecond {
			lease = minutesPerDay - (startSecond - endFirst)
		} else {
			lease = minutesPerDay + (startSecond - endFirst)
		}
	}

	return lease
}

// MinutesToUnits converts minutes into lease units, rounding to the nearest
// unit. Negative input is first normalized into a single day.
func MinutesToUnits(minutes int) int {
	if minutes < 0 {
		minutes = (minutes%minutesPerDay + minutesPerDay) % minutesPerDay
	}

	return int(math.Round(float64(minutes) / MinutesPerUnit))
}
