package rule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClockTime = errors.New("invalid clock time")

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

// ParseClockTime parses an HH:MM string. Rule-sheet persistence must call
// this before a window ever reaches the matcher; the matcher assumes
// well-formed values.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(h*60 + m), nil
}

func (c ClockTime) Minutes() int {
	return int(c)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// DaySet is a bitmask of weekdays (bit 0 = Sunday .. bit 6 = Saturday).
// The zero value means "no filter": every day matches.
type DaySet uint8

func NewDaySet(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

func (s DaySet) Contains(d time.Weekday) bool {
	if s == 0 {
		return true
	}
	return s&(1<<uint(d)) != 0
}

// CapacityBundle is the four capacity bounds a capacity window or default
// carries as one unit.
type CapacityBundle struct {
	Min       float64
	Max       float64
	Default   float64
	Allocated float64
}

func (b CapacityBundle) Available() float64 {
	return b.Max - b.Allocated
}

// SystemDefaultCapacity is the absolute last resort of the capacity cascade.
var SystemDefaultCapacity = CapacityBundle{Min: 0, Max: 100, Default: 50, Allocated: 0}

// WindowValue is what a matching window contributes: an hourly rate for price
// sheets (a multiplier for surge sheets) or a capacity bundle.
type WindowValue struct {
	Rate     float64
	Capacity CapacityBundle
}

// Window is the closed union of the two time-addressing schemes. The
// unexported method keeps the union closed to this package.
type Window interface {
	Value() WindowValue
	matchesAt(at SlotInstant, effectiveFrom time.Time, clockInUTC bool) bool
}

// AbsoluteWindow addresses a daily clock-time range. An end before the start
// means the window wraps past midnight.
type AbsoluteWindow struct {
	Start ClockTime
	End   ClockTime
	Days  DaySet
	Val   WindowValue
}

func (w AbsoluteWindow) Value() WindowValue {
	return w.Val
}

func (w AbsoluteWindow) matchesAt(at SlotInstant, _ time.Time, clockInUTC bool) bool {
	if !w.Days.Contains(at.LocalDay()) {
		return false
	}
	minutes := at.LocalMinutes()
	if clockInUTC {
		minutes = at.UTCMinutes()
	}
	start, end := w.Start.Minutes(), w.End.Minutes()
	if end < start {
		// Overnight wraparound: 23:00-01:00 covers 23:xx and 00:xx.
		return minutes >= start || minutes < end
	}
	return minutes >= start && minutes < end
}

// DurationWindow addresses a minute range relative to the sheet's
// effectiveFrom instant. Event sheets use it for grace periods around the
// event start.
type DurationWindow struct {
	StartMinute int
	EndMinute   int
	Days        DaySet
	Val         WindowValue
}

func (w DurationWindow) Value() WindowValue {
	return w.Val
}

func (w DurationWindow) matchesAt(at SlotInstant, effectiveFrom time.Time, _ bool) bool {
	if !w.Days.Contains(at.LocalDay()) {
		return false
	}
	fromRef := int(at.Start().Sub(effectiveFrom) / time.Minute)
	if at.Start().Before(effectiveFrom) {
		return false
	}
	return fromRef >= w.StartMinute && fromRef < w.EndMinute
}

// DateRange is one entry of a DATE_BASED sheet's match list. Both bounds are
// inclusive instants.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
