// Package schedule splits booking spans into calendar-hour-aligned slots.
package schedule

import "time"

// Slot is one contiguous piece of a booking span. All boundaries except the
// first start and last end fall on :00 hour marks in absolute time.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Hours is the slot length as a real number, so a 15-minute slot reports 0.25.
func (s Slot) Hours() float64 {
	return s.Duration().Hours()
}

// Split cuts [start, end) at hour marks. The slots are ordered, contiguous
// and non-overlapping, and their union is exactly the input span. A span not
// crossing any hour mark yields a single fractional slot. start >= end
// yields nil.
func Split(start, end time.Time) []Slot {
	if !start.Before(end) {
		return nil
	}
	slots := make([]Slot, 0, int(end.Sub(start)/time.Hour)+2)
	cur := start
	for cur.Before(end) {
		next := cur.Truncate(time.Hour).Add(time.Hour)
		if next.After(end) {
			next = end
		}
		slots = append(slots, Slot{Start: cur, End: next})
		cur = next
	}
	return slots
}
