package rule

import (
	"sort"
	"time"
)

// SlotInstant is one hour-slot's start with its clock readings precomputed,
// so every window of every sheet for that hour reuses the same conversions.
type SlotInstant struct {
	start        time.Time
	localMinutes int
	utcMinutes   int
	localDay     time.Weekday
	localDate    string
	localHour    int
}

func NewSlotInstant(start time.Time, loc *time.Location) SlotInstant {
	local := start.In(loc)
	utc := start.UTC()
	return SlotInstant{
		start:        start,
		localMinutes: local.Hour()*60 + local.Minute(),
		utcMinutes:   utc.Hour()*60 + utc.Minute(),
		localDay:     local.Weekday(),
		localDate:    local.Format("2006-01-02"),
		localHour:    local.Hour(),
	}
}

func (at SlotInstant) Start() time.Time { return at.start }

func (at SlotInstant) LocalMinutes() int { return at.localMinutes }

func (at SlotInstant) UTCMinutes() int { return at.utcMinutes }

func (at SlotInstant) LocalDay() time.Weekday { return at.localDay }

func (at SlotInstant) LocalDate() string { return at.localDate }

func (at SlotInstant) LocalHour() int { return at.localHour }

// Candidate is one sheet that matched an hour, with the value its matching
// window contributed.
type Candidate struct {
	Sheet *Sheet
	Level Level
	Value WindowValue
}

// FindOptions tunes candidate gathering per engine.
type FindOptions struct {
	// SkipZeroRateEventWindows drops EVENT-level windows whose rate is
	// exactly zero. The price engine sets it for non-event bookings so a
	// free grace period never zero-rates an ordinary overlapping booking.
	SkipZeroRateEventWindows bool
}

// FindCandidates gathers every active, date-in-range, window-matching sheet
// across all hierarchy levels for one hour. The result is unordered apart
// from being stable per level list; ordering is the resolver's job.
func FindCandidates(at SlotInstant, set SheetSet, opts FindOptions) []Candidate {
	var out []Candidate
	for _, sheets := range [][]Sheet{set.Customer, set.Location, set.SubLocation, set.Event, set.Surge} {
		for i := range sheets {
			s := &sheets[i]
			if !s.AppliesAt(at.Start()) {
				continue
			}
			if value, ok := matchSheet(at, s, opts); ok {
				out = append(out, Candidate{Sheet: s, Level: s.Level, Value: value})
			}
		}
	}
	return out
}

func matchSheet(at SlotInstant, s *Sheet, opts FindOptions) (WindowValue, bool) {
	switch s.Type {
	case TypeDateBased:
		for _, r := range s.DateRanges {
			if r.Contains(at.Start()) {
				return s.Val, true
			}
		}
		return WindowValue{}, false
	case TypeEventBased:
		// Single implicit always-matching window, subject to the same
		// zero-rate skip as explicit event windows.
		if opts.SkipZeroRateEventWindows && s.Level == LevelEvent && s.Val.Rate == 0 {
			return WindowValue{}, false
		}
		return s.Val, true
	default:
		// Surge windows are authored in UTC by convention; everything
		// else reads the booking's local clock.
		clockInUTC := s.Type == TypeSurgeMultiplier
		for _, w := range s.Windows {
			if opts.SkipZeroRateEventWindows && s.Level == LevelEvent && w.Value().Rate == 0 {
				continue
			}
			if w.matchesAt(at, s.EffectiveFrom, clockInUTC) {
				return w.Value(), true
			}
		}
		return WindowValue{}, false
	}
}

// SelectWinner orders candidates by hierarchy rank desc, then declared
// priority desc, then pushes zero-valued candidates below nonzero ones at
// equal (rank, priority); remaining ties keep insertion order. tie extracts
// the scalar used for the zero tie-break (rate or default capacity).
//
// The input slice is never reordered; ordering happens on a copy.
func SelectWinner(cands []Candidate, tie func(Candidate) float64) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	ordered := make([]Candidate, len(cands))
	copy(ordered, cands)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() > b.Level.Rank()
		}
		if a.Sheet.Priority != b.Sheet.Priority {
			return a.Sheet.Priority > b.Sheet.Priority
		}
		return tie(a) > 0 && tie(b) == 0
	})
	return ordered[0], true
}
