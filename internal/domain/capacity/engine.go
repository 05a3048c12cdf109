// Package capacity resolves the effective hourly capacity bounds for a
// booking span. It mirrors the price engine structurally, with two
// differences: per-hour explicit overrides outrank every rule sheet, and the
// resolved value is a min/max/default/allocated bundle instead of a rate.
package capacity

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrInvalidSpan = errors.New("booking start must be before booking end")

// Context is the full input of one capacity resolution call.
type Context struct {
	BookingStart time.Time
	BookingEnd   time.Time
	Timezone     string // IANA identifier
	Hierarchy    rule.Hierarchy
	Sheets       rule.SheetSet // Surge is ignored if supplied
	Defaults     rule.DefaultSet
	Overrides    OverrideTable
}

// Segment is one resolved hour (or fractional edge) of the booking.
type Segment struct {
	Start         time.Time           `json:"start"`
	End           time.Time           `json:"end"`
	DurationHours float64             `json:"duration_hours"`
	Capacity      rule.CapacityBundle `json:"capacity"`
	Available     float64             `json:"available"`
	Source        rule.Source         `json:"source"`
	SheetID       *uuid.UUID          `json:"sheet_id,omitempty"`
}

// Decision is one entry of the per-hour audit trail.
type Decision struct {
	HourStart time.Time           `json:"hour_start"`
	Source    rule.Source         `json:"source"`
	Level     rule.Level          `json:"level,omitempty"`
	SheetID   *uuid.UUID          `json:"sheet_id,omitempty"`
	SheetName string              `json:"sheet_name,omitempty"`
	SheetType rule.SheetType      `json:"sheet_type,omitempty"`
	Priority  int                 `json:"priority,omitempty"`
	Capacity  rule.CapacityBundle `json:"capacity"`
}

// Summary holds duration-weighted averages of each capacity dimension.
type Summary struct {
	TotalHours   float64 `json:"total_hours"`
	AvgMin       float64 `json:"avg_min"`
	AvgMax       float64 `json:"avg_max"`
	AvgDefault   float64 `json:"avg_default"`
	AvgAllocated float64 `json:"avg_allocated"`
	AvgAvailable float64 `json:"avg_available"`
}

// Breakdown splits the segments by whether a sheet/override or the default
// cascade bounded them.
type Breakdown struct {
	SheetSegments   []Segment `json:"sheet_segments"`
	DefaultSegments []Segment `json:"default_segments"`
}

// Quote is the engine's sole output contract with the application layer.
type Quote struct {
	Segments    []Segment  `json:"segments"`
	Summary     Summary    `json:"summary"`
	Breakdown   Breakdown  `json:"breakdown"`
	DecisionLog []Decision `json:"decision_log"`
	Timezone    string     `json:"timezone"`
}

// Resolve bounds every hour slot of the booking span. It fails only on a
// malformed input span or an unknown timezone; missing rule data always
// cascades through defaults so a caller always receives an answer.
func Resolve(ctx Context) (*Quote, error) {
	if !ctx.BookingStart.Before(ctx.BookingEnd) {
		return nil, ErrInvalidSpan
	}
	loc, err := time.LoadLocation(ctx.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", ctx.Timezone, err)
	}

	slots := schedule.Split(ctx.BookingStart, ctx.BookingEnd)
	quote := &Quote{
		Segments:    make([]Segment, 0, len(slots)),
		DecisionLog: make([]Decision, 0, len(slots)),
		Timezone:    ctx.Timezone,
	}

	var hours, min, max, def, alloc, avail float64
	for _, slot := range slots {
		at := rule.NewSlotInstant(slot.Start, loc)
		bundle, dec := resolveSlot(at, ctx)

		seg := Segment{
			Start:         slot.Start,
			End:           slot.End,
			DurationHours: slot.Hours(),
			Capacity:      bundle,
			Available:     bundle.Available(),
			Source:        dec.Source,
			SheetID:       dec.SheetID,
		}
		quote.Segments = append(quote.Segments, seg)
		quote.DecisionLog = append(quote.DecisionLog, dec)

		if dec.Source == rule.SourceSheet || dec.Source == rule.SourceOverride {
			quote.Breakdown.SheetSegments = append(quote.Breakdown.SheetSegments, seg)
		} else {
			quote.Breakdown.DefaultSegments = append(quote.Breakdown.DefaultSegments, seg)
		}

		h := slot.Hours()
		hours += h
		min += bundle.Min * h
		max += bundle.Max * h
		def += bundle.Default * h
		alloc += bundle.Allocated * h
		avail += bundle.Available() * h
	}

	quote.Summary = Summary{
		TotalHours:   hours,
		AvgMin:       round2(min / hours),
		AvgMax:       round2(max / hours),
		AvgDefault:   round2(def / hours),
		AvgAllocated: round2(alloc / hours),
		AvgAvailable: round2(avail / hours),
	}
	return quote, nil
}

// resolveSlot picks the winning capacity bundle for one hour slot. An
// explicit override at the slot's exact local (date, hour) wins before rule
// sheets are consulted at all; its unset dimensions fall through to the
// default cascade, never to sheets.
func resolveSlot(at rule.SlotInstant, ctx Context) (rule.CapacityBundle, Decision) {
	if ov, ok := ctx.Overrides.At(at.LocalDate(), at.LocalHour()); ok {
		base, _ := cascadeBundle(ctx.Defaults)
		bundle := ov.applyTo(base)
		return bundle, Decision{
			HourStart: at.Start(),
			Source:    rule.SourceOverride,
			Capacity:  bundle,
		}
	}

	cands := rule.FindCandidates(at, ctx.Sheets, rule.FindOptions{})
	winner, ok := rule.SelectWinner(cands, defaultOf)
	if !ok {
		bundle, dec := cascadeBundle(ctx.Defaults)
		dec.HourStart = at.Start()
		return bundle, dec
	}

	id := winner.Sheet.ID
	return winner.Value.Capacity, Decision{
		HourStart: at.Start(),
		Source:    rule.SourceSheet,
		Level:     winner.Level,
		SheetID:   &id,
		SheetName: winner.Sheet.Name,
		SheetType: winner.Sheet.Type,
		Priority:  winner.Sheet.Priority,
		Capacity:  winner.Value.Capacity,
	}
}

func cascadeBundle(defaults rule.DefaultSet) (rule.CapacityBundle, Decision) {
	if bundle, level, ok := defaults.FirstCapacity(); ok {
		return bundle, Decision{Source: rule.SourceLevelDefault, Level: level, Capacity: bundle}
	}
	return rule.SystemDefaultCapacity, Decision{Source: rule.SourceSystemDefault, Capacity: rule.SystemDefaultCapacity}
}

func defaultOf(c rule.Candidate) float64 {
	return c.Value.Capacity.Default
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
