// Package pricing resolves the effective hourly price for a booking span by
// evaluating the hierarchy of rule sheets supplied in the resolution context.
// The engine is pure: it performs no I/O, never mutates its input, and any
// number of resolutions may run concurrently.
package pricing

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

// Context is the full input of one price resolution call. Sheets and defaults
// are already-loaded in-memory collections; the engine treats them as
// read-only.
type Context struct {
	BookingStart   time.Time
	BookingEnd     time.Time
	Timezone       string // IANA identifier
	IsEventBooking bool
	Hierarchy      rule.Hierarchy
	Sheets         rule.SheetSet
	Defaults       rule.DefaultSet
}

// Segment is one resolved hour (or fractional edge) of the booking.
type Segment struct {
	Start         time.Time   `json:"start"`
	End           time.Time   `json:"end"`
	DurationHours float64     `json:"duration_hours"`
	RatePerHour   float64     `json:"rate_per_hour"`
	Source        rule.Source `json:"source"`
	SheetID       *uuid.UUID  `json:"sheet_id,omitempty"`
}

// Decision is one entry of the per-hour audit trail: which source won and,
// for surge hours, how the final rate was composed.
type Decision struct {
	HourStart   time.Time      `json:"hour_start"`
	Source      rule.Source    `json:"source"`
	Level       rule.Level     `json:"level,omitempty"`
	SheetID     *uuid.UUID     `json:"sheet_id,omitempty"`
	SheetName   string         `json:"sheet_name,omitempty"`
	SheetType   rule.SheetType `json:"sheet_type,omitempty"`
	Priority    int            `json:"priority,omitempty"`
	RatePerHour float64        `json:"rate_per_hour"`
	Multiplier  *float64       `json:"multiplier,omitempty"`
	BaseRate    *float64       `json:"base_rate,omitempty"`
}

type Summary struct {
	TotalHours  float64 `json:"total_hours"`
	TotalPrice  float64 `json:"total_price"`
	AverageRate float64 `json:"average_rate"`
}

// Breakdown splits the segments by whether a rule sheet or the default
// cascade priced them.
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

// Resolve prices every hour slot of the booking span. It fails only on a
// malformed input span or an unknown timezone; missing rule data always
// cascades through defaults so a caller always receives a quote.
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

	var totalHours, totalPrice float64
	for _, slot := range slots {
		at := rule.NewSlotInstant(slot.Start, loc)
		rate, dec := resolveSlot(at, ctx)

		seg := Segment{
			Start:         slot.Start,
			End:           slot.End,
			DurationHours: slot.Hours(),
			RatePerHour:   rate,
			Source:        dec.Source,
			SheetID:       dec.SheetID,
		}
		quote.Segments = append(quote.Segments, seg)
		quote.DecisionLog = append(quote.DecisionLog, dec)

		if dec.Source == rule.SourceSheet || dec.Source == rule.SourceSurge {
			quote.Breakdown.SheetSegments = append(quote.Breakdown.SheetSegments, seg)
		} else {
			quote.Breakdown.DefaultSegments = append(quote.Breakdown.DefaultSegments, seg)
		}

		totalHours += slot.Hours()
		totalPrice += rate * slot.Hours()
	}

	quote.Summary = Summary{
		TotalHours:  totalHours,
		TotalPrice:  round2(totalPrice),
		AverageRate: round2(totalPrice / totalHours),
	}
	return quote, nil
}

// resolveSlot picks the winning rate for one hour slot.
func resolveSlot(at rule.SlotInstant, ctx Context) (float64, Decision) {
	opts := rule.FindOptions{SkipZeroRateEventWindows: !ctx.IsEventBooking}
	cands := rule.FindCandidates(at, ctx.Sheets, opts)

	winner, ok := rule.SelectWinner(cands, rateOf)
	if !ok {
		return defaultRate(at, ctx)
	}

	if winner.Level == rule.LevelSurge && winner.Sheet.Type == rule.TypeSurgeMultiplier {
		return composeSurge(at, ctx, cands, winner)
	}

	id := winner.Sheet.ID
	return winner.Value.Rate, Decision{
		HourStart:   at.Start(),
		Source:      rule.SourceSheet,
		Level:       winner.Level,
		SheetID:     &id,
		SheetName:   winner.Sheet.Name,
		SheetType:   winner.Sheet.Type,
		Priority:    winner.Sheet.Priority,
		RatePerHour: winner.Value.Rate,
	}
}

// composeSurge recomputes the final rate from the best non-surge candidate.
// The surge winner's value is a multiplier, never an absolute rate. Only one
// multiplier applies per hour; lower-priority surge sheets have no effect.
func composeSurge(at rule.SlotInstant, ctx Context, cands []rule.Candidate, surge rule.Candidate) (float64, Decision) {
	base := cands[:0:0]
	for _, c := range cands {
		if c.Level != rule.LevelSurge {
			base = append(base, c)
		}
	}

	var baseRate float64
	if baseWinner, ok := rule.SelectWinner(base, rateOf); ok {
		baseRate = baseWinner.Value.Rate
	} else {
		baseRate, _ = cascadeRate(ctx.Defaults)
	}

	multiplier := surge.Value.Rate
	final := baseRate * multiplier
	id := surge.Sheet.ID
	return final, Decision{
		HourStart:   at.Start(),
		Source:      rule.SourceSurge,
		Level:       rule.LevelSurge,
		SheetID:     &id,
		SheetName:   surge.Sheet.Name,
		SheetType:   surge.Sheet.Type,
		Priority:    surge.Sheet.Priority,
		RatePerHour: final,
		Multiplier:  &multiplier,
		BaseRate:    &baseRate,
	}
}

// defaultRate runs the hierarchy-ordered default cascade for an hour no
// sheet matched. It never fails to produce a value.
func defaultRate(at rule.SlotInstant, ctx Context) (float64, Decision) {
	rate, dec := cascadeRate(ctx.Defaults)
	dec.HourStart = at.Start()
	return rate, dec
}

func cascadeRate(defaults rule.DefaultSet) (float64, Decision) {
	if rate, level, ok := defaults.FirstRate(); ok {
		return rate, Decision{Source: rule.SourceLevelDefault, Level: level, RatePerHour: rate}
	}
	return 0, Decision{Source: rule.SourceSystemDefault, RatePerHour: 0}
}

func rateOf(c rule.Candidate) float64 {
	return c.Value.Rate
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
