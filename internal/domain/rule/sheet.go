package rule

import (
	"time"

	"github.com/google/uuid"
)

// Sheet is one time-scoped, priority-ranked rule as the engines consume it:
// a plain value loaded by the caller, never mutated during resolution.
//
// Priority ranges are level-scoped by convention only (Customer 1000-1999,
// Location 2000-2999, SubLocation 3000-3999, Event 4000-4999, Surge
// unbounded). The resolver never validates them: hierarchy rank dominates
// the raw number.
type Sheet struct {
	ID       uuid.UUID
	Name     string
	Level    Level
	EntityID uuid.UUID
	Type     SheetType
	Priority int

	EffectiveFrom time.Time
	EffectiveTo   *time.Time // nil = open-ended
	Active        bool

	// Windows apply to TIME_BASED, DURATION_BASED and SURGE_MULTIPLIER
	// sheets. Windows within one sheet are assumed non-overlapping for a
	// given instant; the first match wins and scanning stops.
	Windows []Window

	// DateRanges apply to DATE_BASED sheets; the sheet-level Val is used
	// when any range matches. EVENT_BASED sheets carry a single implicit
	// always-matching window, also via Val.
	DateRanges []DateRange
	Val        WindowValue
}

// AppliesAt reports whether the sheet is active and the instant falls inside
// its effectivity period.
func (s *Sheet) AppliesAt(t time.Time) bool {
	if !s.Active {
		return false
	}
	if t.Before(s.EffectiveFrom) {
		return false
	}
	if s.EffectiveTo != nil && t.After(*s.EffectiveTo) {
		return false
	}
	return true
}

// SheetSet holds the per-level sheet lists supplied for one booking's
// hierarchy. The capacity engine leaves Surge empty.
type SheetSet struct {
	Customer    []Sheet
	Location    []Sheet
	SubLocation []Sheet
	Event       []Sheet
	Surge       []Sheet
}

// Hierarchy carries the entity ids the sheets were loaded for. The engines
// only echo these; loading the right sheets for them is the caller's job.
type Hierarchy struct {
	CustomerID    uuid.UUID
	LocationID    uuid.UUID
	SubLocationID uuid.UUID
	EventID       *uuid.UUID
}

// Defaults is a hierarchy level's fallback values, used only when no sheet
// matched an hour. Either field may be absent.
type Defaults struct {
	Rate     *float64
	Capacity *CapacityBundle
}

// DefaultSet holds per-level defaults for the cascade.
type DefaultSet struct {
	Customer    Defaults
	Location    Defaults
	SubLocation Defaults
	Event       Defaults
}

func (d DefaultSet) at(level Level) Defaults {
	switch level {
	case LevelEvent:
		return d.Event
	case LevelSubLocation:
		return d.SubLocation
	case LevelLocation:
		return d.Location
	case LevelCustomer:
		return d.Customer
	default:
		return Defaults{}
	}
}

// FirstRate walks the cascade Event -> SubLocation -> Location -> Customer
// and returns the first configured default rate.
func (d DefaultSet) FirstRate() (float64, Level, bool) {
	for _, level := range CascadeOrder {
		if def := d.at(level); def.Rate != nil {
			return *def.Rate, level, true
		}
	}
	return 0, "", false
}

// FirstCapacity is FirstRate for capacity bundles.
func (d DefaultSet) FirstCapacity() (CapacityBundle, Level, bool) {
	for _, level := range CascadeOrder {
		if def := d.at(level); def.Capacity != nil {
			return *def.Capacity, level, true
		}
	}
	return CapacityBundle{}, "", false
}
