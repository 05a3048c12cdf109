package capacity

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
)

// Override is one operator-entered per-hour capacity record. Any subset of
// the four dimensions may be set; set dimensions win unconditionally over
// every rule sheet for that exact local (date, hour).
type Override struct {
	Date      string // local date, 2006-01-02
	Hour      int    // 0..23
	Min       *float64
	Max       *float64
	Default   *float64
	Allocated *float64
}

// applyTo overlays the override's set dimensions onto base. Unset dimensions
// keep the base value.
func (o Override) applyTo(base rule.CapacityBundle) rule.CapacityBundle {
	out := base
	if o.Min != nil {
		out.Min = *o.Min
	}
	if o.Max != nil {
		out.Max = *o.Max
	}
	if o.Default != nil {
		out.Default = *o.Default
	}
	if o.Allocated != nil {
		out.Allocated = *o.Allocated
	}
	return out
}

// OverrideKey addresses one local calendar hour.
type OverrideKey struct {
	Date string
	Hour int
}

// OverrideTable is the sublocation's stored override set, keyed by local
// (date, hour). A nil table matches nothing.
type OverrideTable map[OverrideKey]Override

// NewOverrideTable indexes a list of overrides. Later duplicates for the
// same (date, hour) replace earlier ones.
func NewOverrideTable(overrides []Override) OverrideTable {
	t := make(OverrideTable, len(overrides))
	for _, o := range overrides {
		t[OverrideKey{Date: o.Date, Hour: o.Hour}] = o
	}
	return t
}

func (t OverrideTable) At(date string, hour int) (Override, bool) {
	o, ok := t[OverrideKey{Date: date, Hour: hour}]
	return o, ok
}
