//go:build unit || e2e

package builder

import (
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"

	"github.com/google/uuid"
)

// SheetBuilder assembles rule sheets for engine tests. Defaults describe an
// active, open-ended, location-level time-based sheet.
type SheetBuilder struct {
	sheet rule.Sheet
}

func NewSheetBuilder() *SheetBuilder {
	return &SheetBuilder{
		sheet: rule.Sheet{
			ID:            uuid.New(),
			Name:          "test sheet",
			Level:         rule.LevelLocation,
			EntityID:      uuid.New(),
			Type:          rule.TypeTimeBased,
			Priority:      2000,
			EffectiveFrom: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Active:        true,
		},
	}
}

func (b *SheetBuilder) WithID(id uuid.UUID) *SheetBuilder {
	b.sheet.ID = id
	return b
}

func (b *SheetBuilder) WithName(name string) *SheetBuilder {
	b.sheet.Name = name
	return b
}

func (b *SheetBuilder) WithLevel(level rule.Level) *SheetBuilder {
	b.sheet.Level = level
	return b
}

func (b *SheetBuilder) WithType(t rule.SheetType) *SheetBuilder {
	b.sheet.Type = t
	return b
}

func (b *SheetBuilder) WithPriority(p int) *SheetBuilder {
	b.sheet.Priority = p
	return b
}

func (b *SheetBuilder) WithEffective(from time.Time, to *time.Time) *SheetBuilder {
	b.sheet.EffectiveFrom = from
	b.sheet.EffectiveTo = to
	return b
}

func (b *SheetBuilder) Inactive() *SheetBuilder {
	b.sheet.Active = false
	return b
}

// WithAbsoluteWindow adds a clock-time window priced at rate. start and end
// are HH:MM strings; the builder panics on malformed input since tests
// author them literally.
func (b *SheetBuilder) WithAbsoluteWindow(start, end string, rate float64) *SheetBuilder {
	b.sheet.Windows = append(b.sheet.Windows, rule.AbsoluteWindow{
		Start: mustClock(start),
		End:   mustClock(end),
		Val:   rule.WindowValue{Rate: rate},
	})
	return b
}

func (b *SheetBuilder) WithAbsoluteCapacityWindow(start, end string, bundle rule.CapacityBundle) *SheetBuilder {
	b.sheet.Windows = append(b.sheet.Windows, rule.AbsoluteWindow{
		Start: mustClock(start),
		End:   mustClock(end),
		Val:   rule.WindowValue{Capacity: bundle, Rate: bundle.Default},
	})
	return b
}

func (b *SheetBuilder) WithDurationWindow(startMinute, endMinute int, rate float64) *SheetBuilder {
	b.sheet.Windows = append(b.sheet.Windows, rule.DurationWindow{
		StartMinute: startMinute,
		EndMinute:   endMinute,
		Val:         rule.WindowValue{Rate: rate},
	})
	return b
}

func (b *SheetBuilder) WithWindowDays(days ...time.Weekday) *SheetBuilder {
	if len(b.sheet.Windows) == 0 {
		panic("WithWindowDays: add a window first")
	}
	set := rule.NewDaySet(days...)
	last := len(b.sheet.Windows) - 1
	switch w := b.sheet.Windows[last].(type) {
	case rule.AbsoluteWindow:
		w.Days = set
		b.sheet.Windows[last] = w
	case rule.DurationWindow:
		w.Days = set
		b.sheet.Windows[last] = w
	}
	return b
}

func (b *SheetBuilder) WithDateRange(start, end time.Time) *SheetBuilder {
	b.sheet.DateRanges = append(b.sheet.DateRanges, rule.DateRange{Start: start, End: end})
	return b
}

func (b *SheetBuilder) WithValue(v rule.WindowValue) *SheetBuilder {
	b.sheet.Val = v
	return b
}

func (b *SheetBuilder) Build() rule.Sheet {
	return b.sheet
}

func mustClock(s string) rule.ClockTime {
	c, err := rule.ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}
