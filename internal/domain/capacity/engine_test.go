//go:build unit

package capacity_test

import (
	"testing"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/capacity"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }

func sheetBundle() rule.CapacityBundle {
	return rule.CapacityBundle{Min: 5, Max: 200, Default: 100, Allocated: 20}
}

func sublocationSheet() rule.Sheet {
	return builder.NewSheetBuilder().
		WithName("sublocation capacity").
		WithLevel(rule.LevelSubLocation).
		WithPriority(3999).
		WithAbsoluteCapacityWindow("00:00", "23:59", sheetBundle()).
		Build()
}

func baseContext(t *testing.T) capacity.Context {
	t.Helper()
	return capacity.Context{
		BookingStart: day(t).Add(10 * time.Hour),
		BookingEnd:   day(t).Add(12 * time.Hour),
		Timezone:     "UTC",
		Sheets:       rule.SheetSet{SubLocation: []rule.Sheet{sublocationSheet()}},
		Defaults: rule.DefaultSet{
			SubLocation: rule.Defaults{Capacity: &rule.CapacityBundle{Min: 0, Max: 80, Default: 40, Allocated: 0}},
		},
	}
}

func TestResolveSheetCapacity(t *testing.T) {
	quote, err := capacity.Resolve(baseContext(t))
	require.NoError(t, err)
	require.Len(t, quote.Segments, 2)

	for _, seg := range quote.Segments {
		assert.Equal(t, sheetBundle(), seg.Capacity)
		assert.Equal(t, 180.0, seg.Available)
		assert.Equal(t, rule.SourceSheet, seg.Source)
	}
	assert.Equal(t, 2.0, quote.Summary.TotalHours)
	assert.Equal(t, 100.0, quote.Summary.AvgDefault)
	assert.Equal(t, 180.0, quote.Summary.AvgAvailable)
}

func TestResolveHourlyOverridePrecedence(t *testing.T) {
	ctx := baseContext(t)
	ctx.Overrides = capacity.NewOverrideTable([]capacity.Override{
		{
			Date:      "2026-01-15",
			Hour:      10,
			Min:       floatPtr(0),
			Max:       floatPtr(30),
			Default:   floatPtr(15),
			Allocated: floatPtr(30),
		},
	})

	quote, err := capacity.Resolve(ctx)
	require.NoError(t, err)
	require.Len(t, quote.Segments, 2)

	// Hour 10 is pinned by the override even though a priority-3999
	// sublocation sheet matches the same hour.
	overridden := quote.Segments[0]
	assert.Equal(t, rule.SourceOverride, overridden.Source)
	assert.Equal(t, 30.0, overridden.Capacity.Max)
	assert.Equal(t, 0.0, overridden.Available)

	// Hour 11 still resolves through the sheet.
	assert.Equal(t, rule.SourceSheet, quote.Segments[1].Source)
	assert.Equal(t, sheetBundle(), quote.Segments[1].Capacity)
}

func TestResolvePartialOverrideFallsBackToDefaults(t *testing.T) {
	ctx := baseContext(t)
	ctx.BookingEnd = ctx.BookingStart.Add(time.Hour)
	// Only max is pinned; the remaining dimensions come from the default
	// cascade, never from rule sheets.
	ctx.Overrides = capacity.NewOverrideTable([]capacity.Override{
		{Date: "2026-01-15", Hour: 10, Max: floatPtr(60)},
	})

	quote, err := capacity.Resolve(ctx)
	require.NoError(t, err)
	bundle := quote.Segments[0].Capacity
	assert.Equal(t, 60.0, bundle.Max)
	assert.Equal(t, 40.0, bundle.Default, "from sublocation defaults, not the sheet")
	assert.Equal(t, 0.0, bundle.Allocated)
}

func TestResolveDefaultCascade(t *testing.T) {
	ctx := capacity.Context{
		BookingStart: day(t).Add(10 * time.Hour),
		BookingEnd:   day(t).Add(11 * time.Hour),
		Timezone:     "UTC",
	}

	t.Run("event defaults outrank sublocation defaults", func(t *testing.T) {
		c := ctx
		c.Defaults = rule.DefaultSet{
			Event:       rule.Defaults{Capacity: &rule.CapacityBundle{Min: 1, Max: 500, Default: 250, Allocated: 0}},
			SubLocation: rule.Defaults{Capacity: &rule.CapacityBundle{Min: 0, Max: 80, Default: 40, Allocated: 0}},
		}
		quote, err := capacity.Resolve(c)
		require.NoError(t, err)
		assert.Equal(t, 500.0, quote.Segments[0].Capacity.Max)
		assert.Equal(t, rule.LevelEvent, quote.DecisionLog[0].Level)
	})

	t.Run("no configuration at all yields the system constant", func(t *testing.T) {
		quote, err := capacity.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, rule.SystemDefaultCapacity, quote.Segments[0].Capacity)
		assert.Equal(t, rule.SourceSystemDefault, quote.DecisionLog[0].Source)
		assert.Empty(t, quote.Breakdown.SheetSegments)
		assert.Len(t, quote.Breakdown.DefaultSegments, 1)
	})
}

func TestResolveWeightedAverages(t *testing.T) {
	// One hour at the sheet bundle, one override hour at half the max:
	// averages must be duration-weighted.
	ctx := baseContext(t)
	ctx.Overrides = capacity.NewOverrideTable([]capacity.Override{
		{
			Date:      "2026-01-15",
			Hour:      11,
			Min:       floatPtr(5),
			Max:       floatPtr(100),
			Default:   floatPtr(50),
			Allocated: floatPtr(20),
		},
	})

	quote, err := capacity.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150.0, quote.Summary.AvgMax)       // (200 + 100) / 2
	assert.Equal(t, 75.0, quote.Summary.AvgDefault)    // (100 + 50) / 2
	assert.Equal(t, 20.0, quote.Summary.AvgAllocated)  // (20 + 20) / 2
	assert.Equal(t, 130.0, quote.Summary.AvgAvailable) // (180 + 80) / 2
}

func TestResolveLocalDateKeysOverrides(t *testing.T) {
	// 2026-01-16 03:00 UTC is 2026-01-15 22:00 in New York; the override
	// is addressed by the local calendar hour.
	start := time.Date(2026, 1, 16, 3, 0, 0, 0, time.UTC)
	ctx := capacity.Context{
		BookingStart: start,
		BookingEnd:   start.Add(time.Hour),
		Timezone:     "America/New_York",
		Overrides: capacity.NewOverrideTable([]capacity.Override{
			{Date: "2026-01-15", Hour: 22, Max: floatPtr(12)},
		}),
	}

	quote, err := capacity.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, rule.SourceOverride, quote.Segments[0].Source)
	assert.Equal(t, 12.0, quote.Segments[0].Capacity.Max)
}

func TestResolveIsIdempotent(t *testing.T) {
	ctx := baseContext(t)
	ctx.Overrides = capacity.NewOverrideTable([]capacity.Override{
		{Date: "2026-01-15", Hour: 10, Max: floatPtr(60)},
	})
	before := ctx.Sheets

	first, err := capacity.Resolve(ctx)
	require.NoError(t, err)
	second, err := capacity.Resolve(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("quotes differ between identical calls (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, ctx.Sheets); diff != "" {
		t.Fatalf("input sheets mutated by resolution:\n%s", diff)
	}
}

func TestResolveRejectsInvalidInput(t *testing.T) {
	ctx := baseContext(t)
	ctx.BookingEnd = ctx.BookingStart
	_, err := capacity.Resolve(ctx)
	assert.ErrorIs(t, err, capacity.ErrInvalidSpan)

	ctx = baseContext(t)
	ctx.Timezone = "Nowhere/Special"
	_, err = capacity.Resolve(ctx)
	assert.Error(t, err)
}
