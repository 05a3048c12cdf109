//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/capacity"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/pricing"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheetStore struct {
	set   rule.SheetSet
	calls int
}

func (f *fakeSheetStore) FindActiveSet(_ context.Context, _ rule.Kind, _ rule.Hierarchy) (rule.SheetSet, error) {
	f.calls++
	return f.set, nil
}

func (f *fakeSheetStore) FindByID(context.Context, uuid.UUID) (*queries.SheetView, error) {
	panic("not used")
}

func (f *fakeSheetStore) FindByEntity(context.Context, rule.Level, uuid.UUID) ([]*queries.SheetListItem, error) {
	panic("not used")
}

type fakeDefaultsStore struct {
	defaults rule.DefaultSet
}

func (f *fakeDefaultsStore) FindForHierarchy(context.Context, rule.Hierarchy) (rule.DefaultSet, error) {
	return f.defaults, nil
}

type fakeOverrideStore struct {
	overrides []capacity.Override
	from, to  string
}

func (f *fakeOverrideStore) FindBySubLocationSpan(_ context.Context, _ uuid.UUID, fromDate, toDate string) ([]capacity.Override, error) {
	f.from, f.to = fromDate, toDate
	return f.overrides, nil
}

func (f *fakeOverrideStore) FindBySubLocation(context.Context, uuid.UUID) ([]*queries.OverrideView, error) {
	panic("not used")
}

type memoryQuoteCache struct {
	stored *pricing.Quote
	hits   int
}

func (c *memoryQuoteCache) Get(context.Context, queries.QuoteParams) (*pricing.Quote, bool) {
	if c.stored != nil {
		c.hits++
		return c.stored, true
	}
	return nil, false
}

func (c *memoryQuoteCache) Set(_ context.Context, _ queries.QuoteParams, quote *pricing.Quote) {
	c.stored = quote
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testParams() queries.QuoteParams {
	return queries.QuoteParams{
		CustomerID:    uuid.New(),
		LocationID:    uuid.New(),
		SubLocationID: uuid.New(),
		BookingStart:  time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC), // 09:00 New York
		BookingEnd:    time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC),
		Timezone:      "America/New_York",
	}
}

func TestPriceQuoteQueries_Quote(t *testing.T) {
	ctx := context.Background()
	cfg := config.QuoteConfig{MaxSpan: 2160 * time.Hour}

	t.Run("resolves a quote from active sheets", func(t *testing.T) {
		sheet := builder.NewSheetBuilder().
			WithAbsoluteWindow("09:00", "17:00", 65).
			Build()
		store := &fakeSheetStore{set: rule.SheetSet{Location: []rule.Sheet{sheet}}}
		uc := queries.NewPriceQuoteQueries(store, &fakeDefaultsStore{}, nil, cfg, testLogger())

		quote, err := uc.Quote(ctx, testParams())
		require.NoError(t, err)
		assert.Equal(t, 3.0, quote.Summary.TotalHours)
		assert.Equal(t, 195.0, quote.Summary.TotalPrice)
		assert.Len(t, quote.DecisionLog, 3)
	})

	t.Run("span and timezone validation runs before any store access", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*queries.QuoteParams)
			errIs  error
		}{
			{
				name: "end before start",
				mutate: func(p *queries.QuoteParams) {
					p.BookingEnd = p.BookingStart.Add(-time.Hour)
				},
				errIs: errs.ErrInvalidBookingSpan,
			},
			{
				name: "zero-length span",
				mutate: func(p *queries.QuoteParams) {
					p.BookingEnd = p.BookingStart
				},
				errIs: errs.ErrInvalidBookingSpan,
			},
			{
				name: "span beyond the configured maximum",
				mutate: func(p *queries.QuoteParams) {
					p.BookingEnd = p.BookingStart.Add(2161 * time.Hour)
				},
				errIs: queries.ErrSpanTooLong,
			},
			{
				name: "unknown timezone",
				mutate: func(p *queries.QuoteParams) {
					p.Timezone = "Mars/Olympus"
				},
				errIs: errs.ErrUnknownTimezone,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				store := &fakeSheetStore{}
				uc := queries.NewPriceQuoteQueries(store, &fakeDefaultsStore{}, nil, cfg, testLogger())

				params := testParams()
				tc.mutate(&params)

				_, err := uc.Quote(ctx, params)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Zero(t, store.calls)
			})
		}
	})

	t.Run("second identical request is served from the cache", func(t *testing.T) {
		sheet := builder.NewSheetBuilder().
			WithAbsoluteWindow("09:00", "17:00", 65).
			Build()
		store := &fakeSheetStore{set: rule.SheetSet{Location: []rule.Sheet{sheet}}}
		cache := &memoryQuoteCache{}
		uc := queries.NewPriceQuoteQueries(store, &fakeDefaultsStore{}, cache, cfg, testLogger())

		params := testParams()
		first, err := uc.Quote(ctx, params)
		require.NoError(t, err)
		require.Equal(t, 1, store.calls)

		second, err := uc.Quote(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 1, store.calls, "cache hit must not reload sheets")
		assert.Equal(t, 1, cache.hits)
		assert.Equal(t, first.Summary, second.Summary)
	})

	t.Run("no sheets at all still yields a quote via the cascade", func(t *testing.T) {
		uc := queries.NewPriceQuoteQueries(&fakeSheetStore{}, &fakeDefaultsStore{}, nil, cfg, testLogger())

		quote, err := uc.Quote(ctx, testParams())
		require.NoError(t, err)
		require.Len(t, quote.DecisionLog, 3)
		for _, d := range quote.DecisionLog {
			assert.Equal(t, rule.SourceSystemDefault, d.Source)
		}
	})
}

func TestCapacityQuoteQueries_Quote(t *testing.T) {
	ctx := context.Background()
	cfg := config.QuoteConfig{MaxSpan: 2160 * time.Hour}

	t.Run("hourly overrides win over everything", func(t *testing.T) {
		params := testParams()
		overrides := &fakeOverrideStore{
			overrides: []capacity.Override{
				{Date: "2025-06-10", Hour: 9, Max: fptr(0)},
			},
		}
		uc := queries.NewCapacityQuoteQueries(&fakeSheetStore{}, &fakeDefaultsStore{}, overrides, cfg, testLogger())

		quote, err := uc.Quote(ctx, params)
		require.NoError(t, err)
		require.Len(t, quote.DecisionLog, 3)
		assert.Equal(t, rule.SourceOverride, quote.DecisionLog[0].Source)
		assert.Equal(t, 0.0, quote.DecisionLog[0].Capacity.Max)
		assert.Equal(t, rule.SourceSystemDefault, quote.DecisionLog[1].Source)
	})

	t.Run("override lookup widens the date span by a day each side", func(t *testing.T) {
		overrides := &fakeOverrideStore{}
		uc := queries.NewCapacityQuoteQueries(&fakeSheetStore{}, &fakeDefaultsStore{}, overrides, cfg, testLogger())

		_, err := uc.Quote(ctx, testParams())
		require.NoError(t, err)
		assert.Equal(t, "2025-06-09", overrides.from)
		assert.Equal(t, "2025-06-11", overrides.to)
	})

	t.Run("system default bounds apply when nothing is configured", func(t *testing.T) {
		uc := queries.NewCapacityQuoteQueries(&fakeSheetStore{}, &fakeDefaultsStore{}, &fakeOverrideStore{}, cfg, testLogger())

		quote, err := uc.Quote(ctx, testParams())
		require.NoError(t, err)
		require.NotEmpty(t, quote.Segments)
		assert.Equal(t, rule.SystemDefaultCapacity, quote.DecisionLog[0].Capacity)
	})
}

func fptr(v float64) *float64 { return &v }
