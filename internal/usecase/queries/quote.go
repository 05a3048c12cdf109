package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/capacity"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/pricing"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSpanTooLong = errs.New("booking span exceeds the configured maximum")
)

type QuoteParams struct {
	CustomerID     uuid.UUID  `json:"customer_id"`
	LocationID     uuid.UUID  `json:"location_id"`
	SubLocationID  uuid.UUID  `json:"sublocation_id"`
	EventID        *uuid.UUID `json:"event_id,omitempty"`
	BookingStart   time.Time  `json:"booking_start"`
	BookingEnd     time.Time  `json:"booking_end"`
	Timezone       string     `json:"timezone"`
	IsEventBooking bool       `json:"is_event_booking"`
}

func (p QuoteParams) hierarchy() rule.Hierarchy {
	return rule.Hierarchy{
		CustomerID:    p.CustomerID,
		LocationID:    p.LocationID,
		SubLocationID: p.SubLocationID,
		EventID:       p.EventID,
	}
}

// PriceQuoteCache is the read-through cache port for price quotes. A nil
// implementation behaves as a permanent miss; the engine result is identical
// either way.
type PriceQuoteCache interface {
	Get(ctx context.Context, params QuoteParams) (*pricing.Quote, bool)
	Set(ctx context.Context, params QuoteParams, quote *pricing.Quote)
}

type PriceQuoteQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*pricing.Quote, error)
}

type priceQuoteQueriesImpl struct {
	sheets   RuleSheetReadStore
	defaults DefaultsReadStore
	cache    PriceQuoteCache
	cfg      config.QuoteConfig
	logger   *slog.Logger
}

func NewPriceQuoteQueries(
	sheets RuleSheetReadStore,
	defaults DefaultsReadStore,
	cache PriceQuoteCache,
	cfg config.QuoteConfig,
	logger *slog.Logger,
) PriceQuoteQueries {
	return &priceQuoteQueriesImpl{
		sheets:   sheets,
		defaults: defaults,
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
	}
}

func (q *priceQuoteQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*pricing.Quote, error) {
	if err := validateSpan(params, q.cfg); err != nil {
		return nil, err
	}

	if q.cache != nil {
		if quote, ok := q.cache.Get(ctx, params); ok {
			return quote, nil
		}
	}

	sheets, err := q.sheets.FindActiveSet(ctx, rule.KindPrice, params.hierarchy())
	if err != nil {
		return nil, errs.Wrap(err, "load price sheets")
	}
	defaults, err := q.defaults.FindForHierarchy(ctx, params.hierarchy())
	if err != nil {
		return nil, errs.Wrap(err, "load entity defaults")
	}

	quote, err := pricing.Resolve(pricing.Context{
		BookingStart:   params.BookingStart,
		BookingEnd:     params.BookingEnd,
		Timezone:       params.Timezone,
		IsEventBooking: params.IsEventBooking,
		Hierarchy:      params.hierarchy(),
		Sheets:         sheets,
		Defaults:       defaults,
	})
	if err != nil {
		return nil, err
	}

	if fallbacks := countSystemDefaults(quote.DecisionLog); fallbacks > 0 {
		// Deliberate always-answer policy: surface likely misconfiguration
		// to operators without refusing the quote.
		q.logger.Warn("price quote fell back to the system default",
			"sublocation_id", params.SubLocationID, "hours", fallbacks)
	}

	if q.cache != nil {
		q.cache.Set(ctx, params, quote)
	}
	return quote, nil
}

func countSystemDefaults(log []pricing.Decision) int {
	n := 0
	for _, d := range log {
		if d.Source == rule.SourceSystemDefault {
			n++
		}
	}
	return n
}

type CapacityQuoteQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*capacity.Quote, error)
}

type capacityQuoteQueriesImpl struct {
	sheets    RuleSheetReadStore
	defaults  DefaultsReadStore
	overrides OverrideReadStore
	cfg       config.QuoteConfig
	logger    *slog.Logger
}

func NewCapacityQuoteQueries(
	sheets RuleSheetReadStore,
	defaults DefaultsReadStore,
	overrides OverrideReadStore,
	cfg config.QuoteConfig,
	logger *slog.Logger,
) CapacityQuoteQueries {
	return &capacityQuoteQueriesImpl{
		sheets:    sheets,
		defaults:  defaults,
		overrides: overrides,
		cfg:       cfg,
		logger:    logger,
	}
}

func (q *capacityQuoteQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*capacity.Quote, error) {
	if err := validateSpan(params, q.cfg); err != nil {
		return nil, err
	}

	sheets, err := q.sheets.FindActiveSet(ctx, rule.KindCapacity, params.hierarchy())
	if err != nil {
		return nil, errs.Wrap(err, "load capacity sheets")
	}
	defaults, err := q.defaults.FindForHierarchy(ctx, params.hierarchy())
	if err != nil {
		return nil, errs.Wrap(err, "load entity defaults")
	}

	fromDate, toDate, err := localDateSpan(params)
	if err != nil {
		return nil, err
	}
	overrides, err := q.overrides.FindBySubLocationSpan(ctx, params.SubLocationID, fromDate, toDate)
	if err != nil {
		return nil, errs.Wrap(err, "load hourly overrides")
	}

	quote, err := capacity.Resolve(capacity.Context{
		BookingStart: params.BookingStart,
		BookingEnd:   params.BookingEnd,
		Timezone:     params.Timezone,
		Hierarchy:    params.hierarchy(),
		Sheets:       sheets,
		Defaults:     defaults,
		Overrides:    capacity.NewOverrideTable(overrides),
	})
	if err != nil {
		return nil, err
	}

	if fallbacks := countCapacitySystemDefaults(quote.DecisionLog); fallbacks > 0 {
		q.logger.Warn("capacity quote fell back to the system default",
			"sublocation_id", params.SubLocationID, "hours", fallbacks)
	}
	return quote, nil
}

func countCapacitySystemDefaults(log []capacity.Decision) int {
	n := 0
	for _, d := range log {
		if d.Source == rule.SourceSystemDefault {
			n++
		}
	}
	return n
}

func validateSpan(params QuoteParams, cfg config.QuoteConfig) error {
	if !params.BookingStart.Before(params.BookingEnd) {
		return errs.ErrInvalidBookingSpan
	}
	if cfg.MaxSpan > 0 && params.BookingEnd.Sub(params.BookingStart) > cfg.MaxSpan {
		return ErrSpanTooLong
	}
	if _, err := time.LoadLocation(params.Timezone); err != nil {
		return errs.Mark(err, errs.ErrUnknownTimezone)
	}
	return nil
}

// localDateSpan widens the booking span by a day on each side so overnight
// bookings still pick up every override they can touch.
func localDateSpan(params QuoteParams) (string, string, error) {
	loc, err := time.LoadLocation(params.Timezone)
	if err != nil {
		return "", "", errs.Mark(err, errs.ErrUnknownTimezone)
	}
	from := params.BookingStart.In(loc).AddDate(0, 0, -1).Format("2006-01-02")
	to := params.BookingEnd.In(loc).AddDate(0, 0, 1).Format("2006-01-02")
	return from, to, nil
}
