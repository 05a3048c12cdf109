package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"

	"github.com/google/uuid"
)

// OverrideValues is one set of capacity dimensions applied to an hour or,
// for the daily form, to all 24 hours of a date.
type OverrideValues struct {
	Min       *float64
	Max       *float64
	Default   *float64
	Allocated *float64
}

func (v OverrideValues) isEmpty() bool {
	return v.Min == nil && v.Max == nil && v.Default == nil && v.Allocated == nil
}

type OverrideCommands interface {
	UpsertHour(ctx context.Context, subLocationID uuid.UUID, date string, hour int, values OverrideValues) error
	// UpsertDay writes 24 identical hourly overrides for one date; the
	// read side later relabels them as a daily override.
	UpsertDay(ctx context.Context, subLocationID uuid.UUID, date string, values OverrideValues) error
	Delete(ctx context.Context, subLocationID uuid.UUID, date string, hour int) error
}

type overrideCommandsImpl struct {
	repo   OverrideRepository
	cache  QuoteCacheInvalidator
	logger *slog.Logger
}

func NewOverrideCommands(repo OverrideRepository, cache QuoteCacheInvalidator, logger *slog.Logger) OverrideCommands {
	return &overrideCommandsImpl{repo: repo, cache: cache, logger: logger}
}

func (c *overrideCommandsImpl) UpsertHour(ctx context.Context, subLocationID uuid.UUID, date string, hour int, values OverrideValues) error {
	if err := validateOverride(date, hour, values); err != nil {
		return err
	}
	err := c.repo.Upsert(ctx, OverrideRecord{
		SubLocationID: subLocationID,
		Date:          date,
		Hour:          hour,
		Min:           values.Min,
		Max:           values.Max,
		Default:       values.Default,
		Allocated:     values.Allocated,
	})
	if err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *overrideCommandsImpl) UpsertDay(ctx context.Context, subLocationID uuid.UUID, date string, values OverrideValues) error {
	if err := validateOverride(date, 0, values); err != nil {
		return err
	}
	records := make([]OverrideRecord, 0, 24)
	for hour := 0; hour < 24; hour++ {
		records = append(records, OverrideRecord{
			SubLocationID: subLocationID,
			Date:          date,
			Hour:          hour,
			Min:           values.Min,
			Max:           values.Max,
			Default:       values.Default,
			Allocated:     values.Allocated,
		})
	}
	if err := c.repo.UpsertMany(ctx, records); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *overrideCommandsImpl) Delete(ctx context.Context, subLocationID uuid.UUID, date string, hour int) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errs.Mark(err, errs.ErrInvalidOverride)
	}
	found, err := c.repo.Delete(ctx, subLocationID, date, hour)
	if err != nil {
		return err
	}
	if !found {
		return errs.ErrOverrideNotFound
	}
	c.invalidate(ctx)
	return nil
}

func (c *overrideCommandsImpl) invalidate(ctx context.Context) {
	if c.cache != nil {
		c.cache.Invalidate(ctx)
	}
}

func validateOverride(date string, hour int, values OverrideValues) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errs.Mark(err, errs.ErrInvalidOverride)
	}
	if hour < 0 || hour > 23 {
		return errs.ErrInvalidOverride
	}
	if values.isEmpty() {
		return errs.ErrInvalidOverride
	}
	for _, v := range []*float64{values.Min, values.Max, values.Default, values.Allocated} {
		if v != nil && *v < 0 {
			return errs.ErrInvalidOverride
		}
	}
	if values.Min != nil && values.Max != nil && *values.Min > *values.Max {
		return errs.ErrInvalidOverride
	}
	return nil
}
