package commands

import (
	"context"
	"log/slog"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	windowKindAbsolute = "ABSOLUTE"
	windowKindDuration = "DURATION"
)

type RuleSheetCommands interface {
	Create(ctx context.Context, record SheetRecord) (uuid.UUID, error)
	Update(ctx context.Context, record SheetRecord) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ruleSheetCommandsImpl struct {
	repo   RuleSheetRepository
	cache  QuoteCacheInvalidator
	logger *slog.Logger
}

func NewRuleSheetCommands(repo RuleSheetRepository, cache QuoteCacheInvalidator, logger *slog.Logger) RuleSheetCommands {
	return &ruleSheetCommandsImpl{repo: repo, cache: cache, logger: logger}
}

func (c *ruleSheetCommandsImpl) Create(ctx context.Context, record SheetRecord) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.Active = true
	if err := validateSheet(record); err != nil {
		return uuid.Nil, err
	}
	if err := c.repo.Create(ctx, record); err != nil {
		return uuid.Nil, err
	}
	c.invalidate(ctx)
	return record.ID, nil
}

func (c *ruleSheetCommandsImpl) Update(ctx context.Context, record SheetRecord) error {
	if err := validateSheet(record); err != nil {
		return err
	}
	exists, err := c.repo.Exists(ctx, record.ID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrSheetNotFound
	}
	if err := c.repo.Update(ctx, record); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *ruleSheetCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	found, err := c.repo.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if !found {
		return errs.ErrSheetNotFound
	}
	c.invalidate(ctx)
	return nil
}

func (c *ruleSheetCommandsImpl) invalidate(ctx context.Context) {
	if c.cache != nil {
		c.cache.Invalidate(ctx)
	}
}

// validateSheet is the persistence-boundary validation the resolution engine
// relies on: the matcher itself never defends against malformed clock times
// or unknown levels.
func validateSheet(record SheetRecord) error {
	if !record.Kind.IsValid() {
		return errs.ErrDomainValidation
	}
	if !record.Level.IsValid() {
		return errs.ErrInvalidSheetLevel
	}
	if _, err := rule.ParseSheetType(string(record.Type)); err != nil {
		return errs.Mark(err, errs.ErrInvalidSheetType)
	}
	if record.EffectiveTo != nil && !record.EffectiveFrom.Before(*record.EffectiveTo) {
		return errs.ErrInvalidEffectivity
	}

	switch record.Type {
	case rule.TypeDateBased:
		for _, r := range record.DateRanges {
			if r.EndDate.Before(r.StartDate) {
				return errs.ErrInvalidEffectivity
			}
		}
	case rule.TypeEventBased:
		// Implicit window; nothing to validate beyond the value.
	default:
		for _, w := range record.Windows {
			if err := validateWindow(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateWindow(w WindowRecord) error {
	switch w.Kind {
	case windowKindAbsolute:
		if _, err := rule.ParseClockTime(w.StartTime); err != nil {
			return errs.Mark(err, errs.ErrInvalidWindow)
		}
		if _, err := rule.ParseClockTime(w.EndTime); err != nil {
			return errs.Mark(err, errs.ErrInvalidWindow)
		}
	case windowKindDuration:
		if w.StartMinute < 0 || w.EndMinute <= w.StartMinute {
			return errs.ErrInvalidWindow
		}
	default:
		return errs.ErrInvalidWindow
	}
	for _, d := range w.DaysOfWeek {
		if d < 0 || d > 6 {
			return errs.ErrInvalidWindow
		}
	}
	return nil
}
