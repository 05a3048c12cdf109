package queries

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"

	"github.com/google/uuid"
)

type RuleSheetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SheetView, error)
	ListByEntity(ctx context.Context, level string, entityID uuid.UUID) ([]*SheetListItem, error)
}

type ruleSheetQueriesImpl struct {
	store RuleSheetReadStore
}

func NewRuleSheetQueries(store RuleSheetReadStore) RuleSheetQueries {
	return &ruleSheetQueriesImpl{store: store}
}

func (q *ruleSheetQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SheetView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSheetNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *ruleSheetQueriesImpl) ListByEntity(ctx context.Context, level string, entityID uuid.UUID) ([]*SheetListItem, error) {
	l := rule.Level(level)
	if !l.IsValid() {
		return nil, errs.ErrInvalidSheetLevel
	}
	return q.store.FindByEntity(ctx, l, entityID)
}

type OverrideQueries interface {
	// ListBySubLocation groups a sublocation's overrides by local date and
	// relabels a date with 24 identical hourly rows as a daily override.
	ListBySubLocation(ctx context.Context, subLocationID uuid.UUID) ([]*OverrideDayView, error)
}

type overrideQueriesImpl struct {
	store OverrideReadStore
}

func NewOverrideQueries(store OverrideReadStore) OverrideQueries {
	return &overrideQueriesImpl{store: store}
}

func (q *overrideQueriesImpl) ListBySubLocation(ctx context.Context, subLocationID uuid.UUID) ([]*OverrideDayView, error) {
	rows, err := q.store.FindBySubLocation(ctx, subLocationID)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by (date, hour); group preserving that order.
	var days []*OverrideDayView
	byDate := make(map[string]*OverrideDayView)
	for _, row := range rows {
		day, ok := byDate[row.Date]
		if !ok {
			day = &OverrideDayView{Date: row.Date}
			byDate[row.Date] = day
			days = append(days, day)
		}
		day.Hours = append(day.Hours, *row)
	}

	for _, day := range days {
		day.IsDaily = isDailyOverride(day.Hours)
	}
	return days, nil
}

// isDailyOverride reports whether a date carries 24 hourly rows with
// identical values. Display classification only; resolution is unaffected.
func isDailyOverride(hours []OverrideView) bool {
	if len(hours) != 24 {
		return false
	}
	first := hours[0]
	for _, h := range hours[1:] {
		if !floatPtrEq(h.Min, first.Min) ||
			!floatPtrEq(h.Max, first.Max) ||
			!floatPtrEq(h.Default, first.Default) ||
			!floatPtrEq(h.Allocated, first.Allocated) {
			return false
		}
	}
	return true
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
