package queries

import (
	"context"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/capacity"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SheetView struct {
	ID            uuid.UUID       `json:"id"`
	Kind          string          `json:"kind"`
	Name          string          `json:"name"`
	Level         string          `json:"level"`
	EntityID      uuid.UUID       `json:"entity_id"`
	Type          string          `json:"type"`
	Priority      int32           `json:"priority"`
	EffectiveFrom time.Time       `json:"effective_from"`
	EffectiveTo   *time.Time      `json:"effective_to,omitempty"`
	IsActive      bool            `json:"is_active"`
	Windows       []WindowView    `json:"windows"`
	DateRanges    []DateRangeView `json:"date_ranges,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type WindowView struct {
	Kind        string               `json:"kind"` // ABSOLUTE | DURATION
	StartTime   *string              `json:"start_time,omitempty"`
	EndTime     *string              `json:"end_time,omitempty"`
	StartMinute *int32               `json:"start_minute,omitempty"`
	EndMinute   *int32               `json:"end_minute,omitempty"`
	DaysOfWeek  []int32              `json:"days_of_week,omitempty"`
	Rate        float64              `json:"rate"`
	Capacity    *rule.CapacityBundle `json:"capacity,omitempty"`
}

type DateRangeView struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type SheetListItem struct {
	ID       uuid.UUID `json:"id"`
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	Level    string    `json:"level"`
	Type     string    `json:"type"`
	Priority int32     `json:"priority"`
	IsActive bool      `json:"is_active"`
}

type OverrideView struct {
	SubLocationID uuid.UUID `json:"sublocation_id"`
	Date          string    `json:"date"`
	Hour          int32     `json:"hour"`
	Min           *float64  `json:"min,omitempty"`
	Max           *float64  `json:"max,omitempty"`
	Default       *float64  `json:"default,omitempty"`
	Allocated     *float64  `json:"allocated,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OverrideDayView groups one local date's overrides. IsDaily marks 24
// identical hourly rows; the classification is display-only and never
// changes resolution behavior.
type OverrideDayView struct {
	Date    string         `json:"date"`
	IsDaily bool           `json:"is_daily"`
	Hours   []OverrideView `json:"hours"`
}

type OperatorView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Read store ports implemented by internal/infra/readstore.

type RuleSheetReadStore interface {
	// FindActiveSet loads every active sheet of one kind across the
	// booking's hierarchy, already converted to engine form.
	FindActiveSet(ctx context.Context, kind rule.Kind, h rule.Hierarchy) (rule.SheetSet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SheetView, error)
	FindByEntity(ctx context.Context, level rule.Level, entityID uuid.UUID) ([]*SheetListItem, error)
}

type DefaultsReadStore interface {
	FindForHierarchy(ctx context.Context, h rule.Hierarchy) (rule.DefaultSet, error)
}

type OverrideReadStore interface {
	// FindBySubLocationSpan returns overrides touching [fromDate, toDate]
	// (local dates, inclusive) in engine form.
	FindBySubLocationSpan(ctx context.Context, subLocationID uuid.UUID, fromDate, toDate string) ([]capacity.Override, error)
	FindBySubLocation(ctx context.Context, subLocationID uuid.UUID) ([]*OverrideView, error)
}

type OperatorReadStore interface {
	FindByEmail(ctx context.Context, email string) (*OperatorView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
}
