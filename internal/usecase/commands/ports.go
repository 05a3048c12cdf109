package commands

import (
	"context"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"

	"github.com/google/uuid"
)

// Write-side records prevent dependency on read-side query types.

type SheetRecord struct {
	ID            uuid.UUID
	Kind          rule.Kind
	Name          string
	Level         rule.Level
	EntityID      uuid.UUID
	Type          rule.SheetType
	Priority      int
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Active        bool
	Windows       []WindowRecord
	DateRanges    []DateRangeRecord
	Rate          float64
	Capacity      *rule.CapacityBundle
}

type WindowRecord struct {
	Kind        string // ABSOLUTE | DURATION
	StartTime   string // HH:MM, ABSOLUTE only
	EndTime     string
	StartMinute int // DURATION only
	EndMinute   int
	DaysOfWeek  []int
	Rate        float64
	Capacity    *rule.CapacityBundle
}

type DateRangeRecord struct {
	StartDate time.Time
	EndDate   time.Time
}

type OverrideRecord struct {
	SubLocationID uuid.UUID
	Date          string // local date, 2006-01-02
	Hour          int
	Min           *float64
	Max           *float64
	Default       *float64
	Allocated     *float64
}

type DefaultsRecord struct {
	Level    rule.Level
	EntityID uuid.UUID
	Rate     *float64
	Capacity *rule.CapacityBundle
}

type RuleSheetRepository interface {
	Create(ctx context.Context, sheet SheetRecord) error
	Update(ctx context.Context, sheet SheetRecord) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type OverrideRepository interface {
	Upsert(ctx context.Context, record OverrideRecord) error
	UpsertMany(ctx context.Context, records []OverrideRecord) error
	Delete(ctx context.Context, subLocationID uuid.UUID, date string, hour int) (bool, error)
}

type DefaultsRepository interface {
	Set(ctx context.Context, record DefaultsRecord) error
}

type OperatorRepository interface {
	UpdateLastLogin(ctx context.Context, operatorID uuid.UUID) error
}

// QuoteCacheInvalidator drops cached quotes after any rule-data write.
type QuoteCacheInvalidator interface {
	Invalidate(ctx context.Context)
}
