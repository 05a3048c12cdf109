package request

import (
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"

	"github.com/google/uuid"
)

type WindowRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=ABSOLUTE DURATION"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	StartMinute int             `json:"start_minute"`
	EndMinute   int             `json:"end_minute"`
	DaysOfWeek  []int           `json:"days_of_week"`
	Rate        float64         `json:"rate"`
	Capacity    *CapacityValues `json:"capacity"`
}

type DateRangeRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type CapacityValues struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Default   float64 `json:"default"`
	Allocated float64 `json:"allocated"`
}

func (v *CapacityValues) toBundle() *rule.CapacityBundle {
	if v == nil {
		return nil
	}
	return &rule.CapacityBundle{
		Min:       v.Min,
		Max:       v.Max,
		Default:   v.Default,
		Allocated: v.Allocated,
	}
}

type CreateSheetRequest struct {
	Kind          string             `json:"kind" binding:"required,oneof=PRICE CAPACITY"`
	Name          string             `json:"name" binding:"required"`
	Level         string             `json:"level" binding:"required"`
	EntityID      uuid.UUID          `json:"entity_id" binding:"required"`
	Type          string             `json:"type" binding:"required"`
	Priority      int                `json:"priority"`
	EffectiveFrom time.Time          `json:"effective_from" binding:"required"`
	EffectiveTo   *time.Time         `json:"effective_to"`
	Windows       []WindowRequest    `json:"windows"`
	DateRanges    []DateRangeRequest `json:"date_ranges"`
	Rate          float64            `json:"rate"`
	Capacity      *CapacityValues    `json:"capacity"`
}

func (r *CreateSheetRequest) ToRecord() commands.SheetRecord {
	record := commands.SheetRecord{
		Kind:          rule.Kind(r.Kind),
		Name:          r.Name,
		Level:         rule.Level(r.Level),
		EntityID:      r.EntityID,
		Type:          rule.SheetType(r.Type),
		Priority:      r.Priority,
		EffectiveFrom: r.EffectiveFrom,
		EffectiveTo:   r.EffectiveTo,
		Rate:          r.Rate,
		Capacity:      r.Capacity.toBundle(),
	}
	for _, w := range r.Windows {
		record.Windows = append(record.Windows, commands.WindowRecord{
			Kind:        w.Kind,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			StartMinute: w.StartMinute,
			EndMinute:   w.EndMinute,
			DaysOfWeek:  w.DaysOfWeek,
			Rate:        w.Rate,
			Capacity:    w.Capacity.toBundle(),
		})
	}
	for _, dr := range r.DateRanges {
		record.DateRanges = append(record.DateRanges, commands.DateRangeRecord{
			StartDate: dr.StartDate,
			EndDate:   dr.EndDate,
		})
	}
	return record
}

type UpdateSheetRequest struct {
	CreateSheetRequest
	IsActive bool `json:"is_active"`
}

func (r *UpdateSheetRequest) ToRecord(id uuid.UUID) commands.SheetRecord {
	record := r.CreateSheetRequest.ToRecord()
	record.ID = id
	record.Active = r.IsActive
	return record
}
