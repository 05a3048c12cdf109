package request

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
)

type UpsertHourOverrideRequest struct {
	Date      string   `json:"date" binding:"required"`
	Hour      *int     `json:"hour" binding:"required"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	Default   *float64 `json:"default"`
	Allocated *float64 `json:"allocated"`
}

func (r *UpsertHourOverrideRequest) ToValues() commands.OverrideValues {
	return commands.OverrideValues{
		Min:       r.Min,
		Max:       r.Max,
		Default:   r.Default,
		Allocated: r.Allocated,
	}
}

// UpsertDayOverrideRequest is the bulk form: one value set fanned out to all
// 24 hours of the date.
type UpsertDayOverrideRequest struct {
	Date      string   `json:"date" binding:"required"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	Default   *float64 `json:"default"`
	Allocated *float64 `json:"allocated"`
}

func (r *UpsertDayOverrideRequest) ToValues() commands.OverrideValues {
	return commands.OverrideValues{
		Min:       r.Min,
		Max:       r.Max,
		Default:   r.Default,
		Allocated: r.Allocated,
	}
}
