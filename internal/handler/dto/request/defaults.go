package request

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"

	"github.com/google/uuid"
)

type SetDefaultsRequest struct {
	Rate     *float64        `json:"rate"`
	Capacity *CapacityValues `json:"capacity"`
}

func (r *SetDefaultsRequest) ToRecord(level string, entityID uuid.UUID) commands.DefaultsRecord {
	return commands.DefaultsRecord{
		Level:    rule.Level(level),
		EntityID: entityID,
		Rate:     r.Rate,
		Capacity: r.Capacity.toBundle(),
	}
}
