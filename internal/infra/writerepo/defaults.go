package writerepo

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/pgconv"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DefaultsRepository struct {
	pool *pgxpool.Pool
}

func NewDefaultsRepository(pool *pgxpool.Pool) *DefaultsRepository {
	return &DefaultsRepository{pool: pool}
}

const setDefaultsSQL = `
INSERT INTO entity_defaults (level, entity_id, rate, cap_min, cap_max, cap_default, cap_allocated)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (level, entity_id) DO UPDATE SET
	rate = EXCLUDED.rate,
	cap_min = EXCLUDED.cap_min,
	cap_max = EXCLUDED.cap_max,
	cap_default = EXCLUDED.cap_default,
	cap_allocated = EXCLUDED.cap_allocated,
	updated_at = now()`

func (r *DefaultsRepository) Set(ctx context.Context, record commands.DefaultsRecord) error {
	capMin, capMax, capDefault, capAllocated := bundleColumns(record.Capacity)
	_, err := r.pool.Exec(ctx, setDefaultsSQL,
		string(record.Level), record.EntityID,
		pgconv.Float64PtrToPgtype(record.Rate),
		capMin, capMax, capDefault, capAllocated)
	if err != nil {
		return infra.WrapRepoErr("failed to set entity defaults", err)
	}
	return nil
}
