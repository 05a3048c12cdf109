package writerepo

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/pgconv"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OverrideRepository struct {
	pool *pgxpool.Pool
}

func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{pool: pool}
}

const upsertOverrideSQL = `
INSERT INTO hourly_overrides (
	sublocation_id, local_date, hour, cap_min, cap_max, cap_default, cap_allocated
) VALUES ($1, $2::date, $3, $4, $5, $6, $7)
ON CONFLICT (sublocation_id, local_date, hour) DO UPDATE SET
	cap_min = EXCLUDED.cap_min,
	cap_max = EXCLUDED.cap_max,
	cap_default = EXCLUDED.cap_default,
	cap_allocated = EXCLUDED.cap_allocated,
	updated_at = now()`

func (r *OverrideRepository) Upsert(ctx context.Context, record commands.OverrideRecord) error {
	if _, err := r.pool.Exec(ctx, upsertOverrideSQL, overrideArgs(record)...); err != nil {
		return infra.WrapRepoErr("failed to upsert hourly override", err)
	}
	return nil
}

// UpsertMany writes all rows in one transaction; the daily bulk form depends
// on the 24 rows landing atomically.
func (r *OverrideRepository) UpsertMany(ctx context.Context, records []commands.OverrideRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(upsertOverrideSQL, overrideArgs(record)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to upsert override batch", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit override batch", err)
	}
	return nil
}

func (r *OverrideRepository) Delete(ctx context.Context, subLocationID uuid.UUID, date string, hour int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM hourly_overrides WHERE sublocation_id = $1 AND local_date = $2::date AND hour = $3`,
		subLocationID, date, hour)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete hourly override", err)
	}
	return tag.RowsAffected() > 0, nil
}

func overrideArgs(record commands.OverrideRecord) []any {
	return []any{
		record.SubLocationID, record.Date, record.Hour,
		pgconv.Float64PtrToPgtype(record.Min),
		pgconv.Float64PtrToPgtype(record.Max),
		pgconv.Float64PtrToPgtype(record.Default),
		pgconv.Float64PtrToPgtype(record.Allocated),
	}
}
