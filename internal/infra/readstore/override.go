package readstore

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/capacity"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/pgconv"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OverrideReadStore struct {
	pool *pgxpool.Pool
}

func NewOverrideReadStore(pool *pgxpool.Pool) *OverrideReadStore {
	return &OverrideReadStore{pool: pool}
}

type overrideRow struct {
	SubLocationID uuid.UUID
	Date          string
	Hour          int32
	Min           pgtype.Float8
	Max           pgtype.Float8
	Default       pgtype.Float8
	Allocated     pgtype.Float8
	UpdatedAt     pgtype.Timestamptz
}

const findOverridesBySpanSQL = `
SELECT o.sublocation_id, to_char(o.local_date, 'YYYY-MM-DD'), o.hour,
       o.cap_min, o.cap_max, o.cap_default, o.cap_allocated, o.updated_at
FROM hourly_overrides o
WHERE o.sublocation_id = $1
  AND o.local_date BETWEEN $2::date AND $3::date
ORDER BY o.local_date, o.hour`

func (r *OverrideReadStore) FindBySubLocationSpan(ctx context.Context, subLocationID uuid.UUID, fromDate, toDate string) ([]capacity.Override, error) {
	rows, err := r.pool.Query(ctx, findOverridesBySpanSQL, subLocationID, fromDate, toDate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hourly overrides", err)
	}
	overrideRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[overrideRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect hourly overrides", err)
	}

	result := make([]capacity.Override, len(overrideRows))
	for i, row := range overrideRows {
		result[i] = capacity.Override{
			Date:      row.Date,
			Hour:      int(row.Hour),
			Min:       pgconv.Float64PtrFromPgtype(row.Min),
			Max:       pgconv.Float64PtrFromPgtype(row.Max),
			Default:   pgconv.Float64PtrFromPgtype(row.Default),
			Allocated: pgconv.Float64PtrFromPgtype(row.Allocated),
		}
	}
	return result, nil
}

const findOverridesBySubLocationSQL = `
SELECT o.sublocation_id, to_char(o.local_date, 'YYYY-MM-DD'), o.hour,
       o.cap_min, o.cap_max, o.cap_default, o.cap_allocated, o.updated_at
FROM hourly_overrides o
WHERE o.sublocation_id = $1
ORDER BY o.local_date, o.hour`

func (r *OverrideReadStore) FindBySubLocation(ctx context.Context, subLocationID uuid.UUID) ([]*queries.OverrideView, error) {
	rows, err := r.pool.Query(ctx, findOverridesBySubLocationSQL, subLocationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sublocation overrides", err)
	}
	overrideRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[overrideRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect sublocation overrides", err)
	}

	result := make([]*queries.OverrideView, len(overrideRows))
	for i, row := range overrideRows {
		result[i] = &queries.OverrideView{
			SubLocationID: row.SubLocationID,
			Date:          row.Date,
			Hour:          row.Hour,
			Min:           pgconv.Float64PtrFromPgtype(row.Min),
			Max:           pgconv.Float64PtrFromPgtype(row.Max),
			Default:       pgconv.Float64PtrFromPgtype(row.Default),
			Allocated:     pgconv.Float64PtrFromPgtype(row.Allocated),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
