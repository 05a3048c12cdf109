package readstore

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DefaultsReadStore struct {
	pool *pgxpool.Pool
}

func NewDefaultsReadStore(pool *pgxpool.Pool) *DefaultsReadStore {
	return &DefaultsReadStore{pool: pool}
}

type defaultsRow struct {
	Level        string
	EntityID     uuid.UUID
	Rate         pgtype.Float8
	CapMin       pgtype.Float8
	CapMax       pgtype.Float8
	CapDefault   pgtype.Float8
	CapAllocated pgtype.Float8
}

const findDefaultsSQL = `
SELECT d.level, d.entity_id, d.rate, d.cap_min, d.cap_max, d.cap_default, d.cap_allocated
FROM entity_defaults d
WHERE (d.level = 'CUSTOMER'    AND d.entity_id = $1)
   OR (d.level = 'LOCATION'    AND d.entity_id = $2)
   OR (d.level = 'SUBLOCATION' AND d.entity_id = $3)
   OR ($4::uuid IS NOT NULL    AND d.level = 'EVENT' AND d.entity_id = $4)`

func (r *DefaultsReadStore) FindForHierarchy(ctx context.Context, h rule.Hierarchy) (rule.DefaultSet, error) {
	rows, err := r.pool.Query(ctx, findDefaultsSQL,
		h.CustomerID, h.LocationID, h.SubLocationID, pgconv.UUIDPtrToPgtype(h.EventID))
	if err != nil {
		return rule.DefaultSet{}, infra.WrapRepoErr("failed to query entity defaults", err)
	}
	defaultRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[defaultsRow])
	if err != nil {
		return rule.DefaultSet{}, infra.WrapRepoErr("failed to collect entity defaults", err)
	}

	var set rule.DefaultSet
	for _, row := range defaultRows {
		def := rule.Defaults{Rate: pgconv.Float64PtrFromPgtype(row.Rate)}
		// Max is the marker column: a configured bundle always sets it.
		if row.CapMax.Valid {
			bundle := bundleFromColumns(row.CapMin, row.CapMax, row.CapDefault, row.CapAllocated)
			def.Capacity = &bundle
		}
		switch rule.Level(row.Level) {
		case rule.LevelCustomer:
			set.Customer = def
		case rule.LevelLocation:
			set.Location = def
		case rule.LevelSubLocation:
			set.SubLocation = def
		case rule.LevelEvent:
			set.Event = def
		}
	}
	return set, nil
}
