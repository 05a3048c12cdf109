package writerepo

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"

	"github.com/jackc/pgx/v5/pgtype"
)

func bundleColumns(b *rule.CapacityBundle) (pgtype.Float8, pgtype.Float8, pgtype.Float8, pgtype.Float8) {
	if b == nil {
		return pgtype.Float8{}, pgtype.Float8{}, pgtype.Float8{}, pgtype.Float8{}
	}
	return pgtype.Float8{Float64: b.Min, Valid: true},
		pgtype.Float8{Float64: b.Max, Valid: true},
		pgtype.Float8{Float64: b.Default, Valid: true},
		pgtype.Float8{Float64: b.Allocated, Valid: true}
}

func nullableString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
