package writerepo

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OperatorRepository struct {
	pool *pgxpool.Pool
}

func NewOperatorRepository(pool *pgxpool.Pool) *OperatorRepository {
	return &OperatorRepository{pool: pool}
}

func (r *OperatorRepository) UpdateLastLogin(ctx context.Context, operatorID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE operators SET last_login_at = now() WHERE id = $1`, operatorID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("operator not found", nil, infra.KindNotFound)
	}
	return nil
}
