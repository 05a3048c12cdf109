package readstore

import (
	"context"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/pgconv"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OperatorReadStore struct {
	pool *pgxpool.Pool
}

func NewOperatorReadStore(pool *pgxpool.Pool) *OperatorReadStore {
	return &OperatorReadStore{pool: pool}
}

const findOperatorByEmailSQL = `
SELECT o.id, o.email, o.role, o.is_active, o.password_hash
FROM operators o
WHERE o.email = $1`

func (r *OperatorReadStore) FindByEmail(ctx context.Context, email string) (*queries.OperatorView, string, error) {
	view := &queries.OperatorView{}
	var hash string
	err := r.pool.QueryRow(ctx, findOperatorByEmailSQL, email).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find operator by email", err)
	}
	return view, hash, nil
}

const findOperatorByIDSQL = `
SELECT o.id, o.email, o.role, o.is_active
FROM operators o
WHERE o.id = $1`

func (r *OperatorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OperatorView, error) {
	view := &queries.OperatorView{}
	err := r.pool.QueryRow(ctx, findOperatorByIDSQL, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operator by id", err)
	}
	return view, nil
}
