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

type RuleSheetRepository struct {
	pool *pgxpool.Pool
}

func NewRuleSheetRepository(pool *pgxpool.Pool) *RuleSheetRepository {
	return &RuleSheetRepository{pool: pool}
}

const insertSheetSQL = `
INSERT INTO rule_sheets (
	id, kind, name, level, entity_id, sheet_type, priority,
	effective_from, effective_to, is_active,
	rate, cap_min, cap_max, cap_default, cap_allocated
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

const updateSheetSQL = `
UPDATE rule_sheets SET
	name = $2, level = $3, entity_id = $4, sheet_type = $5, priority = $6,
	effective_from = $7, effective_to = $8, is_active = $9,
	rate = $10, cap_min = $11, cap_max = $12, cap_default = $13, cap_allocated = $14,
	updated_at = now()
WHERE id = $1`

const insertWindowSQL = `
INSERT INTO sheet_windows (
	sheet_id, position, kind, start_time, end_time, start_minute, end_minute,
	days_of_week, rate, cap_min, cap_max, cap_default, cap_allocated
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const insertDateRangeSQL = `
INSERT INTO sheet_date_ranges (sheet_id, start_date, end_date) VALUES ($1, $2, $3)`

func (r *RuleSheetRepository) Create(ctx context.Context, sheet commands.SheetRecord) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertSheetSQL, sheetArgs(sheet, true)...); err != nil {
			return infra.WrapRepoErr("failed to insert rule sheet", err)
		}
		return insertChildren(ctx, tx, sheet)
	})
}

// Update replaces the sheet row and all its windows and date ranges in one
// transaction.
func (r *RuleSheetRepository) Update(ctx context.Context, sheet commands.SheetRecord) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateSheetSQL, sheetArgs(sheet, false)...)
		if err != nil {
			return infra.WrapRepoErr("failed to update rule sheet", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("sheet not found", nil, infra.KindNotFound)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM sheet_windows WHERE sheet_id = $1`, sheet.ID); err != nil {
			return infra.WrapRepoErr("failed to delete stale windows", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM sheet_date_ranges WHERE sheet_id = $1`, sheet.ID); err != nil {
			return infra.WrapRepoErr("failed to delete stale date ranges", err)
		}
		return insertChildren(ctx, tx, sheet)
	})
}

func (r *RuleSheetRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE rule_sheets SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set sheet active flag", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RuleSheetRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rule_sheets WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check sheet existence", err)
	}
	return exists, nil
}

func (r *RuleSheetRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func sheetArgs(sheet commands.SheetRecord, withID bool) []any {
	args := []any{}
	if withID {
		args = append(args, sheet.ID, string(sheet.Kind))
	} else {
		args = append(args, sheet.ID)
	}
	capMin, capMax, capDefault, capAllocated := bundleColumns(sheet.Capacity)
	return append(args,
		sheet.Name, string(sheet.Level), sheet.EntityID, string(sheet.Type), sheet.Priority,
		sheet.EffectiveFrom, pgconv.TimePtrToPgtype(sheet.EffectiveTo), sheet.Active,
		sheet.Rate, capMin, capMax, capDefault, capAllocated,
	)
}

func insertChildren(ctx context.Context, tx pgx.Tx, sheet commands.SheetRecord) error {
	for i, w := range sheet.Windows {
		capMin, capMax, capDefault, capAllocated := bundleColumns(w.Capacity)
		days := make([]int32, len(w.DaysOfWeek))
		for j, d := range w.DaysOfWeek {
			days[j] = int32(d)
		}
		_, err := tx.Exec(ctx, insertWindowSQL,
			sheet.ID, i, w.Kind,
			nullableString(w.StartTime), nullableString(w.EndTime),
			w.StartMinute, w.EndMinute,
			days, w.Rate, capMin, capMax, capDefault, capAllocated)
		if err != nil {
			return infra.WrapRepoErr("failed to insert sheet window", err)
		}
	}
	for _, dr := range sheet.DateRanges {
		if _, err := tx.Exec(ctx, insertDateRangeSQL, sheet.ID, dr.StartDate, dr.EndDate); err != nil {
			return infra.WrapRepoErr("failed to insert sheet date range", err)
		}
	}
	return nil
}
