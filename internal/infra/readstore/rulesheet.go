package readstore

import (
	"context"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/pgconv"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

const windowKindAbsolute = "ABSOLUTE"

type RuleSheetReadStore struct {
	pool *pgxpool.Pool
}

func NewRuleSheetReadStore(pool *pgxpool.Pool) *RuleSheetReadStore {
	return &RuleSheetReadStore{pool: pool}
}

type sheetRow struct {
	ID            uuid.UUID
	Kind          string
	Name          string
	Level         string
	EntityID      uuid.UUID
	Type          string
	Priority      int32
	EffectiveFrom time.Time
	EffectiveTo   pgtype.Timestamptz
	IsActive      bool
	Rate          float64
	CapMin        pgtype.Float8
	CapMax        pgtype.Float8
	CapDefault    pgtype.Float8
	CapAllocated  pgtype.Float8
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type windowRow struct {
	SheetID      uuid.UUID
	Kind         string
	StartTime    pgtype.Text
	EndTime      pgtype.Text
	StartMinute  pgtype.Int4
	EndMinute    pgtype.Int4
	DaysOfWeek   []int32
	Rate         float64
	CapMin       pgtype.Float8
	CapMax       pgtype.Float8
	CapDefault   pgtype.Float8
	CapAllocated pgtype.Float8
}

type dateRangeRow struct {
	SheetID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

const sheetColumns = `
	s.id, s.kind, s.name, s.level, s.entity_id, s.sheet_type, s.priority,
	s.effective_from, s.effective_to, s.is_active,
	s.rate, s.cap_min, s.cap_max, s.cap_default, s.cap_allocated,
	s.created_at, s.updated_at`

const findActiveSetSQL = `
SELECT` + sheetColumns + `
FROM rule_sheets s
WHERE s.kind = $1
  AND s.is_active
  AND (
       (s.level = 'CUSTOMER'    AND s.entity_id = $2)
    OR (s.level = 'LOCATION'    AND s.entity_id = $3)
    OR (s.level = 'SUBLOCATION' AND s.entity_id = $4)
    OR (s.level = 'SURGE'       AND s.entity_id IN ($2, $3, $4))
    OR ($5::uuid IS NOT NULL    AND s.level IN ('EVENT', 'SURGE') AND s.entity_id = $5)
  )
ORDER BY s.created_at, s.id`

const findWindowsSQL = `
SELECT w.sheet_id, w.kind, w.start_time, w.end_time, w.start_minute, w.end_minute,
       w.days_of_week, w.rate, w.cap_min, w.cap_max, w.cap_default, w.cap_allocated
FROM sheet_windows w
WHERE w.sheet_id = ANY($1)
ORDER BY w.sheet_id, w.position`

const findDateRangesSQL = `
SELECT r.sheet_id, r.start_date, r.end_date
FROM sheet_date_ranges r
WHERE r.sheet_id = ANY($1)
ORDER BY r.sheet_id, r.start_date`

func (r *RuleSheetReadStore) FindActiveSet(ctx context.Context, kind rule.Kind, h rule.Hierarchy) (rule.SheetSet, error) {
	rows, err := r.pool.Query(ctx, findActiveSetSQL,
		string(kind), h.CustomerID, h.LocationID, h.SubLocationID,
		pgconv.UUIDPtrToPgtype(h.EventID))
	if err != nil {
		return rule.SheetSet{}, infra.WrapRepoErr("failed to query active sheets", err)
	}
	sheetRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[sheetRow])
	if err != nil {
		return rule.SheetSet{}, infra.WrapRepoErr("failed to collect active sheets", err)
	}
	if len(sheetRows) == 0 {
		return rule.SheetSet{}, nil
	}

	windows, ranges, err := r.loadChildren(ctx, sheetIDs(sheetRows))
	if err != nil {
		return rule.SheetSet{}, err
	}

	var set rule.SheetSet
	for i := range sheetRows {
		sheet, err := toDomainSheet(&sheetRows[i], windows[sheetRows[i].ID], ranges[sheetRows[i].ID])
		if err != nil {
			return rule.SheetSet{}, infra.WrapRepoErr("failed to build sheet from row", err)
		}
		switch sheet.Level {
		case rule.LevelCustomer:
			set.Customer = append(set.Customer, sheet)
		case rule.LevelLocation:
			set.Location = append(set.Location, sheet)
		case rule.LevelSubLocation:
			set.SubLocation = append(set.SubLocation, sheet)
		case rule.LevelEvent:
			set.Event = append(set.Event, sheet)
		case rule.LevelSurge:
			set.Surge = append(set.Surge, sheet)
		}
	}
	return set, nil
}

const findByIDSQL = `
SELECT` + sheetColumns + `
FROM rule_sheets s
WHERE s.id = $1`

func (r *RuleSheetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SheetView, error) {
	rows, err := r.pool.Query(ctx, findByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sheet by id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[sheetRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sheet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to collect sheet by id", err)
	}

	windows, ranges, err := r.loadChildren(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}
	return toSheetView(&row, windows[row.ID], ranges[row.ID])
}

const findByEntitySQL = `
SELECT s.id, s.kind, s.name, s.level, s.sheet_type, s.priority, s.is_active
FROM rule_sheets s
WHERE s.level = $1 AND s.entity_id = $2
ORDER BY s.priority DESC, s.created_at`

func (r *RuleSheetReadStore) FindByEntity(ctx context.Context, level rule.Level, entityID uuid.UUID) ([]*queries.SheetListItem, error) {
	rows, err := r.pool.Query(ctx, findByEntitySQL, string(level), entityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sheets by entity", err)
	}
	defer rows.Close()

	var result []*queries.SheetListItem
	for rows.Next() {
		item := &queries.SheetListItem{}
		if err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.Level,
			&item.Type, &item.Priority, &item.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sheet list item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sheets by entity", err)
	}
	return result, nil
}

func (r *RuleSheetReadStore) loadChildren(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]windowRow, map[uuid.UUID][]dateRangeRow, error) {
	wrows, err := r.pool.Query(ctx, findWindowsSQL, ids)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to query sheet windows", err)
	}
	windowRows, err := pgx.CollectRows(wrows, pgx.RowToStructByPos[windowRow])
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to collect sheet windows", err)
	}

	rrows, err := r.pool.Query(ctx, findDateRangesSQL, ids)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to query sheet date ranges", err)
	}
	rangeRows, err := pgx.CollectRows(rrows, pgx.RowToStructByPos[dateRangeRow])
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to collect sheet date ranges", err)
	}

	windows := make(map[uuid.UUID][]windowRow)
	for _, w := range windowRows {
		windows[w.SheetID] = append(windows[w.SheetID], w)
	}
	ranges := make(map[uuid.UUID][]dateRangeRow)
	for _, dr := range rangeRows {
		ranges[dr.SheetID] = append(ranges[dr.SheetID], dr)
	}
	return windows, ranges, nil
}

func sheetIDs(rows []sheetRow) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	return ids
}

func toDomainSheet(row *sheetRow, windows []windowRow, ranges []dateRangeRow) (rule.Sheet, error) {
	sheetType, err := rule.ParseSheetType(row.Type)
	if err != nil {
		return rule.Sheet{}, err
	}

	sheet := rule.Sheet{
		ID:            row.ID,
		Name:          row.Name,
		Level:         rule.Level(row.Level),
		EntityID:      row.EntityID,
		Type:          sheetType,
		Priority:      int(row.Priority),
		EffectiveFrom: row.EffectiveFrom,
		EffectiveTo:   pgconv.TimePtrFromPgtype(row.EffectiveTo),
		Active:        row.IsActive,
		Val: rule.WindowValue{
			Rate:     row.Rate,
			Capacity: bundleFromColumns(row.CapMin, row.CapMax, row.CapDefault, row.CapAllocated),
		},
	}

	for _, w := range windows {
		win, err := toDomainWindow(w)
		if err != nil {
			return rule.Sheet{}, err
		}
		sheet.Windows = append(sheet.Windows, win)
	}
	for _, dr := range ranges {
		sheet.DateRanges = append(sheet.DateRanges, rule.DateRange{Start: dr.StartDate, End: dr.EndDate})
	}
	return sheet, nil
}

func toDomainWindow(row windowRow) (rule.Window, error) {
	days := rule.NewDaySet()
	for _, d := range row.DaysOfWeek {
		days |= rule.NewDaySet(time.Weekday(d))
	}
	val := rule.WindowValue{
		Rate:     row.Rate,
		Capacity: bundleFromColumns(row.CapMin, row.CapMax, row.CapDefault, row.CapAllocated),
	}

	if row.Kind == windowKindAbsolute {
		start, err := rule.ParseClockTime(row.StartTime.String)
		if err != nil {
			return nil, err
		}
		end, err := rule.ParseClockTime(row.EndTime.String)
		if err != nil {
			return nil, err
		}
		return rule.AbsoluteWindow{Start: start, End: end, Days: days, Val: val}, nil
	}
	return rule.DurationWindow{
		StartMinute: int(row.StartMinute.Int32),
		EndMinute:   int(row.EndMinute.Int32),
		Days:        days,
		Val:         val,
	}, nil
}

func bundleFromColumns(minVal, maxVal, def, alloc pgtype.Float8) rule.CapacityBundle {
	return rule.CapacityBundle{
		Min:       minVal.Float64,
		Max:       maxVal.Float64,
		Default:   def.Float64,
		Allocated: alloc.Float64,
	}
}

func toSheetView(row *sheetRow, windows []windowRow, ranges []dateRangeRow) (*queries.SheetView, error) {
	view := &queries.SheetView{}
	// Copies the identically named scalar columns; the rest is filled below.
	if err := copier.Copy(view, row); err != nil {
		return nil, infra.WrapRepoErr("failed to map sheet row", err)
	}
	view.EffectiveTo = pgconv.TimePtrFromPgtype(row.EffectiveTo)
	view.CreatedAt = pgconv.TimeFromPgtype(row.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(row.UpdatedAt)

	for _, w := range windows {
		view.Windows = append(view.Windows, toWindowView(w))
	}
	for _, dr := range ranges {
		view.DateRanges = append(view.DateRanges, queries.DateRangeView{
			StartDate: dr.StartDate,
			EndDate:   dr.EndDate,
		})
	}
	return view, nil
}

func toWindowView(row windowRow) queries.WindowView {
	view := queries.WindowView{
		Kind:       row.Kind,
		DaysOfWeek: row.DaysOfWeek,
		Rate:       row.Rate,
	}
	if row.Kind == windowKindAbsolute {
		view.StartTime = pgconv.StringPtrFromPgtype(row.StartTime)
		view.EndTime = pgconv.StringPtrFromPgtype(row.EndTime)
	} else {
		view.StartMinute = pgconv.Int32PtrFromPgtype(row.StartMinute)
		view.EndMinute = pgconv.Int32PtrFromPgtype(row.EndMinute)
	}
	if row.CapMax.Valid {
		bundle := bundleFromColumns(row.CapMin, row.CapMax, row.CapDefault, row.CapAllocated)
		view.Capacity = &bundle
	}
	return view
}
