//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/capacity"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSheetStore struct {
	view    *queries.SheetView
	viewErr error
	items   []*queries.SheetListItem
}

func (s *stubSheetStore) FindActiveSet(context.Context, rule.Kind, rule.Hierarchy) (rule.SheetSet, error) {
	panic("not used")
}

func (s *stubSheetStore) FindByID(context.Context, uuid.UUID) (*queries.SheetView, error) {
	return s.view, s.viewErr
}

func (s *stubSheetStore) FindByEntity(context.Context, rule.Level, uuid.UUID) ([]*queries.SheetListItem, error) {
	return s.items, nil
}

type stubOverrideStore struct {
	rows []*queries.OverrideView
}

func (s *stubOverrideStore) FindBySubLocationSpan(context.Context, uuid.UUID, string, string) ([]capacity.Override, error) {
	panic("not used")
}

func (s *stubOverrideStore) FindBySubLocation(context.Context, uuid.UUID) ([]*queries.OverrideView, error) {
	return s.rows, nil
}

func TestRuleSheetQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored view", func(t *testing.T) {
		view := &queries.SheetView{ID: uuid.New(), Kind: "PRICE", Name: "Weekday peak pricing"}
		uc := queries.NewRuleSheetQueries(&stubSheetStore{view: view})

		got, err := uc.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps a repository miss to sheet-not-found", func(t *testing.T) {
		store := &stubSheetStore{viewErr: infra.WrapRepoErr("sheet not found", nil, infra.KindNotFound)}
		uc := queries.NewRuleSheetQueries(store)

		_, err := uc.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrSheetNotFound), "got %v", err)
	})
}

func TestRuleSheetQueries_ListByEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("passes a valid level through", func(t *testing.T) {
		items := []*queries.SheetListItem{{ID: uuid.New(), Name: "Hall capacity"}}
		uc := queries.NewRuleSheetQueries(&stubSheetStore{items: items})

		got, err := uc.ListByEntity(ctx, "LOCATION", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		uc := queries.NewRuleSheetQueries(&stubSheetStore{})

		_, err := uc.ListByEntity(ctx, "REGION", uuid.New())
		assert.True(t, errs.Is(err, errs.ErrInvalidSheetLevel), "got %v", err)
	})
}

func TestOverrideQueries_ListBySubLocation(t *testing.T) {
	ctx := context.Background()
	subLocationID := uuid.New()

	fullDay := func(date string, max float64) []*queries.OverrideView {
		rows := make([]*queries.OverrideView, 0, 24)
		for hour := 0; hour < 24; hour++ {
			rows = append(rows, &queries.OverrideView{
				SubLocationID: subLocationID,
				Date:          date,
				Hour:          int32(hour),
				Max:           fptr(max),
			})
		}
		return rows
	}

	t.Run("24 identical hourly rows classify as a daily override", func(t *testing.T) {
		uc := queries.NewOverrideQueries(&stubOverrideStore{rows: fullDay("2025-06-10", 0)})

		days, err := uc.ListBySubLocation(ctx, subLocationID)
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.True(t, days[0].IsDaily)
		assert.Len(t, days[0].Hours, 24)
	})

	t.Run("a full day with one differing hour stays hourly", func(t *testing.T) {
		rows := fullDay("2025-06-10", 80)
		rows[14].Max = fptr(20)
		uc := queries.NewOverrideQueries(&stubOverrideStore{rows: rows})

		days, err := uc.ListBySubLocation(ctx, subLocationID)
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.False(t, days[0].IsDaily)
	})

	t.Run("a partial day stays hourly", func(t *testing.T) {
		rows := fullDay("2025-06-10", 80)[:23]
		uc := queries.NewOverrideQueries(&stubOverrideStore{rows: rows})

		days, err := uc.ListBySubLocation(ctx, subLocationID)
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.False(t, days[0].IsDaily)
	})

	t.Run("dates group in arrival order", func(t *testing.T) {
		rows := append(fullDay("2025-06-10", 80), &queries.OverrideView{
			SubLocationID: subLocationID,
			Date:          "2025-06-11",
			Hour:          9,
			Min:           fptr(5),
		})
		uc := queries.NewOverrideQueries(&stubOverrideStore{rows: rows})

		days, err := uc.ListBySubLocation(ctx, subLocationID)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "2025-06-10", days[0].Date)
		assert.True(t, days[0].IsDaily)
		assert.Equal(t, "2025-06-11", days[1].Date)
		assert.False(t, days[1].IsDaily)
		assert.Len(t, days[1].Hours, 1)
	})
}
