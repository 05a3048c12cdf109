//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOverrideRepo struct {
	upserted []commands.OverrideRecord
	batches  [][]commands.OverrideRecord
	deleted  bool
	found    bool
}

func (f *fakeOverrideRepo) Upsert(_ context.Context, record commands.OverrideRecord) error {
	f.upserted = append(f.upserted, record)
	return nil
}

func (f *fakeOverrideRepo) UpsertMany(_ context.Context, records []commands.OverrideRecord) error {
	f.batches = append(f.batches, records)
	return nil
}

func (f *fakeOverrideRepo) Delete(_ context.Context, _ uuid.UUID, _ string, _ int) (bool, error) {
	f.deleted = true
	return f.found, nil
}

func fptr(v float64) *float64 { return &v }

func TestOverrideCommands_UpsertHour(t *testing.T) {
	ctx := context.Background()
	subLocationID := uuid.New()

	t.Run("writes the record and invalidates the cache", func(t *testing.T) {
		repo := &fakeOverrideRepo{}
		cache := &countingInvalidator{}
		uc := commands.NewOverrideCommands(repo, cache, discardLogger())

		err := uc.UpsertHour(ctx, subLocationID, "2025-06-10", 14, commands.OverrideValues{Max: fptr(80)})
		require.NoError(t, err)
		require.Len(t, repo.upserted, 1)
		assert.Equal(t, 14, repo.upserted[0].Hour)
		assert.Equal(t, 1, cache.calls)
	})

	t.Run("zero max is a real value, not an absence", func(t *testing.T) {
		repo := &fakeOverrideRepo{}
		uc := commands.NewOverrideCommands(repo, nil, discardLogger())

		err := uc.UpsertHour(ctx, subLocationID, "2025-06-10", 14, commands.OverrideValues{Max: fptr(0)})
		require.NoError(t, err)
		require.Len(t, repo.upserted, 1)
		require.NotNil(t, repo.upserted[0].Max)
		assert.Equal(t, 0.0, *repo.upserted[0].Max)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		testCases := []struct {
			name   string
			date   string
			hour   int
			values commands.OverrideValues
		}{
			{name: "malformed date", date: "06/10/2025", hour: 14, values: commands.OverrideValues{Max: fptr(80)}},
			{name: "hour below range", date: "2025-06-10", hour: -1, values: commands.OverrideValues{Max: fptr(80)}},
			{name: "hour above range", date: "2025-06-10", hour: 24, values: commands.OverrideValues{Max: fptr(80)}},
			{name: "no dimensions set", date: "2025-06-10", hour: 14, values: commands.OverrideValues{}},
			{name: "negative value", date: "2025-06-10", hour: 14, values: commands.OverrideValues{Max: fptr(-1)}},
			{name: "min greater than max", date: "2025-06-10", hour: 14, values: commands.OverrideValues{Min: fptr(50), Max: fptr(10)}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				repo := &fakeOverrideRepo{}
				uc := commands.NewOverrideCommands(repo, nil, discardLogger())

				err := uc.UpsertHour(ctx, subLocationID, tc.date, tc.hour, tc.values)
				assert.True(t, errs.Is(err, errs.ErrInvalidOverride), "got %v", err)
				assert.Empty(t, repo.upserted)
			})
		}
	})
}

func TestOverrideCommands_UpsertDay(t *testing.T) {
	ctx := context.Background()
	subLocationID := uuid.New()

	t.Run("fans one value set out to all 24 hours", func(t *testing.T) {
		repo := &fakeOverrideRepo{}
		cache := &countingInvalidator{}
		uc := commands.NewOverrideCommands(repo, cache, discardLogger())

		err := uc.UpsertDay(ctx, subLocationID, "2025-06-10", commands.OverrideValues{Max: fptr(0)})
		require.NoError(t, err)
		require.Len(t, repo.batches, 1)
		require.Len(t, repo.batches[0], 24)
		for hour, record := range repo.batches[0] {
			assert.Equal(t, hour, record.Hour)
			assert.Equal(t, "2025-06-10", record.Date)
			require.NotNil(t, record.Max)
			assert.Equal(t, 0.0, *record.Max)
		}
		assert.Equal(t, 1, cache.calls)
	})

	t.Run("rejects empty value sets", func(t *testing.T) {
		repo := &fakeOverrideRepo{}
		uc := commands.NewOverrideCommands(repo, nil, discardLogger())

		err := uc.UpsertDay(ctx, subLocationID, "2025-06-10", commands.OverrideValues{})
		assert.True(t, errs.Is(err, errs.ErrInvalidOverride), "got %v", err)
		assert.Empty(t, repo.batches)
	})
}

func TestOverrideCommands_Delete(t *testing.T) {
	ctx := context.Background()
	subLocationID := uuid.New()

	t.Run("deletes and invalidates the cache", func(t *testing.T) {
		repo := &fakeOverrideRepo{found: true}
		cache := &countingInvalidator{}
		uc := commands.NewOverrideCommands(repo, cache, discardLogger())

		require.NoError(t, uc.Delete(ctx, subLocationID, "2025-06-10", 14))
		assert.True(t, repo.deleted)
		assert.Equal(t, 1, cache.calls)
	})

	t.Run("returns not found when no row matched", func(t *testing.T) {
		repo := &fakeOverrideRepo{found: false}
		uc := commands.NewOverrideCommands(repo, nil, discardLogger())

		err := uc.Delete(ctx, subLocationID, "2025-06-10", 14)
		assert.True(t, errs.Is(err, errs.ErrOverrideNotFound), "got %v", err)
	})

	t.Run("rejects malformed dates before hitting the repository", func(t *testing.T) {
		repo := &fakeOverrideRepo{found: true}
		uc := commands.NewOverrideCommands(repo, nil, discardLogger())

		err := uc.Delete(ctx, subLocationID, "June 10", 14)
		assert.True(t, errs.Is(err, errs.ErrInvalidOverride), "got %v", err)
		assert.False(t, repo.deleted)
	})
}
