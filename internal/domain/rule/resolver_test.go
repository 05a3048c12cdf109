//go:build unit

package rule_test

import (
	"testing"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/rule"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(level rule.Level, priority int, rate float64) rule.Candidate {
	sheet := builder.NewSheetBuilder().WithLevel(level).WithPriority(priority).Build()
	return rule.Candidate{
		Sheet: &sheet,
		Level: level,
		Value: rule.WindowValue{Rate: rate},
	}
}

func rateOf(c rule.Candidate) float64 { return c.Value.Rate }

func TestSelectWinner(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		_, ok := rule.SelectWinner(nil, rateOf)
		assert.False(t, ok)
	})

	t.Run("hierarchy rank dominates priority number", func(t *testing.T) {
		location := candidate(rule.LevelLocation, 2999, 75)
		sublocation := candidate(rule.LevelSubLocation, 3000, 130)

		winner, ok := rule.SelectWinner([]rule.Candidate{location, sublocation}, rateOf)
		require.True(t, ok)
		assert.Equal(t, rule.LevelSubLocation, winner.Level)

		// A maximal location priority still loses to any sublocation sheet.
		winner, ok = rule.SelectWinner([]rule.Candidate{candidate(rule.LevelLocation, 999999, 75), candidate(rule.LevelSubLocation, 1, 130)}, rateOf)
		require.True(t, ok)
		assert.Equal(t, rule.LevelSubLocation, winner.Level)
	})

	t.Run("priority breaks ties within a level", func(t *testing.T) {
		low := candidate(rule.LevelLocation, 2000, 75)
		high := candidate(rule.LevelLocation, 2500, 95)

		winner, ok := rule.SelectWinner([]rule.Candidate{low, high}, rateOf)
		require.True(t, ok)
		assert.Equal(t, 95.0, winner.Value.Rate)
	})

	t.Run("zero value loses at equal level and priority", func(t *testing.T) {
		zero := candidate(rule.LevelEvent, 4000, 0)
		paid := candidate(rule.LevelEvent, 4000, 120)

		winner, ok := rule.SelectWinner([]rule.Candidate{zero, paid}, rateOf)
		require.True(t, ok)
		assert.Equal(t, 120.0, winner.Value.Rate)

		// Regardless of insertion order.
		winner, ok = rule.SelectWinner([]rule.Candidate{paid, zero}, rateOf)
		require.True(t, ok)
		assert.Equal(t, 120.0, winner.Value.Rate)
	})

	t.Run("full ties keep insertion order", func(t *testing.T) {
		first := candidate(rule.LevelLocation, 2000, 80)
		second := candidate(rule.LevelLocation, 2000, 90)

		winner, ok := rule.SelectWinner([]rule.Candidate{first, second}, rateOf)
		require.True(t, ok)
		assert.Equal(t, 80.0, winner.Value.Rate, "stable: first inserted wins")
	})

	t.Run("input order is never mutated", func(t *testing.T) {
		a := candidate(rule.LevelCustomer, 1000, 10)
		b := candidate(rule.LevelSurge, 9000, 1.5)
		cands := []rule.Candidate{a, b}

		_, ok := rule.SelectWinner(cands, rateOf)
		require.True(t, ok)
		assert.Equal(t, rule.LevelCustomer, cands[0].Level)
		assert.Equal(t, rule.LevelSurge, cands[1].Level)
	})

	t.Run("surge outranks every concrete level", func(t *testing.T) {
		cands := []rule.Candidate{
			candidate(rule.LevelEvent, 4999, 300),
			candidate(rule.LevelSurge, 1, 1.2),
		}
		winner, ok := rule.SelectWinner(cands, rateOf)
		require.True(t, ok)
		assert.Equal(t, rule.LevelSurge, winner.Level)
	})
}

func TestLevelRank(t *testing.T) {
	ranked := []rule.Level{rule.LevelSurge, rule.LevelEvent, rule.LevelSubLocation, rule.LevelLocation, rule.LevelCustomer}
	for i := 1; i < len(ranked); i++ {
		assert.Greater(t, ranked[i-1].Rank(), ranked[i].Rank())
	}
	assert.Zero(t, rule.Level("BOGUS").Rank())
}
