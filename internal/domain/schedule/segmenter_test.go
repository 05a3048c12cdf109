//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("aligned span yields whole hour slots", func(t *testing.T) {
		slots := schedule.Split(day.Add(10*time.Hour), day.Add(13*time.Hour))
		require.Len(t, slots, 3)
		for i, s := range slots {
			assert.Equal(t, day.Add(time.Duration(10+i)*time.Hour), s.Start)
			assert.Equal(t, 1.0, s.Hours())
		}
	})

	t.Run("quarter hour booking yields one fractional slot", func(t *testing.T) {
		start := day.Add(10*time.Hour + 30*time.Minute)
		slots := schedule.Split(start, start.Add(15*time.Minute))
		require.Len(t, slots, 1)
		assert.Equal(t, 0.25, slots[0].Hours())
	})

	t.Run("fractional edges", func(t *testing.T) {
		start := day.Add(10*time.Hour + 30*time.Minute)
		end := day.Add(12*time.Hour + 45*time.Minute)
		slots := schedule.Split(start, end)
		require.Len(t, slots, 3)
		assert.Equal(t, 0.5, slots[0].Hours())
		assert.Equal(t, 1.0, slots[1].Hours())
		assert.Equal(t, 0.75, slots[2].Hours())
	})

	t.Run("union is exactly the input span", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end time.Time
		}{
			{"aligned", day.Add(9 * time.Hour), day.Add(17 * time.Hour)},
			{"ragged both ends", day.Add(9*time.Hour + 10*time.Minute), day.Add(17*time.Hour + 55*time.Minute)},
			{"crosses midnight", day.Add(23*time.Hour + 30*time.Minute), day.Add(25*time.Hour + 15*time.Minute)},
			{"sub-hour", day.Add(14*time.Hour + 5*time.Minute), day.Add(14*time.Hour + 20*time.Minute)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				slots := schedule.Split(tc.start, tc.end)
				require.NotEmpty(t, slots)

				assert.Equal(t, tc.start, slots[0].Start)
				assert.Equal(t, tc.end, slots[len(slots)-1].End)

				var total float64
				for i, s := range slots {
					require.True(t, s.Start.Before(s.End))
					if i > 0 {
						assert.Equal(t, slots[i-1].End, s.Start, "no gaps, no overlaps")
					}
					total += s.Hours()
				}
				assert.InDelta(t, tc.end.Sub(tc.start).Hours(), total, 1e-9)
			})
		}
	})

	t.Run("interior boundaries fall on hour marks", func(t *testing.T) {
		slots := schedule.Split(day.Add(9*time.Hour+10*time.Minute), day.Add(12*time.Hour+40*time.Minute))
		require.Len(t, slots, 4)
		for _, s := range slots[1:] {
			assert.Zero(t, s.Start.Minute())
			assert.Zero(t, s.Start.Second())
		}
	})

	t.Run("inverted or empty span yields nil", func(t *testing.T) {
		assert.Nil(t, schedule.Split(day.Add(2*time.Hour), day.Add(time.Hour)))
		assert.Nil(t, schedule.Split(day, day))
	})
}
