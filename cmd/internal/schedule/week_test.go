package schedule

import (
	"dealership/cmd/internal/domain"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultWeek_Bounds(t *testing.T) {
	w := DefaultWeek()
	assert.Equal(t, day(6), w.Start)
	assert.Equal(t, day(12), w.End())
	assert.True(t, w.Contains(day(6)))
	assert.True(t, w.Contains(day(12)))
	assert.True(t, w.Contains(day(12).Add(23*time.Hour)))
	assert.False(t, w.Contains(day(5)))
	assert.False(t, w.Contains(day(13)))
}

func TestWeek_Hours(t *testing.T) {
	hours := DefaultWeek().Hours()
	require.Len(t, hours, 11)
	assert.Equal(t, "08:00", hours[0])
	assert.Equal(t, "13:00", hours[5])
	assert.Equal(t, "18:00", hours[10])
}

func TestWeek_Days(t *testing.T) {
	days := DefaultWeek().Days()
	require.Len(t, days, 7)

	letters := ""
	for _, d := range days {
		letters += d.Letter
	}
	assert.Equal(t, "MTWTFSS", letters)
	assert.Equal(t, "M\n06-Jan-2025", days[0].Header())
	assert.Equal(t, "S\n12-Jan-2025", days[6].Header())
}

func TestWeek_PlaceIsBijection(t *testing.T) {
	w := DefaultWeek()
	seen := map[Placement]bool{}

	for offset := 0; offset < w.Length; offset++ {
		for _, hour := range w.Hours() {
			date := w.Start.AddDate(0, 0, offset)
			p, err := w.Place(date, hour)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, p.Column, 1)
			assert.LessOrEqual(t, p.Column, 7)
			assert.GreaterOrEqual(t, p.Row, 1)
			assert.LessOrEqual(t, p.Row, 11)
			assert.False(t, seen[p], "placement %v produced twice", p)
			seen[p] = true

			gotDate, gotHour, ok := w.SlotAt(p)
			require.True(t, ok)
			assert.Equal(t, date, gotDate)
			assert.Equal(t, hour, gotHour)
		}
	}
	assert.Len(t, seen, 77)
}

func TestWeek_PlaceExamples(t *testing.T) {
	w := DefaultWeek()

	p, err := w.Place(day(6), "08:00")
	require.NoError(t, err)
	assert.Equal(t, Placement{Column: 1, Row: 1}, p)

	p, err = w.Place(day(8), "14:00")
	require.NoError(t, err)
	assert.Equal(t, Placement{Column: 3, Row: 7}, p)

	p, err = w.Place(day(12), "18:00")
	require.NoError(t, err)
	assert.Equal(t, Placement{Column: 7, Row: 11}, p)
}

func TestWeek_PlaceRejects(t *testing.T) {
	w := DefaultWeek()

	_, err := w.Place(day(13), "08:00")
	assert.True(t, errors.Is(err, domain.ErrDateOutOfRange))

	_, err = w.Place(day(5), "08:00")
	assert.True(t, errors.Is(err, domain.ErrDateOutOfRange))

	for _, hour := range []string{"07:00", "19:00", "8:00", "08:30", "noon", "", "+9:00", "+8:00", "-9:00", " 09:00"} {
		_, err = w.Place(day(7), hour)
		assert.True(t, errors.Is(err, domain.ErrInvalidHour), hour)
	}
}

func TestWeek_HasHourOnlySlotLabels(t *testing.T) {
	w := DefaultWeek()
	assert.True(t, w.HasHour("09:00"))
	assert.False(t, w.HasHour("+9:00"))
	assert.False(t, w.HasHour("9:00"))
	assert.False(t, w.HasHour("09:00:00"))
}

func TestNewWeek_Generalized(t *testing.T) {
	w, err := NewWeek(time.Date(2025, time.March, 3, 15, 30, 0, 0, time.UTC), 5, 9, 8)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), w.End())
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, w.Hours())

	p, err := w.Place(time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), "16:00")
	require.NoError(t, err)
	assert.Equal(t, Placement{Column: 5, Row: 8}, p)

	_, err = NewWeek(day(6), 0, 8, 11)
	assert.Error(t, err)
	_, err = NewWeek(day(6), 7, 20, 11)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2025-01-08", "01/08/25", "01/08/2025", " 2025-01-08 "} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, day(8), got, s)
	}

	_, err := ParseDate("8 Jan 2025")
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))
}
