package schedule

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGrid_PlacesLabelsAndKeepsDoubleBookings(t *testing.T) {
	w := DefaultWeek()
	entries := []Entry{
		{Placement: Placement{Column: 2, Row: 3}, Label: "first"},
		{Placement: Placement{Column: 2, Row: 3}, Label: "second"},
		{Placement: Placement{Column: 7, Row: 11}, Label: "last"},
		{Placement: Placement{Column: 8, Row: 1}, Label: "off-grid"},
	}

	g := w.Grid(entries)
	require.Len(t, g.Cells, 11)
	require.Len(t, g.Cells[0], 7)
	assert.Len(t, g.Days, 7)
	assert.Len(t, g.Hours, 11)
	require.Len(t, g.Headers, 7)
	assert.Equal(t, "M\n06-Jan-2025", g.Headers[0])
	assert.Equal(t, "W\n08-Jan-2025", g.Headers[2])

	assert.Equal(t, []string{"first", "second"}, g.At(Placement{Column: 2, Row: 3}).Labels)
	assert.Equal(t, []string{"last"}, g.At(Placement{Column: 7, Row: 11}).Labels)
	assert.Empty(t, g.At(Placement{Column: 1, Row: 1}).Labels)
	assert.Nil(t, g.At(Placement{Column: 8, Row: 1}))

	cell := g.At(Placement{Column: 4, Row: 9})
	assert.Equal(t, 4, cell.Column)
	assert.Equal(t, 9, cell.Row)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Ada\nVIN: WAUZZZ\n09:00", ServiceLabel("Ada", "WAUZZZ", "09:00"))
	assert.Equal(t, "Ada\n09:00\nSales: Tyler", SalesLabel("Ada", "09:00", "Tyler"))
}

func TestRandomPicker(t *testing.T) {
	roster := []string{"Chris", "Anthony", "Tyler", "Zach"}

	a := NewSeededPicker(42)
	b := NewSeededPicker(42)
	for i := 0; i < 20; i++ {
		got := a.Pick(roster)
		assert.Contains(t, roster, got)
		assert.Equal(t, got, b.Pick(roster))
	}

	var zero RandomPicker
	assert.Contains(t, roster, zero.Pick(roster))
	assert.Equal(t, "", zero.Pick(nil))
}

func TestPickerFunc(t *testing.T) {
	p := PickerFunc(func(roster []string) string { return roster[len(roster)-1] })
	assert.Equal(t, "Zach", p.Pick([]string{"Chris", "Zach"}))
}
