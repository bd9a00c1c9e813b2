package schedule

import "fmt"

// Entry is something to draw in the grid: an appointment label at its placement.
type Entry struct {
	Placement
	Label string
}

// Cell is one (day, hour) slot. Several appointments may share a cell.
type Cell struct {
	Column int      `json:"column"`
	Row    int      `json:"row"`
	Labels []string `json:"labels"`
}

// Grid is the rendered week: Cells[row-1][column-1].
// Headers holds the column header text of each day.
type Grid struct {
	Days    []Day    `json:"days"`
	Headers []string `json:"headers"`
	Hours   []string `json:"hours"`
	Cells   [][]Cell `json:"cells"`
}

// Grid lays entries out over the week. Entries placed outside the matrix are
// dropped; labels within a cell keep the order of entries.
func (w Week) Grid(entries []Entry) Grid {
	cells := make([][]Cell, w.HourSlots)
	for r := range cells {
		cells[r] = make([]Cell, w.Length)
		for c := range cells[r] {
			cells[r][c] = Cell{Column: c + 1, Row: r + 1, Labels: []string{}}
		}
	}

	for _, e := range entries {
		if e.Row < 1 || e.Row > w.HourSlots || e.Column < 1 || e.Column > w.Length {
			continue
		}
		cell := &cells[e.Row-1][e.Column-1]
		cell.Labels = append(cell.Labels, e.Label)
	}

	days := w.Days()
	headers := make([]string, len(days))
	for i, d := range days {
		headers[i] = d.Header()
	}
	return Grid{Days: days, Headers: headers, Hours: w.Hours(), Cells: cells}
}

// At returns the cell at p, or nil when p is outside the grid.
func (g Grid) At(p Placement) *Cell {
	if p.Row < 1 || p.Row > len(g.Cells) || p.Column < 1 || p.Column > len(g.Cells[p.Row-1]) {
		return nil
	}
	return &g.Cells[p.Row-1][p.Column-1]
}

// ServiceLabel is the text shown for a service appointment.
func ServiceLabel(customer, vin, hour string) string {
	return fmt.Sprintf("%s\nVIN: %s\n%s", customer, vin, hour)
}

// SalesLabel is the text shown for a sales appointment.
func SalesLabel(customer, hour, salesman string) string {
	return fmt.Sprintf("%s\n%s\nSales: %s", customer, hour, salesman)
}
