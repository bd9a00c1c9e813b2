package schedule

import (
	"dealership/cmd/internal/domain"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the canonical wire format for calendar days.
const DateLayout = "2006-01-02"

// HeaderDateLayout renders a day the way the grid header shows it (06-Jan-2025).
const HeaderDateLayout = "02-Jan-2006"

// calendarLayouts are tried in order by ParseDate. The slash forms are what
// calendar pickers send.
var calendarLayouts = []string{DateLayout, "01/02/06", "01/02/2006"}

// Week is the range of days and hours the scheduling grid covers.
type Week struct {
	Start     time.Time // first day, midnight UTC
	Length    int       // number of days
	FirstHour int       // hour of the first slot
	HourSlots int       // number of one-hour slots per day
}

// Placement is the 1-based grid coordinate of a slot.
type Placement struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Day is one column header of the grid.
type Day struct {
	Letter string    `json:"letter"`
	Date   time.Time `json:"-"`
	Label  string    `json:"date"`
}

// Header returns the two-line header text, e.g. "M\n06-Jan-2025".
func (d Day) Header() string {
	return d.Letter + "\n" + d.Label
}

// DefaultWeek is Monday 6 January 2025 through Sunday 12 January 2025, 08:00 to 18:00.
func DefaultWeek() Week {
	return Week{
		Start:     time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		Length:    7,
		FirstHour: 8,
		HourSlots: 11,
	}
}

// NewWeek builds a week starting at the given day.
func NewWeek(start time.Time, length, firstHour, hourSlots int) (Week, error) {
	if length <= 0 {
		return Week{}, fmt.Errorf("week length must be positive, got %d", length)
	}
	if hourSlots <= 0 {
		return Week{}, fmt.Errorf("hour slots must be positive, got %d", hourSlots)
	}
	if firstHour < 0 || firstHour+hourSlots > 24 {
		return Week{}, fmt.Errorf("slots %d+%d do not fit in a day", firstHour, hourSlots)
	}
	return Week{Start: dateOnly(start), Length: length, FirstHour: firstHour, HourSlots: hourSlots}, nil
}

// End is the last day of the week (inclusive).
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, w.Length-1)
}

// Contains reports whether date falls within [Start, End], ignoring time of day.
func (w Week) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(w.Start) && !d.After(w.End())
}

// Days returns the column headers in order.
func (w Week) Days() []Day {
	days := make([]Day, w.Length)
	for i := range days {
		d := w.Start.AddDate(0, 0, i)
		days[i] = Day{
			Letter: d.Weekday().String()[:1],
			Date:   d,
			Label:  d.Format(HeaderDateLayout),
		}
	}
	return days
}

// Hours returns the slot labels, "08:00" through "18:00" for the default week.
func (w Week) Hours() []string {
	hours := make([]string, w.HourSlots)
	for i := range hours {
		hours[i] = fmt.Sprintf("%02d:00", w.FirstHour+i)
	}
	return hours
}

// HasHour reports whether hour is one of the slot labels.
func (w Week) HasHour(hour string) bool {
	_, err := w.hourOffset(hour)
	return err == nil
}

// Place maps a day and slot label to its grid coordinate.
// column = day offset + 1, row = hour - FirstHour + 1.
func (w Week) Place(date time.Time, hour string) (Placement, error) {
	if !w.Contains(date) {
		return Placement{}, domain.NewValidationError("date", date.Format(DateLayout), domain.ErrDateOutOfRange)
	}
	offset, err := w.hourOffset(hour)
	if err != nil {
		return Placement{}, err
	}
	days := int(dateOnly(date).Sub(w.Start).Hours() / 24)
	return Placement{Column: days + 1, Row: offset + 1}, nil
}

// SlotAt is the inverse of Place.
func (w Week) SlotAt(p Placement) (time.Time, string, bool) {
	if p.Column < 1 || p.Column > w.Length || p.Row < 1 || p.Row > w.HourSlots {
		return time.Time{}, "", false
	}
	return w.Start.AddDate(0, 0, p.Column-1), fmt.Sprintf("%02d:00", w.FirstHour+p.Row-1), true
}

func (w Week) hourOffset(hour string) (int, error) {
	offset := slices.Index(w.Hours(), hour)
	if offset < 0 {
		return 0, domain.NewValidationError("hour", hour, domain.ErrInvalidHour)
	}
	return offset, nil
}

// ParseDate reads a calendar day in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError("date", s, domain.ErrInvalidDate)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
