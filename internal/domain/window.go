package domain

import "time"

// Window is an optionally bounded date range over which period activity is
// measured. Opening state covers everything strictly before From; period
// and closing figures are inclusive of both bounds. Either bound may be nil
// for an open-ended range.
type Window struct {
	From *time.Time
	To   *time.Time
}

// NewWindow builds a window with both bounds normalized to day granularity.
func NewWindow(from, to *time.Time) Window {
	var w Window
	if from != nil {
		d := Day(*from)
		w.From = &d
	}
	if to != nil {
		d := Day(*to)
		w.To = &d
	}
	return w
}

// Contains reports whether the day falls inside the window bounds.
func (w Window) Contains(day time.Time) bool {
	if w.From != nil && day.Before(*w.From) {
		return false
	}
	if w.To != nil && day.After(*w.To) {
		return false
	}
	return true
}

// BeforeStart reports whether the day precedes the window start. It is
// always false for an open start: with no start bound every transaction
// belongs to the period.
func (w Window) BeforeStart(day time.Time) bool {
	return w.From != nil && day.Before(*w.From)
}

// Valid reports whether the bounds are consistent (From not after To).
func (w Window) Valid() bool {
	if w.From == nil || w.To == nil {
		return true
	}
	return !w.From.After(*w.To)
}
