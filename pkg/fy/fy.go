// Package fy provides helpers for working with Indian financial years
// (1 April through 31 March) and inclusive date windows used by
// date-gated tax provisions.
package fy

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var fyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// FinancialYear represents one Indian financial year, e.g. "2024-25"
// covers 1 April 2024 through 31 March 2025.
type FinancialYear struct {
	StartYear int
}

// Parse parses a financial year label of the form "2024-25".
func Parse(label string) (FinancialYear, error) {
	m := fyPattern.FindStringSubmatch(label)
	if m == nil {
		return FinancialYear{}, fmt.Errorf("invalid financial year %q: expected format YYYY-YY", label)
	}
	start, _ := strconv.Atoi(m[1])
	endSuffix, _ := strconv.Atoi(m[2])
	if (start+1)%100 != endSuffix {
		return FinancialYear{}, fmt.Errorf("invalid financial year %q: end year must follow start year", label)
	}
	return FinancialYear{StartYear: start}, nil
}

// String returns the canonical "YYYY-YY" label.
func (f FinancialYear) String() string {
	return fmt.Sprintf("%d-%02d", f.StartYear, (f.StartYear+1)%100)
}

// Start returns 1 April of the start year.
func (f FinancialYear) Start() time.Time {
	return time.Date(f.StartYear, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End returns 31 March of the following year.
func (f FinancialYear) End() time.Time {
	return time.Date(f.StartYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the given date falls inside the financial year.
func (f FinancialYear) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(f.Start()) && !d.After(f.End())
}

// Window is an inclusive date range used by provisions that are only
// available for events inside a statutory period.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow builds an inclusive window from two calendar dates.
func NewWindow(fromYear int, fromMonth time.Month, fromDay, toYear int, toMonth time.Month, toDay int) Window {
	return Window{
		From: time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC),
		To:   time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC),
	}
}

// Contains reports whether the date lies inside the window, boundaries included.
func (w Window) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(w.From) && !d.After(w.To)
}
