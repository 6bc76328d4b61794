// Package types implements special types for Spendwise.
package types

import (
	"fmt"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs, in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.In(time.UTC).Date()
	return NewMonth(year, month)
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Bounds returns the first instant of the month and the first instant
// of the following month. A time t is in the month exactly when
// start <= t < end, which makes both the first and the last instant of
// the month inclusive.
func (m Month) Bounds() (start, end time.Time) {
	return time.Time(m), time.Time(m.AddDate(0, 1))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	u := t.In(time.UTC)
	return u.Year() == time.Time(m).Year() && u.Month() == time.Time(m).Month()
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}
