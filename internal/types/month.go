// Package types implements the value types shared by the ledger.
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

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalText implements encoding.TextMarshaler so that months are
// rendered as YYYY-MM in JSON.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(data []byte) error {
	month, err := ParseMonth(string(data))
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Time(m).AddDate(0, 1, -1).Day()
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date(time.Time(m))
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	return Date(time.Time(m).AddDate(0, 1, -1))
}

// Contains reports whether the day is in the month.
func (m Month) Contains(d Date) bool {
	return MonthOf(time.Time(d)).Equal(m)
}
