package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the only accepted textual representation of a Date.
const DateFormat = "2006-01-02"

// Date is a calendar day without a time component.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "YYYY-MM-DD" string. Impossible days like
// 2025-02-29 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(DateFormat)
}

// MarshalJSON renders the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" strings. Empty strings and null
// leave the date untouched.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
//
// Depending on the declared column type, the driver hands out either the
// stored text or an already parsed time.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v.UTC())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	}

	return fmt.Errorf("cannot scan %T into a date", value)
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
//
// Dates are stored as YYYY-MM-DD text so that range queries compare
// lexicographically.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Month returns the month the date is in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// AddDays adds the specified amount of days.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DateRange is an inclusive range of days. A zero bound is open.
type DateRange struct {
	From  Date
	Until Date
}

// MonthToDate returns the range from the first of the month up to and
// including the given day.
func MonthToDate(d Date) DateRange {
	return DateRange{From: d.Month().First(), Until: d}
}

// Empty reports whether the range cannot contain any day, which is the
// case when the start lies after the end.
func (r DateRange) Empty() bool {
	return !r.From.IsZero() && !r.Until.IsZero() && r.From.After(r.Until)
}

// Contains reports whether the day lies within the range.
func (r DateRange) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}

	if !r.Until.IsZero() && d.After(r.Until) {
		return false
	}

	return true
}
