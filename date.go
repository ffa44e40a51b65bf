package grana

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDayFormat = "2/1/2006" // Permissive read format (allows single-digit day/month).

// DayFormat is the format used to represent days as strings, zero-padded.
const DayFormat = "02/01/2006"

// Date represents a calendar day with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in its standard zero-padded form.
//
// Input is accepted with or without zero padding, but output is always
// normalized so that textual forms of the same day compare equal.
func (d Date) String() string { return d.time().Format(DayFormat) }

// ParseDay parses a Date from its dd/mm/yyyy textual form. It is lenient
// and accepts single-digit day and month, like "5/1/2024".
func ParseDay(str string) (Date, error) {
	on, err := time.Parse(readDayFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DayFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDay is like ParseDay but panics on error.
func MustParseDay(str string) Date {
	d, err := ParseDay(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	day, err := ParseDay(str)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
