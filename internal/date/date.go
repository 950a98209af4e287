package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar day in the local calendar, free of clock and zone.
// Arithmetic is done on year/month/day integers so month-end and leap-year
// behavior is explicit rather than inherited from timestamp math.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date, normalizing out-of-range days through the Gregorian
// calendar (day 0 of March is the last day of February, and so on).
func New(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in the given location.
func Today(loc *time.Location) Date {
	y, m, d := time.Now().In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// FromTime truncates a timestamp to its calendar day in the timestamp's
// location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero Date (unset).
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// epochDays converts d to a day count since a fixed epoch; noon avoids any
// DST ambiguity even though we only do UTC math here.
func (d Date) epochDays() int {
	t := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	secs := t.Unix()
	if secs < 0 {
		// Floor division for pre-1970 dates.
		secs -= 86399
	}
	return int(secs / 86400)
}

// DaysBetween returns the signed number of calendar days from a to b
// (positive when b is after a).
func DaysBetween(a, b Date) int {
	return b.epochDays() - a.epochDays()
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// AddMonths advances d by n calendar months. When the original day does not
// exist in the target month (e.g. Jan 31 + 1 month) the result clamps to the
// last day of the target month instead of overflowing into the next one.
func (d Date) AddMonths(n int) Date {
	months := (d.Year*12 + int(d.Month) - 1) + n
	year := months / 12
	month := time.Month(months%12 + 1)
	day := d.Day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

// AddYears advances d by n years. Feb 29 clamps to Feb 28 in non-leap target
// years.
func (d Date) AddYears(n int) Date {
	year := d.Year + n
	day := d.Day
	if d.Month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return Date{Year: year, Month: d.Month, Day: day}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return DaysBetween(other, d) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return DaysBetween(other, d) > 0
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// IsLeapYear implements the Gregorian leap rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of the given month.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// EndOfDay returns the canonical end-of-day timestamp for d in loc. Due-date
// comparisons treat a task as on time until its day is fully over.
func (d Date) EndOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, 0, loc)
}

// Value implements driver.Valuer so gorm stores dates as YYYY-MM-DD text.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		if v == "" {
			*d = Date{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = FromTime(v)
		return nil
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// MarshalJSON encodes d as a YYYY-MM-DD string, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
