// Package event holds the birthday and work anniversary logic: date parsing
// and matching, chronological listings and message composition.
package event

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the input format, D.M.YYYY. Leading zeros are accepted.
	DateLayout = "2.1.2006"
	// OutputShortLayout renders DD.MM.
	OutputShortLayout = "02.01"
	// OutputLayout renders DD.MM.YYYY.
	OutputLayout = "02.01.2006"
)

// Date is a calendar day. Year may be a placeholder when the real year is unknown.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses raw strictly against DateLayout.
func ParseDate(raw string) (Date, error) {
	if raw == "" {
		return Date{}, fmt.Errorf("empty date")
	}

	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}

	return DateOf(t), nil
}

// IsValidDate reports whether raw follows DateLayout and names a real day.
func IsValidDate(raw string) bool {
	_, err := ParseDate(raw)
	return err == nil
}

// IsEqualMonthDay compares month and day only.
func IsEqualMonthDay(a, b Date) bool {
	return a.Month == b.Month && a.Day == b.Day
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays shifts d by n days, normalising month and year overflow.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Format renders d with a time layout.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

func (d Date) String() string {
	return d.Format(OutputLayout)
}

// YearsSince returns the number of whole years elapsed from d to today.
func (d Date) YearsSince(today Date) int {
	years := today.Year - d.Year
	if today.Month < d.Month || (today.Month == d.Month && today.Day < d.Day) {
		years--
	}
	return years
}

// Unit is the measure of a reminder window.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitWeeks Unit = "weeks"
)

// ParseUnit accepts the singular and plural spelling of a unit.
func ParseUnit(raw string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "day", "days", "d":
		return UnitDays, nil
	case "week", "weeks", "w":
		return UnitWeeks, nil
	default:
		return "", fmt.Errorf("unsupported unit of time %q, use days or weeks", raw)
	}
}

// Window is how long before an event a reminder goes out.
type Window struct {
	Amount int
	Unit   Unit
}

// Days returns the window length in days.
func (w Window) Days() int {
	if w.Unit == UnitWeeks {
		return w.Amount * 7
	}
	return w.Amount
}

// Target returns the day the window points at, counted from today.
func (w Window) Target(today Date) Date {
	return today.AddDays(w.Days())
}

// Clock abstracts time.Now so "today" can be fixed in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock in Location (time.Local when nil).
type RealClock struct {
	Location *time.Location
}

func (c RealClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Today returns the calendar day of the clock.
func Today(c Clock) Date {
	return DateOf(c.Now())
}
