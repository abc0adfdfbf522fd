// Package relclock renders stored millisecond timestamps as relative labels
// ("5 часов назад") with an absolute date past one week.
package relclock

import (
	"fmt"
	"time"
)

const (
	msMinute = int64(60_000)
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
)

type Formatter struct {
	locale Locale
	loc    *time.Location
	clock  Clock
}

// NewFormatter renders in locale; absolute dates are shown in loc (UTC when
// nil). clock is only consulted by Since.
func NewFormatter(locale Locale, loc *time.Location, clock Clock) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Formatter{locale: locale, loc: loc, clock: clock}
}

// Format labels ts relative to now, both in milliseconds since the epoch.
// A timestamp in the future reads as just now.
func (f *Formatter) Format(ts, now int64) string {
	elapsed := now - ts
	switch {
	case elapsed < msMinute:
		return f.locale.JustNow
	case elapsed < msHour:
		return f.ago(Minute, elapsed/msMinute)
	case elapsed < msDay:
		return f.ago(Hour, elapsed/msHour)
	case elapsed < msWeek:
		return f.ago(Day, elapsed/msDay)
	default:
		return f.Date(ts)
	}
}

// Since labels ts relative to the formatter's clock.
func (f *Formatter) Since(ts int64) string {
	return f.Format(ts, f.clock.Now().UnixMilli())
}

// Now is the formatter clock's current time in milliseconds.
func (f *Formatter) Now() int64 {
	return f.clock.Now().UnixMilli()
}

// Date renders ts as day, month name and year.
func (f *Formatter) Date(ts int64) string {
	t := time.UnixMilli(ts).In(f.loc)
	return fmt.Sprintf(f.locale.Date, t.Day(), f.locale.Months[t.Month()-1], t.Year())
}

func (f *Formatter) ago(u Unit, n int64) string {
	return fmt.Sprintf(f.locale.Ago, n, f.locale.form(u, int(n)))
}
