package task

import "time"

// Date layouts. Input is tried in order: US month/day/year with a 24-hour
// time, then ISO calendar date. Only calendar precision is kept; a
// time-of-day in the first format is accepted for parsing and discarded.
const (
	layoutUS  = "1/2/2006 1504"
	layoutISO = "2006-01-02"
	layoutOut = "Jan 2 2006"
)

// Date is a deadline's due date: either a parsed calendar date or, when no
// known format matched the input, the original text kept verbatim.
type Date struct {
	day    time.Time
	raw    string
	parsed bool
}

// ParseDate parses date text against the accepted layouts. The returned
// time is truncated to the calendar day.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range []string{layoutUS, layoutISO} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// NewDate parses s into a calendar date, falling back to raw text.
func NewDate(s string) Date {
	if day, ok := ParseDate(s); ok {
		return Date{day: day, parsed: true}
	}
	return Date{raw: s}
}

// CalendarDate wraps an already-parsed calendar date.
func CalendarDate(day time.Time) Date {
	return Date{day: day, parsed: true}
}

// RawDate wraps unparsed date text verbatim.
func RawDate(s string) Date {
	return Date{raw: s}
}

// Calendar returns the parsed day and whether the date was parsed at all.
func (d Date) Calendar() (time.Time, bool) { return d.day, d.parsed }

// Raw returns the fallback text; empty for parsed dates.
func (d Date) Raw() string { return d.raw }

// String renders the date for display: formatted day, or the raw text.
func (d Date) String() string {
	if d.parsed {
		return FormatDay(d.day)
	}
	return d.raw
}

// FormatDay renders a calendar date for display.
func FormatDay(t time.Time) string {
	return t.Format(layoutOut)
}
