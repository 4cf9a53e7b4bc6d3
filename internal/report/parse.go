package report

import (
	"strings"
	"time"
)

// dayLayouts lists the date formats the entry forms have historically
// produced. First match wins.
var dayLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// parseDay parses a record's date string into a local calendar day.
// A value that matches no known layout reports ok=false; the caller
// treats the record as outside every window rather than failing the
// whole report over one bad row.
func parseDay(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dayLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return dayOnly(parsed), true
		}
	}
	return time.Time{}, false
}

// ValidDay reports whether a date string parses as a calendar day. The
// entry forms use it to reject bad dates before they are stored.
func ValidDay(value string) bool {
	_, ok := parseDay(value)
	return ok
}

// dayOnly reduces a timestamp to its calendar day, rebuilt in a fixed
// location. The day fields are read in the timestamp's own location (the
// day the source wrote down), but every returned day lives in UTC so
// window containment and sorting compare days, never offsets.
func dayOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

// dayKey is the bucket map key for a calendar day.
func dayKey(day time.Time) string {
	return day.Format("2006-01-02")
}
