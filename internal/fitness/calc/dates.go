package calc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODay is the calendar day format used for all ledger dates.
const ISODay = "2006-01-02"

func TodayISO() string {
	return time.Now().UTC().Format(ISODay)
}

// MonthKey returns the year-month prefix of an ISO day, e.g. "2026-08".
func MonthKey(iso string) string {
	if len(iso) < 7 {
		return iso
	}
	return iso[:7]
}

// parseYearMonth splits an ISO day into its year and month parts.
// A missing or malformed month falls back to January, matching the
// lenient numeric coercion used elsewhere in this package.
func parseYearMonth(iso string) (year, month int) {
	parts := strings.Split(iso, "-")
	if len(parts) > 0 {
		year, _ = strconv.Atoi(parts[0])
	}
	month = 1
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m > 0 {
			month = m
		}
	}
	return year, month
}

// StartOfMonth returns the first day of the month of the given ISO day.
// All month arithmetic is anchored to UTC so rollovers never shift by a
// day due to a local time zone offset.
func StartOfMonth(iso string) string {
	y, m := parseYearMonth(iso)
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format(ISODay)
}

// AddMonths moves the first of the month by delta months, UTC-anchored.
func AddMonths(iso string, delta int) string {
	y, m := parseYearMonth(iso)
	return time.Date(y, time.Month(m+delta), 1, 0, 0, 0, 0, time.UTC).Format(ISODay)
}

func DaysInMonth(iso string) int {
	y, m := parseYearMonth(iso)
	// day 0 of the next month is the last day of this month
	return time.Date(y, time.Month(m+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayIndex returns the weekday of an ISO day with Monday = 0.
func WeekdayIndex(iso string) int {
	d, err := time.ParseInLocation(ISODay, iso, time.UTC)
	if err != nil {
		return 0
	}
	return (int(d.Weekday()) + 6) % 7
}

// FormatDate renders an ISO day for display, e.g. "Aug 31, 2026".
// Malformed input is returned as-is.
func FormatDate(iso string) string {
	d, err := time.ParseInLocation(ISODay, iso, time.UTC)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s %d, %d", d.Month().String()[:3], d.Day(), d.Year())
}
