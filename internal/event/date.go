package event

import (
	"regexp"
	"strconv"
	"time"

	"golang.org/x/text/width"
)

// The source site writes dates as "M月D日" with no year, joined by whatever
// dash glyph the page author reached for when the event spans several days.
var (
	crossMonthPattern = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日[～〜~\-－―](\d{1,2})月(\d{1,2})日`)
	sameMonthPattern  = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日[～〜~\-－―](\d{1,2})日`)
	singleDayPattern  = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)
)

// ParseDateRange extracts an event's date range from free text. Full-width
// digits are narrowed first, then three patterns are tried in priority
// order: cross-month range, same-month range (end day only), single day.
// Returns zero times when nothing matches.
//
// The caller supplies now so the year inference is deterministic under test.
func ParseDateRange(text string, now time.Time) (start, end time.Time) {
	normalized := width.Narrow.String(text)

	if m := crossMonthPattern.FindStringSubmatch(normalized); m != nil {
		start = resolveYear(atoi(m[1]), atoi(m[2]), now)
		end = time.Date(start.Year(), time.Month(atoi(m[3])), atoi(m[4]), 0, 0, 0, 0, time.UTC)
		return start, end
	}
	if m := sameMonthPattern.FindStringSubmatch(normalized); m != nil {
		start = resolveYear(atoi(m[1]), atoi(m[2]), now)
		end = time.Date(start.Year(), start.Month(), atoi(m[3]), 0, 0, 0, 0, time.UTC)
		return start, end
	}
	if m := singleDayPattern.FindStringSubmatch(normalized); m != nil {
		return resolveYear(atoi(m[1]), atoi(m[2]), now), time.Time{}
	}
	return time.Time{}, time.Time{}
}

// resolveYear assumes now's year and bumps to the next one when the
// candidate date has already passed: the site only announces current or
// future events, so a "3月7日" scraped in July means next March.
func resolveYear(month, day int, now time.Time) time.Time {
	candidate := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if candidate.Before(now) {
		candidate = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
