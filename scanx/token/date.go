package token

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

var datePattern = regexp.MustCompile(`^:__([0-2][0-9]|3[0-1])-(0[1-9]|1[0-2])-(\d{4})__:$`)

// MatchesDatePattern reports whether s has the exact shape :__DD-MM-YYYY__:.
func MatchesDatePattern(s string) bool {
	return datePattern.MatchString(s)
}

// ParseDate extracts day, month and year from a string matching the date pattern.
func ParseDate(s string) (day, month, year int, ok bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	// the pattern guarantees digits only
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	return day, month, year, true
}

// FormatDate renders t's calendar date as :__DD-MM-YYYY__:.
func FormatDate(t time.Time) string {
	return fmt.Sprintf(":__%s__:", t.Format("02-01-2006"))
}

// MatchesToday reports whether the given date is the clock's current local date.
func MatchesToday(clock clockwork.Clock, day, month, year int) bool {
	y, m, d := clock.Now().Local().Date()
	return d == day && int(m) == month && y == year
}
