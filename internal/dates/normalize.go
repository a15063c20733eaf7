package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/fhofer/invoice-assistant/internal/common"
)

// numericDate matches fully numeric day/month/year dates with dot, hyphen or
// slash separators.
var numericDate = regexp.MustCompile(`^(\d{1,2})[-./](\d{1,2})[-./](\d{2,4})$`)

// germanMonths maps German month vocabulary (including common abbreviations)
// onto the English names the underlying parser understands. Months spelled the
// same in both languages are not listed.
var germanMonths = map[string]string{
	"januar":   "January",
	"jan":      "January",
	"februar":  "February",
	"feb":      "February",
	"märz":     "March",
	"mär":      "March",
	"mrz":      "March",
	"mai":      "May",
	"juni":     "June",
	"jun":      "June",
	"juli":     "July",
	"jul":      "July",
	"oktober":  "October",
	"okt":      "October",
	"dezember": "December",
	"dez":      "December",
}

// Normalize converts one locale-ambiguous date string into a calendar date at
// midnight UTC. Fully numeric dates are read day-first; free-form dates with a
// German or English month name go through the natural-language parser. Any
// input without an interpretable date collapses to the same DateParse error.
func Normalize(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, parseError(raw, nil)
	}

	if m := numericDate.FindStringSubmatch(s); m != nil {
		return normalizeNumeric(raw, m[1], m[2], m[3])
	}

	t, err := dateparse.ParseAny(translateMonths(s), dateparse.PreferMonthFirst(false))
	if err != nil || t.IsZero() {
		return time.Time{}, parseError(raw, err)
	}
	return midnightUTC(t.Year(), t.Month(), t.Day()), nil
}

// normalizeNumeric applies the day-before-month disambiguation rule: an
// ambiguous numeric date is day-first; when the second component cannot be a
// month the components are swapped.
func normalizeNumeric(raw, dayStr, monthStr, yearStr string) (time.Time, error) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)

	if month > 12 && day <= 12 {
		day, month = month, day
	}
	if year < 100 {
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
	}

	t := midnightUTC(year, time.Month(month), day)
	// time.Date normalizes out-of-range values, so a round-trip mismatch means
	// the components name no real calendar date.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, parseError(raw, nil)
	}
	return t, nil
}

// translateMonths rewrites German month tokens to English, tolerating trailing
// ordinal dots ("3. März 2023" -> "3 March 2023").
func translateMonths(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		token := strings.Trim(f, ".,")
		if en, ok := germanMonths[strings.ToLower(token)]; ok {
			fields[i] = en
			continue
		}
		if token != "" && token != f && isDigits(token) {
			fields[i] = token
		}
	}
	return strings.Join(fields, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func midnightUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func parseError(raw string, cause error) error {
	if cause == nil {
		cause = common.ErrDateParse
	} else {
		cause = fmt.Errorf("%w: %v", common.ErrDateParse, cause)
	}
	return common.NewAppError("DATE_PARSE", fmt.Sprintf("no interpretable date in %q", raw), cause)
}
