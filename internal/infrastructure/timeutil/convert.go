// Package timeutil provides the date, time and duration conversions shared
// by the supplier mappers and normalizers. All functions are total: malformed
// input maps to a safe zero value, never an error or panic, because a single
// bad upstream field must not take down a whole response.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// monthAbbrevs is the fixed 12-month table used for GDS-style dates.
var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ConvertDateToDDMonYYYY converts an ISO date (YYYY-MM-DD) to the textual
// DD-Mon-YYYY format expected by GDS-style suppliers, e.g. "2024-03-05" ->
// "05-Mar-2024". Empty or malformed input (not exactly three hyphen parts,
// or a month outside 1-12) returns "".
func ConvertDateToDDMonYYYY(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return ""
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return ""
	}

	return fmt.Sprintf("%s-%s-%s", parts[2], monthAbbrevs[month-1], parts[0])
}

// FormatMinutes renders a total-minutes value as zero-padded "HH:MM".
// The value arrives from untyped supplier JSON, so any numeric-ish type is
// accepted; non-numeric or negative input yields "00:00".
func FormatMinutes(v interface{}) string {
	total, ok := toMinutes(v)
	if !ok || total < 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// toMinutes coerces the dynamic JSON types a minutes field can arrive as.
func toMinutes(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != n { // NaN
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// FormatISODuration normalizes an ISO-8601 duration like "PT4H35M" into the
// display form "4h 35m": the PT prefix is stripped, H becomes "h " and M
// becomes "m", lower-cased. Input without the PT prefix is passed through
// the same replacement, matching the legacy behavior.
func FormatISODuration(d string) string {
	d = strings.TrimPrefix(d, "PT")
	d = strings.ReplaceAll(d, "H", "h ")
	d = strings.ReplaceAll(d, "M", "m")
	return strings.TrimSpace(strings.ToLower(d))
}

// DatePart extracts the 10-character YYYY-MM-DD date from an ISO-8601-like
// timestamp by fixed-offset substring. Short input returns "".
func DatePart(ts string) string {
	if len(ts) < 10 {
		return ""
	}
	return ts[:10]
}

// TimePart extracts the 5-character HH:MM time from an ISO-8601-like
// timestamp by fixed-offset substring. Input without a time part returns "".
func TimePart(ts string) string {
	if len(ts) < 16 {
		return ""
	}
	return ts[11:16]
}
