package timetable

import "fmt"

// InvalidMinutes is returned by ParseMinutes for anything that is not a
// canonical time. It is larger than any valid value so invalid entries
// sort after all valid ones.
const InvalidMinutes = 1 << 30

// IsValidTime reports whether s is a canonical zero-padded HH:MM time,
// hours 00–23 and minutes 00–59, with nothing before or after.
func IsValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok || h > 23 {
		return false
	}
	m, ok := twoDigits(s[3], s[4])
	return ok && m <= 59
}

// NormalizeTime canonicalizes a user-entered time. The hour may be one or
// two digits; the minutes must be exactly two. Hours above 23 are
// rejected. On success the zero-padded HH:MM form is returned.
func NormalizeTime(s string) (string, bool) {
	colon := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			colon = i
			break
		}
	}
	if colon < 1 || colon > 2 || len(s)-colon-1 != 2 {
		return "", false
	}

	h := 0
	for i := 0; i < colon; i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return "", false
		}
		h = h*10 + int(d-'0')
	}
	if h > 23 {
		return "", false
	}

	m, ok := twoDigits(s[colon+1], s[colon+2])
	if !ok || m > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", h, m), true
}

// ParseMinutes converts a canonical time to minutes since midnight
// (0–1439), or InvalidMinutes if s is not valid per IsValidTime.
func ParseMinutes(s string) int {
	if !IsValidTime(s) {
		return InvalidMinutes
	}
	h, _ := twoDigits(s[0], s[1])
	m, _ := twoDigits(s[3], s[4])
	return h*60 + m
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
