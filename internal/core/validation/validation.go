package validation

import (
	"fmt"
	"time"

	"github.com/martijn/birthdays/internal/core/domain"
)

// ValidUsername reports whether s is a valid username: one or more ASCII
// letters, nothing else. Case-sensitive, no length limit.
func ValidUsername(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// ParseDateOfBirth parses s as a strict YYYY-MM-DD calendar date and verifies
// it lies strictly before today. Time of day is ignored on both sides.
func ParseDateOfBirth(s string, today time.Time) (time.Time, error) {
	dob, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !dob.Before(todayDate) {
		return time.Time{}, fmt.Errorf("date of birth %s must be before today", s)
	}

	return dob, nil
}
