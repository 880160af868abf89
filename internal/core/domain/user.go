package domain

import "time"

// DateFormat is the wire and storage format for dates of birth.
const DateFormat = "2006-01-02"

type User struct {
	Username    string `db:"username" json:"username"`
	DateOfBirth string `db:"date_of_birth" json:"date_of_birth"` // YYYY-MM-DD
}

func NewUser(username, dateOfBirth string) *User {
	return &User{
		Username:    username,
		DateOfBirth: dateOfBirth,
	}
}

// NextBirthday returns the next occurrence of dob's month and day on or after
// today. Both arguments are treated as civil dates; time of day is ignored.
// A Feb 29 birthday rolls to Mar 1 in years without a leap day, which is what
// time.Date normalization produces.
func NextBirthday(dob, today time.Time) time.Time {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	candidate := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(todayDate) {
		candidate = time.Date(today.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// DaysUntilBirthday returns the number of whole days from today until the next
// birthday. Zero means the birthday is today.
func DaysUntilBirthday(dob, today time.Time) int {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(NextBirthday(dob, today).Sub(todayDate).Hours() / 24)
}
