package service

import "errors"

var (
	ErrInvalidUsername    = errors.New("invalid username: only letters are allowed")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth: must be in YYYY-MM-DD format and before today's date")
	ErrUserNotFound       = errors.New("user not found")
)
