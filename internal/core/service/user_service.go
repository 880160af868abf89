package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/martijn/birthdays/internal/core/domain"
	"github.com/martijn/birthdays/internal/core/repository"
	"github.com/martijn/birthdays/internal/core/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	now      func() time.Time // overridable in tests
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// SaveUser validates the username and date of birth and stores the record,
// replacing any previous date of birth for the same username. Validation
// failures never touch the store.
func (s *UserService) SaveUser(ctx context.Context, username, dateOfBirth string) error {
	if !validation.ValidUsername(username) {
		return ErrInvalidUsername
	}

	if _, err := validation.ParseDateOfBirth(dateOfBirth, s.now()); err != nil {
		return ErrInvalidDateOfBirth
	}

	if err := s.userRepo.Upsert(ctx, domain.NewUser(username, dateOfBirth)); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// BirthdayMessage returns the greeting for username based on the stored date
// of birth and the current date.
func (s *UserService) BirthdayMessage(ctx context.Context, username string) (string, error) {
	if !validation.ValidUsername(username) {
		return "", ErrInvalidUsername
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	dob, err := time.Parse(domain.DateFormat, user.DateOfBirth)
	if err != nil {
		return "", fmt.Errorf("stored date of birth is corrupt: %w", err)
	}

	days := domain.DaysUntilBirthday(dob, s.now())
	if days == 0 {
		return fmt.Sprintf("Hello, %s! Happy birthday!", username), nil
	}
	return fmt.Sprintf("Hello, %s! Your birthday is in %d day(s).", username, days), nil
}

// ListUsers returns every stored record.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
