package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/energy"
	"github.com/fittrack/fittrack/pkg"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`

	// profile fields, all optional
	Sex      *string  `json:"sex"`
	Age      *int     `json:"age"`
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}

func (u *User) Profile() energy.Profile {
	return energy.Profile{
		Sex:      u.Sex,
		Age:      u.Age,
		HeightCm: u.HeightCm,
		WeightKg: u.WeightKg,
	}
}

func ValidateProfile(p energy.Profile) error {
	if p.Age != nil && (*p.Age <= 0 || *p.Age > 150) {
		return pkg.NewValidationError("age out of range")
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return pkg.NewValidationError("height must be positive")
	}
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		return pkg.NewValidationError("weight must be positive")
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRx.MatchString(strings.TrimSpace(email)) {
		return pkg.NewValidationError("invalid email")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return pkg.NewValidationError("password must have at least 8 characters")
	}
	return nil
}
