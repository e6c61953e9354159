package profile

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound    = errors.New("profile not found")
	ErrEmailExists = errors.New("a profile with this email already exists")
)

// Repository is the identity store.
type Repository interface {
	GetProfileByID(ctx context.Context, id string) (Profile, error)
	// GetProfileByEmail returns the first profile (in insertion order) whose email matches.
	GetProfileByEmail(ctx context.Context, email string) (Profile, error)
	// CreateProfile checks the email uniqueness and inserts in one step.
	CreateProfile(ctx context.Context, p Profile) (Profile, error)
	QueryAllProfiles(ctx context.Context) ([]Profile, error)
}
