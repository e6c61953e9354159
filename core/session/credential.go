package session

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNoCredential is returned by CredentialStore.Load when nothing was saved.
	ErrNoCredential = errors.New("no credential")
	// ErrInvalidCredential is returned by CredentialStore.Load when the saved credential cannot be trusted (bad signature, expired, ...).
	ErrInvalidCredential = errors.New("invalid credential")
)

// CredentialStore keeps the identity of the last active profile between process runs.
type CredentialStore interface {
	// Load returns the subject (profile id) of the saved credential.
	Load(ctx context.Context) (subject string, err error)
	Save(ctx context.Context, subject string) error
	Clear(ctx context.Context) error
}
