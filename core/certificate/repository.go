package certificate

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound      = errors.New("certificate not found")
	ErrAlreadyIssued = errors.New("a certificate was already issued for this course")
)

type Repository interface {
	// CreateCertificate fails with ErrAlreadyIssued if the profile already holds one for the course.
	CreateCertificate(ctx context.Context, cert Certificate) (Certificate, error)
	GetCertificate(ctx context.Context, profileID string, courseID int) (Certificate, error)
	// QueryCertificatesByProfile returns the certificates of a profile, oldest first.
	QueryCertificatesByProfile(ctx context.Context, profileID string) ([]Certificate, error)
}
