package session

import (
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/profile"
)

// Policy decides whether a password proves the identity of a profile.
type Policy interface {
	Authenticate(p profile.Profile, password string) error
}

// MockPolicy accepts the sentinel password or no password at all, for any profile.
// It is a development shortcut and must not be used outside local setups.
type MockPolicy struct {
	Sentinel string
}

func (pol MockPolicy) Authenticate(_ profile.Profile, password string) error {
	if password == "" || password == pol.Sentinel {
		return nil
	}
	return ErrInvalidCredentials
}

// HashPolicy checks the password against the profile's bcrypt hash.
type HashPolicy struct{}

func (HashPolicy) Authenticate(p profile.Profile, password string) error {
	if len(p.PasswordHash) == 0 || password == "" {
		return ErrInvalidCredentials
	}
	if err := p.CheckPassword(password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NewPolicy returns the policy selected by `session.authMode`.
func NewPolicy(conf *core.Config) (Policy, error) {
	switch conf.Session.AuthMode {
	case core.AuthModeMock:
		return MockPolicy{Sentinel: conf.Session.SentinelPassword}, nil
	case core.AuthModeHash:
		return HashPolicy{}, nil
	}
	return nil, errors.Errorf("unknown auth mode %q", conf.Session.AuthMode)
}
