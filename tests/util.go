package testutil

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/profile"
	"github.com/trezcool/synapse/services/logger"
)

func CreateProfile(
	t *testing.T,
	repo profile.Repository,
	id, name, email, pwd string,
	role profile.Role,
	createdAt ...time.Time,
) profile.Profile {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	p := profile.Profile{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: tstamp,
	}
	if pwd != "" {
		if err := p.SetPassword(pwd); err != nil {
			t.Fatalf("createProfile() failed: %v", err)
		}
	}
	p, err := repo.CreateProfile(context.Background(), p)
	if err != nil {
		t.Fatalf("createProfile() failed: %v", err)
	}
	return p
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// NewLogger returns a logger writing to the test log, with rollbar disabled.
func NewLogger(t *testing.T) core.Logger {
	return logsvc.NewRollbarLogger(log.New(testWriter{t}, "", 0), core.NewTestConfig(t.TempDir()))
}
