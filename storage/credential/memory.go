package credential

import (
	"context"
	"sync"

	"github.com/trezcool/synapse/core/session"
)

// MemoryStore keeps the credential in memory.
type MemoryStore struct {
	mu      sync.Mutex
	subject string
}

var _ session.CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore(subject string) *MemoryStore {
	return &MemoryStore{subject: subject}
}

func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subject == "" {
		return "", session.ErrNoCredential
	}
	return s.subject, nil
}

func (s *MemoryStore) Save(_ context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subject = subject
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subject = ""
	return nil
}

// Subject returns the saved subject, empty if none.
func (s *MemoryStore) Subject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject
}
