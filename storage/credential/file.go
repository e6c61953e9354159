package credential

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/session"
)

// FileStore saves the credential as a signed JWT (HS256) in a local file.
type FileStore struct {
	path   string
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	mu sync.Mutex
}

var _ session.CredentialStore = (*FileStore)(nil)

func NewFileStore(conf *core.Config) *FileStore {
	return &FileStore{
		path:   conf.Session.CredentialPath,
		secret: []byte(conf.SecretKey),
		issuer: conf.AppName,
		ttl:    conf.Session.CredentialTTL,
		now:    time.Now,
	}
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", session.ErrNoCredential
		}
		return "", errors.Wrap(err, "reading credential")
	}
	tokenStr := strings.TrimSpace(string(data))
	if tokenStr == "" {
		return "", session.ErrNoCredential
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	claims := new(jwt.RegisteredClaims)
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.Wrapf(session.ErrInvalidCredential, "%v", err)
	}
	if claims.Subject == "" {
		return "", errors.Wrap(session.ErrInvalidCredential, "missing subject")
	}
	return claims.Subject, nil
}

func (s *FileStore) Save(_ context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return errors.Wrap(err, "signing credential")
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating credential dir")
	}
	if err = os.WriteFile(s.path, []byte(tokenStr), 0o600); err != nil {
		return errors.Wrap(err, "writing credential")
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing credential")
	}
	return nil
}
