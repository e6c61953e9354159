package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/synapse/core/certificate"
)

type certificateRepository struct {
	db *certificateTable
}

func NewCertificateRepository(db *DB) certificate.Repository {
	return &certificateRepository{db: db.certificate}
}

func (repo *certificateRepository) CreateCertificate(_ context.Context, cert certificate.Certificate) (certificate.Certificate, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, c := range repo.db.table {
		if c.ProfileID == cert.ProfileID && c.CourseID == cert.CourseID {
			return c, certificate.ErrAlreadyIssued
		}
	}
	repo.db.table = append(repo.db.table, cert)
	return cert, nil
}

func (repo *certificateRepository) GetCertificate(_ context.Context, profileID string, courseID int) (certificate.Certificate, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, c := range repo.db.table {
		if c.ProfileID == profileID && c.CourseID == courseID {
			return c, nil
		}
	}
	return certificate.Certificate{}, certificate.ErrNotFound
}

func (repo *certificateRepository) QueryCertificatesByProfile(_ context.Context, profileID string) ([]certificate.Certificate, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	certs := make([]certificate.Certificate, 0)
	for _, c := range repo.db.table {
		if c.ProfileID == profileID {
			certs = append(certs, c)
		}
	}
	sort.SliceStable(certs, func(i, j int) bool { return certs[i].IssueDate.Before(certs[j].IssueDate) })
	return certs, nil
}
