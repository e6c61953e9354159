package certificate

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/profile"
)

// ProgressReader reports the completion percentage of a course for a profile.
type ProgressReader interface {
	ProgressPercent(p profile.Profile, courseID int) int
}

type Service struct {
	repo     Repository
	progress ProgressReader
	mailer   core.EmailService
	log      core.Logger
	now      func() time.Time
}

func NewService(repo Repository, progress ProgressReader, mailer core.EmailService, logger core.Logger) *Service {
	return &Service{
		repo:     repo,
		progress: progress,
		mailer:   mailer,
		log:      logger,
		now:      time.Now,
	}
}

// IssueIfComplete issues the certificate of c to p once its progress reaches 100%.
// The bool reports whether a new certificate was issued; an existing one is returned as is.
func (svc *Service) IssueIfComplete(ctx context.Context, p profile.Profile, c course.Course) (Certificate, bool, error) {
	if svc.progress.ProgressPercent(p, c.ID) < 100 {
		return Certificate{}, false, nil
	}

	existing, err := svc.repo.GetCertificate(ctx, p.ID, c.ID)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, ErrNotFound):
		return Certificate{}, false, errors.Wrap(err, "getting certificate")
	}

	id := uuid.NewString()
	cert := Certificate{
		ID:             id,
		ProfileID:      p.ID,
		CourseID:       c.ID,
		CourseTitle:    c.Title,
		StudentName:    p.Name,
		InstructorName: c.Instructor,
		IssueDate:      svc.now().UTC(),
		QRCodeURL:      QRCodeURL(Code(id)),
		Sponsor:        c.Sponsor,
	}
	cert, err = svc.repo.CreateCertificate(ctx, cert)
	if err != nil {
		if errors.Is(err, ErrAlreadyIssued) {
			return cert, false, nil
		}
		return Certificate{}, false, errors.Wrap(err, "creating certificate")
	}

	svc.log.Info("certificate issued", p, map[string]interface{}{"course": c.ID, "certificate": cert.ID})
	if svc.mailer != nil {
		svc.mailer.SendMessages(&core.EmailMessage{
			To:           []mail.Address{{Name: p.Name, Address: p.Email}},
			Subject:      "Your certificate for " + c.Title,
			TemplateName: "certificate",
			TemplateData: cert,
		})
	}
	return cert, true, nil
}

// ListForProfile returns the certificates of the profile, oldest first.
func (svc *Service) ListForProfile(ctx context.Context, profileID string) ([]Certificate, error) {
	certs, err := svc.repo.QueryCertificatesByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "querying certificates")
	}
	return certs, nil
}
