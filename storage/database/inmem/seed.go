package inmemdb

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core/certificate"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/profile"
)

var seededAt = time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)

// SeedProfiles returns the default identities, in insertion order.
func SeedProfiles() []profile.Profile {
	avatar := func(seed string) string { return "https://i.pravatar.cc/100?u=" + seed }
	return []profile.Profile{
		{
			ID:                "student123",
			Name:              "Alex Johnson",
			Role:              profile.RoleStudent,
			Email:             "alex@test.com",
			AvatarURL:         avatar("alex-johnson"),
			XP:                7500,
			Streak:            &profile.Streak{Current: 14, Longest: 21},
			Interests:         []string{"Cloud", "DevOps", "UX", "UI"},
			EnrolledCourseIDs: profile.NewIDSet(6, 2, 8),
			Progress: map[int]profile.IDSet{
				6: profile.NewIDSet(601, 602),
				2: profile.NewIDSet(201),
			},
			CreatedAt: seededAt,
		},
		{ID: "instructor123", Name: "Dr. Eva Rostova", Role: profile.RoleInstructor, Email: "eva@test.com", AvatarURL: avatar("eva-rostova"), CreatedAt: seededAt},
		{ID: "admin123", Name: "Sys Admin", Role: profile.RoleAdmin, Email: "admin@test.com", AvatarURL: avatar("sys-admin"), CreatedAt: seededAt},
		{ID: "student456", Name: "Ben Carter", Role: profile.RoleStudent, Email: "ben.c@synapse.io", AvatarURL: avatar("ben-carter"), CreatedAt: seededAt},
		{ID: "student789", Name: "Chloe Wang", Role: profile.RoleStudent, Email: "chloe.w@synapse.io", AvatarURL: avatar("chloe-wang"), CreatedAt: seededAt},
		{ID: "instructor456", Name: "Johnathan Peck", Role: profile.RoleInstructor, Email: "john.p@synapse.io", AvatarURL: avatar("john-peck"), CreatedAt: seededAt},
	}
}

// SeedCertificates returns the certificates already held by the seeded students.
func SeedCertificates() []certificate.Certificate {
	truScholar := course.SponsorTruScholar
	return []certificate.Certificate{
		{
			ID:             "cert-101-py",
			ProfileID:      "student123",
			CourseID:       6,
			CourseTitle:    "Introduction to Python for Data Science",
			StudentName:    "Alex Johnson",
			InstructorName: "Dr. Angela Yu",
			IssueDate:      time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
			QRCodeURL:      certificate.QRCodeURL("SYNAPSE-CERT-101-PY"),
		},
		{
			ID:             "cert-202-bc",
			ProfileID:      "student123",
			CourseID:       3,
			CourseTitle:    "Blockchain-based Certification Systems",
			StudentName:    "Alex Johnson",
			InstructorName: "Maria Alverez",
			IssueDate:      time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
			QRCodeURL:      certificate.QRCodeURL("SYNAPSE-CERT-202-BC"),
			Sponsor:        &truScholar,
		},
	}
}

// Seed loads the default profiles & certificates into db.
func Seed(ctx context.Context, db *DB) error {
	profiles := NewProfileRepository(db)
	for _, p := range SeedProfiles() {
		if _, err := profiles.CreateProfile(ctx, p); err != nil {
			return errors.Wrapf(err, "seeding profile %s", p.ID)
		}
	}
	certs := NewCertificateRepository(db)
	for _, c := range SeedCertificates() {
		if _, err := certs.CreateCertificate(ctx, c); err != nil {
			return errors.Wrapf(err, "seeding certificate %s", c.ID)
		}
	}
	return nil
}
