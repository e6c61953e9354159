package certificate

import (
	"fmt"
	"net/url"
	"time"

	"github.com/trezcool/synapse/core/course"
)

const qrCodeBaseURL = "https://api.qrserver.com/v1/create-qr-code/"

// Certificate is issued once per (profile, course) when the course progress reaches 100%.
type Certificate struct {
	ID             string          `json:"id"`
	ProfileID      string          `json:"profile_id"`
	CourseID       int             `json:"course_id"`
	CourseTitle    string          `json:"course_title"`
	StudentName    string          `json:"student_name"`
	InstructorName string          `json:"instructor_name"`
	IssueDate      time.Time       `json:"issue_date"` // UTC
	QRCodeURL      string          `json:"qr_code_url"`
	Sponsor        *course.Sponsor `json:"sponsor,omitempty"`
}

// IssueDay is the issue date as shown on the certificate.
func (c Certificate) IssueDay() string {
	return c.IssueDate.Format("2006-01-02")
}

// QRCodeURL returns the url of the QR code image encoding the certificate code.
func QRCodeURL(code string) string {
	return qrCodeBaseURL + "?size=150x150&data=" + url.QueryEscape(code)
}

// Code is the verification code encoded in the QR code.
func Code(id string) string {
	return fmt.Sprintf("SYNAPSE-CERT-%s", id)
}
