package enrollment

import (
	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/profile"
)

var (
	// errors
	ErrCourseNotFound       = core.NewDomainError("course not found")
	ErrNotEnrolled          = core.NewDomainError("not enrolled")
	ErrSyllabusItemNotFound = core.NewDomainError("syllabus item not found")
)

// Outcome is the result of an enrollment request.
type Outcome int

const (
	Enrolled Outcome = iota + 1
	PaymentRequired
)

func (o Outcome) String() string {
	switch o {
	case Enrolled:
		return "enrolled"
	case PaymentRequired:
		return "payment_required"
	}
	return "unknown"
}

// CourseProgress is an enrolled course along with the completion percentage.
type CourseProgress struct {
	Course  course.Course `json:"course"`
	Percent int           `json:"percent"`
}

// Tracker applies enrollment & progress rules to a profile.
// It holds no profile state: the profile is passed in on every call and mutated in place.
type Tracker struct {
	dir course.Directory
}

func NewTracker(dir course.Directory) *Tracker {
	return &Tracker{dir: dir}
}

// Enroll enrolls p into a free course, or reports that a payment is required first.
// Enrolling again is a no-op that keeps the existing progress.
func (t *Tracker) Enroll(p *profile.Profile, courseID int) (Outcome, error) {
	c, ok := t.dir.FindCourseByID(courseID)
	if !ok {
		return 0, ErrCourseNotFound
	}
	if p.IsEnrolled(courseID) {
		return Enrolled, nil
	}
	if c.IsPaid() {
		return PaymentRequired, nil
	}
	enroll(p, courseID)
	return Enrolled, nil
}

// ConfirmPaidEnrollment enrolls p after a successful payment. The payment itself is not checked.
func (t *Tracker) ConfirmPaidEnrollment(p *profile.Profile, courseID int) error {
	if _, ok := t.dir.FindCourseByID(courseID); !ok {
		return ErrCourseNotFound
	}
	enroll(p, courseID)
	return nil
}

func enroll(p *profile.Profile, courseID int) {
	p.EnsureState()
	p.EnrolledCourseIDs.Add(courseID)
	if _, ok := p.Progress[courseID]; !ok {
		p.Progress[courseID] = profile.IDSet{}
	}
}

// ToggleSyllabusItemCompletion marks an item as completed, or back to not completed.
func (t *Tracker) ToggleSyllabusItemCompletion(p *profile.Profile, courseID, itemID int) error {
	if !p.IsEnrolled(courseID) {
		return ErrNotEnrolled
	}
	c, ok := t.dir.FindCourseByID(courseID)
	if !ok {
		return ErrCourseNotFound
	}
	if !c.HasSyllabusItem(itemID) {
		return ErrSyllabusItemNotFound
	}

	p.EnsureState()
	items, ok := p.Progress[courseID]
	if !ok || items == nil {
		items = profile.IDSet{}
		p.Progress[courseID] = items
	}
	if items.Has(itemID) {
		items.Remove(itemID)
	} else {
		items.Add(itemID)
	}
	return nil
}

// ProgressPercent returns the share of completed syllabus items, rounded half up (0 - 100).
// Unknown courses and courses without syllabus are at 0%.
func (t *Tracker) ProgressPercent(p profile.Profile, courseID int) int {
	c, ok := t.dir.FindCourseByID(courseID)
	if !ok {
		return 0
	}
	return percent(p, c)
}

func percent(p profile.Profile, c course.Course) int {
	total := len(c.Syllabus)
	if total == 0 {
		return 0
	}
	completed := p.CompletedItems(c.ID)
	var done int
	for _, item := range c.Syllabus {
		if completed.Has(item.ID) {
			done++
		}
	}
	return (200*done + total) / (2 * total)
}

// Dashboard lists the enrolled courses with their progress, ordered by course id.
// Enrolled ids missing from the directory are skipped.
func (t *Tracker) Dashboard(p profile.Profile) []CourseProgress {
	ids := p.EnrolledCourseIDs.Sorted()
	out := make([]CourseProgress, 0, len(ids))
	for _, id := range ids {
		c, ok := t.dir.FindCourseByID(id)
		if !ok {
			continue
		}
		out = append(out, CourseProgress{Course: c, Percent: percent(p, c)})
	}
	return out
}
