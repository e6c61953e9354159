package profile

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/synapse/core"
)

type Role string

// Roles
const (
	RoleStudent    Role = "Student"
	RoleInstructor Role = "Instructor"
	RoleAdmin      Role = "Admin"
)

var AllRoles = []Role{RoleStudent, RoleInstructor, RoleAdmin}

func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// NextLevelXP is the amount of experience points needed to level up.
const NextLevelXP = 10000

type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Profile is a user's identity plus their enrollment & progress state.
// Role is set once at creation and never changed afterwards.
type Profile struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Role              Role          `json:"role"`
	Email             string        `json:"email"`
	AvatarURL         string        `json:"avatar_url,omitempty"`
	XP                int           `json:"xp,omitempty"`
	Streak            *Streak       `json:"streak,omitempty"`
	Interests         []string      `json:"interests,omitempty"`
	EnrolledCourseIDs IDSet         `json:"enrolled_course_ids"`
	Progress          map[int]IDSet `json:"progress"`
	PasswordHash      []byte        `json:"-"`
	CreatedAt         time.Time     `json:"created_at"`
}

func (p *Profile) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = hash
	return nil
}

func (p *Profile) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(p.PasswordHash, []byte(pwd))
}

func (p *Profile) IsStudent() bool    { return p.Role == RoleStudent }
func (p *Profile) IsInstructor() bool { return p.Role == RoleInstructor }
func (p *Profile) IsAdmin() bool      { return p.Role == RoleAdmin }

func (p *Profile) IsEnrolled(courseID int) bool {
	return p.EnrolledCourseIDs.Has(courseID)
}

// CompletedItems returns the completed syllabus items of a course (never nil).
func (p *Profile) CompletedItems(courseID int) IDSet {
	if items, ok := p.Progress[courseID]; ok && items != nil {
		return items
	}
	return IDSet{}
}

// XPProgress returns the progress towards the next level, in percent (0 - 100).
func (p *Profile) XPProgress() int {
	if p.XP <= 0 {
		return 0
	}
	if p.XP >= NextLevelXP {
		return 100
	}
	return p.XP * 100 / NextLevelXP
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	c := p
	c.EnrolledCourseIDs = p.EnrolledCourseIDs.Clone()
	if p.Progress != nil {
		c.Progress = make(map[int]IDSet, len(p.Progress))
		for cid, items := range p.Progress {
			c.Progress[cid] = items.Clone()
		}
	}
	if p.Streak != nil {
		s := *p.Streak
		c.Streak = &s
	}
	if p.Interests != nil {
		c.Interests = append([]string(nil), p.Interests...)
	}
	if p.PasswordHash != nil {
		c.PasswordHash = append([]byte(nil), p.PasswordHash...)
	}
	return c
}

// EnsureState makes sure the enrollment & progress containers exist.
func (p *Profile) EnsureState() {
	if p.EnrolledCourseIDs == nil {
		p.EnrolledCourseIDs = IDSet{}
	}
	if p.Progress == nil {
		p.Progress = make(map[int]IDSet)
	}
}

// NewProfile contains the information needed to sign up.
type NewProfile struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

func (np *NewProfile) Validate(validate *validator.Validate) error {
	np.Email = core.CleanString(np.Email, true /* lower */)
	return validate.Struct(np)
}
