package course

import "strings"

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Filter narrows the public catalog. Zero fields match every course.
type Filter struct {
	Query string // title or instructor, case insensitive
	Tag   string
	Level Level
}

func (f Filter) match(c Course) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" &&
		!strings.Contains(strings.ToLower(c.Title), q) &&
		!strings.Contains(strings.ToLower(c.Instructor), q) {
		return false
	}
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	if f.Tag == "" {
		return true
	}
	for _, tag := range c.Tags {
		if strings.EqualFold(tag, f.Tag) {
			return true
		}
	}
	return false
}

// Published returns the published courses of dir matching f, ordered by id.
func Published(dir Directory, f Filter) []Course {
	courses := make([]Course, 0)
	for _, c := range dir.All() {
		if c.Status == StatusPublished && f.match(c) {
			courses = append(courses, c)
		}
	}
	return courses
}

// ByInstructor returns the courses taught by the given profile, whatever their status.
func ByInstructor(dir Directory, instructorID string) []Course {
	courses := make([]Course, 0)
	for _, c := range dir.All() {
		if c.InstructorID == instructorID {
			courses = append(courses, c)
		}
	}
	return courses
}

// CountByStatus returns the number of courses per status.
func CountByStatus(dir Directory) map[Status]int {
	counts := make(map[Status]int)
	for _, c := range dir.All() {
		counts[c.Status]++
	}
	return counts
}
