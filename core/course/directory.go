package course

import "sort"

// Directory is the read-only course catalog.
type Directory interface {
	FindCourseByID(id int) (Course, bool)
	// All returns every course ordered by id.
	All() []Course
}

type catalog struct {
	courses map[int]Course
	ids     []int
}

// NewCatalog returns a static in-memory Directory. Later duplicates of an id win.
func NewCatalog(courses ...Course) Directory {
	cat := &catalog{courses: make(map[int]Course, len(courses))}
	for _, c := range courses {
		if _, ok := cat.courses[c.ID]; !ok {
			cat.ids = append(cat.ids, c.ID)
		}
		cat.courses[c.ID] = c
	}
	sort.Ints(cat.ids)
	return cat
}

func (cat *catalog) FindCourseByID(id int) (Course, bool) {
	c, ok := cat.courses[id]
	return c, ok
}

func (cat *catalog) All() []Course {
	all := make([]Course, 0, len(cat.ids))
	for _, id := range cat.ids {
		all = append(all, cat.courses[id])
	}
	return all
}
