package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(courses []Course) []int {
	res := make([]int, 0, len(courses))
	for _, c := range courses {
		res = append(res, c.ID)
	}
	return res
}

func TestPublished(t *testing.T) {
	dir := SeedCatalog()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{name: "no filter", want: []int{1, 2, 4, 6, 7}},
		{name: "title", filter: Filter{Query: "  python "}, want: []int{6}},
		{name: "instructor", filter: Filter{Query: "ROSTOVA"}, want: []int{1}},
		{name: "tag", filter: Filter{Tag: "data science"}, want: []int{4, 6}},
		{name: "level", filter: Filter{Level: LevelBeginner}, want: []int{2, 6}},
		{name: "query & tag", filter: Filter{Query: "bootcamp", Tag: "Python"}, want: []int{4}},
		{name: "unpublished only", filter: Filter{Tag: "Blockchain"}, want: []int{}},
		{name: "no match", filter: Filter{Query: "cobol"}, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Published(dir, tt.filter)))
		})
	}
}

func TestByInstructor(t *testing.T) {
	dir := SeedCatalog()
	assert.Equal(t, []int{1, 5, 8}, ids(ByInstructor(dir, "instructor123")))
	assert.Equal(t, []int{2}, ids(ByInstructor(dir, "instructor456")))
	assert.Empty(t, ByInstructor(dir, "student123"))
}

func TestCountByStatus(t *testing.T) {
	assert.Equal(t, map[Status]int{
		StatusPublished:       5,
		StatusPendingApproval: 2,
		StatusDraft:           1,
	}, CountByStatus(SeedCatalog()))
}

func TestLevel_IsValid(t *testing.T) {
	assert.True(t, LevelAdvanced.IsValid())
	assert.False(t, Level("Expert").IsValid())
	assert.False(t, Level("").IsValid())
}
