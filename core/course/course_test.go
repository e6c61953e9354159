package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	dir := SeedCatalog()

	all := dir.All()
	require.Len(t, all, 8)
	for i, c := range all {
		assert.Equal(t, i+1, c.ID)
		assert.NotEmpty(t, c.Syllabus, "course %d", c.ID)
	}

	tests := []struct {
		id       int
		wantPaid bool
		wantLen  int
	}{
		{id: 1, wantLen: 5},
		{id: 3, wantLen: 3},
		{id: 6, wantPaid: true, wantLen: 5},
		{id: 7, wantPaid: true, wantLen: 4},
		{id: 8, wantPaid: true, wantLen: 5},
	}
	for _, tt := range tests {
		c, ok := dir.FindCourseByID(tt.id)
		require.True(t, ok, "course %d", tt.id)
		assert.Equal(t, tt.wantPaid, c.IsPaid(), "course %d", tt.id)
		assert.Len(t, c.SyllabusItemIDs(), tt.wantLen, "course %d", tt.id)
	}

	_, ok := dir.FindCourseByID(999)
	assert.False(t, ok)
}

func TestCourse_IsPaid(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		want  bool
	}{
		{name: "no price", price: nil},
		{name: "zero", price: price(0)},
		{name: "priced", price: price(9.99), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Course{Price: tt.price}.IsPaid())
		})
	}
}

func TestCourse_HasSyllabusItem(t *testing.T) {
	c := Course{Syllabus: []SyllabusItem{{ID: 601}, {ID: 602}}}
	assert.True(t, c.HasSyllabusItem(602))
	assert.False(t, c.HasSyllabusItem(999))
	assert.Equal(t, []int{601, 602}, c.SyllabusItemIDs())
}

func TestNewCatalog(t *testing.T) {
	dir := NewCatalog(Course{ID: 3, Title: "c"}, Course{ID: 1, Title: "a"}, Course{ID: 3, Title: "c2"})
	all := dir.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "c2", all[1].Title)

	empty := NewCatalog()
	assert.Empty(t, empty.All())
}
