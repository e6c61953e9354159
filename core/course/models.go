package course

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

type Status string

const (
	StatusPublished       Status = "Published"
	StatusDraft           Status = "Draft"
	StatusPendingApproval Status = "Pending Approval"
)

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentPDF   ContentType = "pdf"
	ContentQuiz  ContentType = "quiz"
)

type Sponsor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SyllabusItem struct {
	ID          int         `json:"id"`
	Module      int         `json:"module"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Duration    string      `json:"duration"`
	ContentType ContentType `json:"content_type"`
	ContentURL  string      `json:"content_url"`
}

type Course struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Instructor   string         `json:"instructor"`
	InstructorID string         `json:"instructor_id,omitempty"`
	Sponsor      *Sponsor       `json:"sponsor,omitempty"`
	Price        *float64       `json:"price,omitempty"` // nil: free
	Level        Level          `json:"level"`
	Duration     string         `json:"duration"`
	Rating       float64        `json:"rating"`
	Enrollments  int            `json:"enrollments"`
	IsFeatured   bool           `json:"is_featured"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Tags         []string       `json:"tags"`
	Status       Status         `json:"status"`
	Description  string         `json:"description"`
	Syllabus     []SyllabusItem `json:"syllabus"`
}

// IsPaid reports whether enrolling requires a payment.
func (c Course) IsPaid() bool {
	return c.Price != nil && *c.Price > 0
}

func (c Course) HasSyllabusItem(id int) bool {
	for _, item := range c.Syllabus {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (c Course) SyllabusItemIDs() []int {
	ids := make([]int, 0, len(c.Syllabus))
	for _, item := range c.Syllabus {
		ids = append(ids, item.ID)
	}
	return ids
}
