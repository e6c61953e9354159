package advisor

// Demand levels of a career path.
const (
	DemandHigh   = "High"
	DemandMedium = "Medium"
	DemandLow    = "Low"
)

type QuizQuestion struct {
	Question      string   `json:"question" validate:"required,notblank"`
	Options       []string `json:"options" validate:"len=4,unique,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

type CareerPathStep struct {
	Step     int    `json:"step" validate:"min=1"`
	CourseID int    `json:"courseId" validate:"required"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

type CareerPath struct {
	Title        string           `json:"title" validate:"required,notblank"`
	Description  string           `json:"description" validate:"required"`
	AvgSalary    string           `json:"avgSalary" validate:"required"`
	Demand       string           `json:"demand" validate:"oneof=High Medium Low"`
	LearningPath []CareerPathStep `json:"learningPath" validate:"len=3,dive"`
}

// Timetable maps a week label (eg. "Week 1") to its tasks.
type Timetable map[string][]string

type quiz struct {
	Questions []QuizQuestion `validate:"min=1,dive"`
}

// Schema describes the expected JSON shape of a generated response.
type Schema struct {
	Type        SchemaType
	Description string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

var (
	quizSchema = &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"question":      {Type: TypeString},
				"options":       {Type: TypeArray, Items: &Schema{Type: TypeString}},
				"correctAnswer": {Type: TypeString},
			},
			Required: []string{"question", "options", "correctAnswer"},
		},
	}

	careerPathSchema = &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":       {Type: TypeString},
			"description": {Type: TypeString},
			"avgSalary":   {Type: TypeString},
			"demand":      {Type: TypeString},
			"learningPath": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"step":     {Type: TypeInteger},
						"courseId": {Type: TypeInteger},
					},
					Required: []string{"step", "courseId"},
				},
			},
		},
		Required: []string{"title", "description", "avgSalary", "demand", "learningPath"},
	}

	timetableSchema = &Schema{
		Type:        TypeObject,
		Description: "A JSON object where keys are week numbers (e.g., 'Week 1') and values are arrays of strings representing tasks for that week.",
		Properties: map[string]*Schema{
			"Week 1": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"Week 2": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"Week 3": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"Week 4": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
	}
)
