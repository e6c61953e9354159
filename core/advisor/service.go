package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/course"
)

var (
	errRateLimited = errors.New("rate limited")
	errNoGenerator = errors.New("no generator configured")

	correctAnswerTag  = "correctanswer"
	correctAnswerText = "the correct answer must be one of the options"
)

const (
	selectedCourseTitle = "Selected Course"
	variesDuration      = "Varies"
	dailyInsightPrompt  = "Generate a new personalized insight for a student's daily summary."
)

// Request is a single generation request. Schema is nil for free text.
type Request struct {
	Prompt string
	Schema *Schema
}

// Generator produces text from a prompt (an LLM backend).
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Service wraps a Generator and never fails: every error is logged and replaced by a fallback.
type Service struct {
	gen      Generator
	validate *validator.Validate
	limiter  *rate.Limiter
	timeout  time.Duration
	log      core.Logger
}

// NewService returns the advisory service. gen may be nil, in which case every call falls back.
func NewService(gen Generator, conf *core.Config, validate *validator.Validate, logger core.Logger) *Service {
	perMinute := conf.Gemini.RatePerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	return &Service{
		gen:      gen,
		validate: validate,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		timeout:  conf.Gemini.Timeout,
		log:      logger,
	}
}

// InitValidators registers the response validations on validate.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(quizQuestionStructValidation, QuizQuestion{})
	core.RegisterCustomTranslation(validate, translator, correctAnswerTag, correctAnswerText)
}

func quizQuestionStructValidation(sl validator.StructLevel) {
	q := sl.Current().Interface().(QuizQuestion)
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return
		}
	}
	sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", correctAnswerTag, "")
}

func (svc *Service) generate(ctx context.Context, req Request) (string, error) {
	if svc.gen == nil {
		return "", errNoGenerator
	}
	if !svc.limiter.Allow() {
		return "", errRateLimited
	}
	if svc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.timeout)
		defer cancel()
	}

	text, err := svc.gen.Generate(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "generating")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty response")
	}
	return text, nil
}

func (svc *Service) generateJSON(ctx context.Context, req Request, dst interface{}) error {
	text, err := svc.generate(ctx, req)
	if err != nil {
		return err
	}
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```json"), "```")
	if err = json.Unmarshal([]byte(strings.TrimSpace(text)), dst); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

func (svc *Service) fallback(op string, err error) {
	if errors.Is(err, errNoGenerator) {
		svc.log.Debug(fmt.Sprintf("advisor.%s: falling back", op), err)
		return
	}
	svc.log.Warn(fmt.Sprintf("advisor.%s: falling back", op), err)
}

// GenerateText answers a free text prompt.
func (svc *Service) GenerateText(ctx context.Context, prompt string) string {
	text, err := svc.generate(ctx, Request{Prompt: prompt})
	if err != nil {
		svc.fallback("GenerateText", err)
		return FallbackText
	}
	return text
}

// AskCourse answers a question in the context of a course.
func (svc *Service) AskCourse(ctx context.Context, c course.Course, question string) string {
	prompt := fmt.Sprintf("In the context of the course %q, answer the following question: %s", c.Title, question)
	return svc.GenerateText(ctx, prompt)
}

// DailyInsight returns a short personalised insight for the student dashboard.
func (svc *Service) DailyInsight(ctx context.Context) string {
	return svc.GenerateText(ctx, dailyInsightPrompt)
}

// GenerateQuiz returns a 2-question multiple-choice quiz about a course.
func (svc *Service) GenerateQuiz(ctx context.Context, courseTitle string) []QuizQuestion {
	prompt := fmt.Sprintf("Generate a 2-question multiple-choice quiz about %q. Each question should have 4 options and a correct answer.", courseTitle)

	var questions []QuizQuestion
	err := svc.generateJSON(ctx, Request{Prompt: prompt, Schema: quizSchema}, &questions)
	if err == nil {
		err = svc.validate.Struct(quiz{Questions: questions})
	}
	if err != nil {
		svc.fallback("GenerateQuiz", err)
		return FallbackQuiz()
	}
	return questions
}

type promptCourse struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Level       course.Level `json:"level"`
}

// GenerateCareerPath returns a 3-step learning path towards goal, picking from courses.
func (svc *Service) GenerateCareerPath(ctx context.Context, goal string, courses []course.Course) *CareerPath {
	catalog := make([]promptCourse, 0, len(courses))
	for _, c := range courses {
		catalog = append(catalog, promptCourse{ID: c.ID, Title: c.Title, Description: c.Description, Tags: c.Tags, Level: c.Level})
	}
	catalogJSON, _ := json.Marshal(catalog)

	prompt := fmt.Sprintf(`Given the following list of available courses: %s.
Generate a realistic career path for a %q.
The path must include a title, a brief description, an average salary, and a demand level (High, Medium, or Low).
The learning path must consist of exactly 3 steps in a logical order.
For each step, you must select the most appropriate course from the provided list and return its corresponding 'id' as 'courseId'.`,
		catalogJSON, goal)

	path := new(CareerPath)
	err := svc.generateJSON(ctx, Request{Prompt: prompt, Schema: careerPathSchema}, path)
	if err == nil {
		err = svc.validate.Struct(path)
	}
	if err != nil {
		svc.fallback("GenerateCareerPath", err)
		return FallbackCareerPath()
	}

	byID := make(map[int]course.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	sort.SliceStable(path.LearningPath, func(i, j int) bool { return path.LearningPath[i].Step < path.LearningPath[j].Step })
	for i, step := range path.LearningPath {
		if c, ok := byID[step.CourseID]; ok {
			path.LearningPath[i].Title = c.Title
			path.LearningPath[i].Duration = c.Duration
		} else {
			path.LearningPath[i].Title = selectedCourseTitle
			path.LearningPath[i].Duration = variesDuration
		}
	}
	return path
}

// GenerateTimetable returns a weekly study schedule for the given request.
func (svc *Service) GenerateTimetable(ctx context.Context, prompt string) Timetable {
	var tt Timetable
	err := svc.generateJSON(ctx, Request{Prompt: prompt, Schema: timetableSchema}, &tt)
	if err == nil && len(tt) == 0 {
		err = errors.New("empty timetable")
	}
	if err != nil {
		svc.fallback("GenerateTimetable", err)
		return FallbackTimetable()
	}
	return tt
}
