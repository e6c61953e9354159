package echoapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/certificate"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/enrollment"
	"github.com/trezcool/synapse/core/profile"
)

type courseApi struct {
	deps *Deps
}

func registerCourseAPI(g *echo.Group, authed echo.MiddlewareFunc, deps *Deps) {
	api := courseApi{deps: deps}

	cg := g.Group("/courses")
	cg.GET("", api.query)

	// detail endpoints
	dg := cg.Group("/:id", courseMiddleware(deps.Courses))
	dg.GET("", api.retrieve)
	dg.GET("/quiz", api.quiz)
	dg.POST("/ask", api.ask)

	// authed endpoints
	ag := dg.Group("", authed)
	ag.POST("/enroll", api.enroll)
	ag.POST("/checkout", api.checkout)
	ag.POST("/items/:item/toggle", api.toggleItem)
	ag.GET("/progress", api.progress)
}

const contextCourseKey = "course"

// courseMiddleware loads the course of the `:id` path param into the context.
func courseMiddleware(dir course.Directory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := intParam(ctx, "id")
			if err != nil {
				return err
			}
			c, ok := dir.FindCourseByID(id)
			if !ok {
				return enrollment.ErrCourseNotFound
			}
			ctx.Set(contextCourseKey, c)
			return next(ctx)
		}
	}
}

func contextCourse(ctx echo.Context) (course.Course, error) {
	if c, ok := ctx.Get(contextCourseKey).(course.Course); ok {
		return c, nil
	}
	return course.Course{}, errors.New("course object not found in echo.Context")
}

// Handlers

// query lists the published courses, optionally filtered by `q` (title or instructor), `tag` & `level`.
func (api *courseApi) query(ctx echo.Context) error {
	filter := course.Filter{
		Query: ctx.QueryParam("q"),
		Tag:   strings.TrimSpace(ctx.QueryParam("tag")),
		Level: course.Level(ctx.QueryParam("level")),
	}
	if filter.Level != "" && !filter.Level.IsValid() {
		return core.NewValidationError(errInvalidQuery, core.FieldError{Field: "level", Error: "unknown level"})
	}
	return ctx.JSON(http.StatusOK, course.Published(api.deps.Courses, filter))
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseApi) enroll(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	p, err := mustContextProfile(ctx)
	if err != nil {
		return err
	}

	var outcome enrollment.Outcome
	p, err = api.deps.Session.Apply(ctx.Request().Context(), p.ID, func(draft *profile.Profile) error {
		o, eErr := api.deps.Tracker.Enroll(draft, c.ID)
		outcome = o
		return eErr
	})
	if err != nil {
		return errors.Wrap(err, "enrolling")
	}

	if outcome == enrollment.PaymentRequired {
		return ctx.JSON(http.StatusPaymentRequired, EnrollResponse{Outcome: outcome.String(), Price: c.Price})
	}
	return ctx.JSON(http.StatusOK, EnrollResponse{Outcome: outcome.String(), Profile: &p})
}

func (api *courseApi) checkout(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	p, err := mustContextProfile(ctx)
	if err != nil {
		return err
	}

	if p.IsEnrolled(c.ID) {
		return ctx.JSON(http.StatusOK, EnrollResponse{Outcome: enrollment.Enrolled.String(), Profile: &p})
	}

	var updated profile.Profile
	err = api.deps.Payments.Checkout(ctx.Request().Context(), c, func(reqCtx context.Context, courseID int) error {
		var aErr error
		updated, aErr = api.deps.Session.Apply(reqCtx, p.ID, func(draft *profile.Profile) error {
			return api.deps.Tracker.ConfirmPaidEnrollment(draft, courseID)
		})
		return aErr
	})
	if err != nil {
		return errors.Wrap(err, "checking out")
	}
	return ctx.JSON(http.StatusOK, EnrollResponse{Outcome: enrollment.Enrolled.String(), Profile: &updated})
}

func (api *courseApi) toggleItem(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	itemID, err := intParam(ctx, "item")
	if err != nil {
		return err
	}
	p, err := mustContextProfile(ctx)
	if err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	p, err = api.deps.Session.Apply(reqCtx, p.ID, func(draft *profile.Profile) error {
		return api.deps.Tracker.ToggleSyllabusItemCompletion(draft, c.ID, itemID)
	})
	if err != nil {
		return errors.Wrap(err, "toggling syllabus item")
	}

	resp := ProgressResponse{
		CourseID: c.ID,
		Percent:  api.deps.Tracker.ProgressPercent(p, c.ID),
		Profile:  &p,
	}
	cert, issued, err := api.deps.Certificates.IssueIfComplete(reqCtx, p, c)
	if err != nil {
		return errors.Wrap(err, "issuing certificate")
	}
	if issued {
		resp.Certificate = &cert
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *courseApi) progress(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	p, err := mustContextProfile(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ProgressResponse{CourseID: c.ID, Percent: api.deps.Tracker.ProgressPercent(p, c.ID)})
}

func (api *courseApi) ask(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	var data AskRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AskRequest")
	}
	if err = api.deps.Validate.Struct(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TextResponse{Text: api.deps.Advisor.AskCourse(ctx.Request().Context(), c, data.Question)})
}

func (api *courseApi) quiz(ctx echo.Context) error {
	c, err := contextCourse(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.deps.Advisor.GenerateQuiz(ctx.Request().Context(), c.Title))
}

type (
	EnrollResponse struct {
		Outcome string           `json:"outcome"`
		Price   *float64         `json:"price,omitempty"`
		Profile *profile.Profile `json:"profile,omitempty"`
	}

	ProgressResponse struct {
		CourseID    int                      `json:"course_id"`
		Percent     int                      `json:"percent"`
		Profile     *profile.Profile         `json:"profile,omitempty"`
		Certificate *certificate.Certificate `json:"certificate,omitempty"`
	}

	AskRequest struct {
		Question string `json:"question" validate:"required,notblank"`
	}

	TextResponse struct {
		Text string `json:"text"`
	}
)
