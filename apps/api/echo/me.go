package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/enrollment"
	"github.com/trezcool/synapse/core/profile"
)

type meApi struct {
	deps *Deps
}

func registerMeAPI(g *echo.Group, authed echo.MiddlewareFunc, deps *Deps) {
	api := meApi{deps: deps}

	mg := g.Group("/me", authed)
	mg.GET("/dashboard", api.dashboard)
	mg.GET("/certificates", api.certificates)
	mg.GET("/insight", api.insight)
}

// Handlers

// dashboard depends on the role: students get their courses & progress, instructors the courses they teach
// and admins the platform stats.
func (api *meApi) dashboard(ctx echo.Context) error {
	p, err := mustContextProfile(ctx)
	if err != nil {
		return err
	}

	switch {
	case p.IsInstructor():
		return ctx.JSON(http.StatusOK, InstructorDashboardResponse{
			Profile: p,
			Courses: course.ByInstructor(api.deps.Courses, p.ID),
		})
	case p.IsAdmin():
		profiles, err := api.deps.Profiles.QueryAllProfiles(ctx.Request().Context())
		if err != nil {
			return errors.Wrap(err, "querying profiles")
		}
		return ctx.JSON(http.StatusOK, AdminDashboardResponse{
			Profile:         p,
			TotalUsers:      len(profiles),
			TotalCourses:    len(api.deps.Courses.All()),
			PendingApproval: course.CountByStatus(api.deps.Courses)[course.StatusPendingApproval],
		})
	}
	return ctx.JSON(http.StatusOK, DashboardResponse{
		Profile:    p,
		XPProgress: p.XPProgress(),
		Courses:    api.deps.Tracker.Dashboard(p),
	})
}

func (api *meApi) certificates(ctx echo.Context) error {
	p, err := mustContextProfile(ctx)
	if err != nil {
		return err
	}
	certs, err := api.deps.Certificates.ListForProfile(ctx.Request().Context(), p.ID)
	if err != nil {
		return errors.Wrap(err, "listing certificates")
	}
	return ctx.JSON(http.StatusOK, certs)
}

func (api *meApi) insight(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, TextResponse{Text: api.deps.Advisor.DailyInsight(ctx.Request().Context())})
}

type (
	DashboardResponse struct {
		Profile    profile.Profile             `json:"profile"`
		XPProgress int                         `json:"xp_progress"`
		Courses    []enrollment.CourseProgress `json:"courses"`
	}

	InstructorDashboardResponse struct {
		Profile profile.Profile `json:"profile"`
		Courses []course.Course `json:"courses"`
	}

	AdminDashboardResponse struct {
		Profile         profile.Profile `json:"profile"`
		TotalUsers      int             `json:"total_users"`
		TotalCourses    int             `json:"total_courses"`
		PendingApproval int             `json:"pending_approval"`
	}
)
