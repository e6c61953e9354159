package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type advisorApi struct {
	deps *Deps
}

func registerAdvisorAPI(g *echo.Group, deps *Deps) {
	api := advisorApi{deps: deps}

	ag := g.Group("/advisor")
	ag.POST("/career-path", api.careerPath)
	ag.POST("/timetable", api.timetable)
}

// Handlers

func (api *advisorApi) careerPath(ctx echo.Context) error {
	var data CareerPathRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CareerPathRequest")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	path := api.deps.Advisor.GenerateCareerPath(ctx.Request().Context(), data.Goal, api.deps.Courses.All())
	return ctx.JSON(http.StatusOK, path)
}

func (api *advisorApi) timetable(ctx echo.Context) error {
	var data TimetableRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TimetableRequest")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.deps.Advisor.GenerateTimetable(ctx.Request().Context(), data.Prompt))
}

type (
	CareerPathRequest struct {
		Goal string `json:"goal" validate:"required,notblank"`
	}

	TimetableRequest struct {
		Prompt string `json:"prompt" validate:"required,notblank"`
	}
)
