package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core/preference"
)

type preferenceApi struct {
	store *preference.Store
	deps  *Deps
}

func registerPreferenceAPI(g *echo.Group, deps *Deps) {
	api := preferenceApi{store: deps.Preferences, deps: deps}

	pg := g.Group("/preferences")
	pg.GET("/theme", api.theme)
	pg.PUT("/theme", api.setTheme)
	pg.POST("/theme/toggle", api.toggleTheme)
}

// Handlers

func (api *preferenceApi) theme(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ThemeBody{Theme: string(api.store.Theme())})
}

func (api *preferenceApi) setTheme(ctx echo.Context) error {
	var data ThemeBody
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ThemeBody")
	}
	if err := api.deps.Validate.Struct(data); err != nil {
		return err
	}
	if err := api.store.SetTheme(preference.Theme(data.Theme)); err != nil {
		return errors.Wrap(err, "setting theme")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *preferenceApi) toggleTheme(ctx echo.Context) error {
	theme, err := api.store.ToggleTheme()
	if err != nil {
		return errors.Wrap(err, "toggling theme")
	}
	return ctx.JSON(http.StatusOK, ThemeBody{Theme: string(theme)})
}

type ThemeBody struct {
	Theme string `json:"theme" validate:"required,theme"`
}
