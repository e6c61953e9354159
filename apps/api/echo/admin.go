package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core/profile"
)

type adminApi struct {
	deps *Deps
}

func registerAdminAPI(g *echo.Group, authed echo.MiddlewareFunc, deps *Deps) {
	api := adminApi{deps: deps}

	ag := g.Group("/admin", authed, adminMiddleware)
	ag.GET("/profiles", api.queryProfiles)
}

// adminMiddleware must run after the session middleware.
func adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		p, err := mustContextProfile(ctx)
		if err != nil {
			return err
		}
		if !p.IsAdmin() {
			return errHttpForbidden
		}
		return next(ctx)
	}
}

// Handlers

func (api *adminApi) queryProfiles(ctx echo.Context) error {
	query := ProfilesQuery{Role: ctx.QueryParam("role")}
	if err := api.deps.Validate.Struct(query); err != nil {
		return err
	}

	profiles, err := api.deps.Profiles.QueryAllProfiles(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying profiles")
	}
	if query.Role == "" {
		return ctx.JSON(http.StatusOK, profiles)
	}
	filtered := make([]profile.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Role == profile.Role(query.Role) {
			filtered = append(filtered, p)
		}
	}
	return ctx.JSON(http.StatusOK, filtered)
}

type ProfilesQuery struct {
	Role string `json:"role" validate:"omitempty,role"`
}
