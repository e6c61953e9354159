package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/synapse/core/profile"
	"github.com/trezcool/synapse/core/session"
)

const contextProfileKey = "profile"

// sessionMiddleware rejects the request when no profile is active, and stores a copy of the active one in the context.
func sessionMiddleware(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			p, ok := mgr.Current()
			if !ok {
				return session.ErrNoActiveSession
			}
			ctx.Set(contextProfileKey, p)
			return next(ctx)
		}
	}
}

func contextProfile(ctx echo.Context) (profile.Profile, bool) {
	p, ok := ctx.Get(contextProfileKey).(profile.Profile)
	return p, ok
}

func mustContextProfile(ctx echo.Context) (profile.Profile, error) {
	if p, ok := contextProfile(ctx); ok {
		return p, nil
	}
	return profile.Profile{}, session.ErrNoActiveSession
}

// intParam parses a path param; unparsable ids are not found.
func intParam(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}
