package echoapi

import (
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/profile"
	"github.com/trezcool/synapse/core/session"
)

type sessionApi struct {
	mgr      *session.Manager
	deps     *Deps
	revision *atomic.Uint64 // bumped on every session change
}

// registerSessionAPI returns the func detaching the api from the session manager.
func registerSessionAPI(g *echo.Group, deps *Deps) (unsubscribe func()) {
	api := sessionApi{mgr: deps.Session, deps: deps, revision: new(atomic.Uint64)}
	unsubscribe = api.mgr.Subscribe(api.observe)

	sg := g.Group("/session")
	sg.GET("", api.retrieve)
	sg.POST("/login", api.login)
	sg.POST("/signup", api.signup)
	sg.POST("/logout", api.logout)
	return unsubscribe
}

func (api *sessionApi) observe(c session.Change) {
	rev := api.revision.Add(1)
	extras := map[string]interface{}{"revision": rev}
	if c.Profile != nil {
		api.deps.Logger.Debug("session "+c.Kind.String(), extras, *c.Profile)
		return
	}
	api.deps.Logger.Debug("session "+c.Kind.String(), extras)
}

// Handlers

func (api *sessionApi) retrieve(ctx echo.Context) error {
	resp := SessionResponse{Loading: api.mgr.Loading(), Revision: api.revision.Load()}
	if p, ok := api.mgr.Current(); ok {
		resp.Profile = &p
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.deps); err != nil {
		return err
	}

	p, err := api.mgr.Login(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *sessionApi) signup(ctx echo.Context) error {
	var data profile.NewProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProfile")
	}

	p, err := api.mgr.Signup(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "signing up")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	if err := api.mgr.Logout(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password"`
	}

	// SessionResponse.Revision changes whenever the session does, so clients can poll for changes.
	SessionResponse struct {
		Loading  bool             `json:"loading"`
		Revision uint64           `json:"revision"`
		Profile  *profile.Profile `json:"profile"`
	}
)

func (lr *LoginRequest) Validate(deps *Deps) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return deps.Validate.Struct(lr)
}
