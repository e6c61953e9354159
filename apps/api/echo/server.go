package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/advisor"
	"github.com/trezcool/synapse/core/certificate"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/enrollment"
	"github.com/trezcool/synapse/core/payment"
	"github.com/trezcool/synapse/core/preference"
	"github.com/trezcool/synapse/core/profile"
	"github.com/trezcool/synapse/core/session"
)

type Deps struct {
	Config       *core.Config
	Logger       core.Logger
	Validate     *validator.Validate
	Translator   ut.Translator
	Session      *session.Manager
	Profiles     profile.Repository
	Courses      course.Directory
	Tracker      *enrollment.Tracker
	Advisor      *advisor.Service
	Payments     *payment.Service
	Certificates *certificate.Service
	Preferences  *preference.Store
}

type Server struct {
	addr        string
	app         *echo.Echo
	deps        *Deps
	errors      chan error
	shutdown    chan os.Signal
	unsubscribe func()
}

func NewServer(deps *Deps) *Server {
	s := &Server{
		addr:     deps.Config.Server.Addr,
		app:      echo.New(),
		deps:     deps,
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Config

	s.app.HideBanner = true
	s.app.Logger.SetLevel(log.INFO)
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	authed := sessionMiddleware(s.deps.Session)

	s.unsubscribe = registerSessionAPI(v1, s.deps)
	registerCourseAPI(v1, authed, s.deps)
	registerMeAPI(v1, authed, s.deps)
	registerAdminAPI(v1, authed, s.deps)
	registerAdvisorAPI(v1, s.deps)
	registerPreferenceAPI(v1, s.deps)
}

// Start listens until the server is shut down. Listening errors are sent to Errors().
func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.unsubscribe()
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	s.unsubscribe()
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Config.AppName+" API!")
}
