package dig_container

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/synapse/apps/api/echo"
	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/advisor"
	"github.com/trezcool/synapse/core/certificate"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/enrollment"
	"github.com/trezcool/synapse/core/payment"
	"github.com/trezcool/synapse/core/preference"
	"github.com/trezcool/synapse/core/profile"
	"github.com/trezcool/synapse/core/session"
	"github.com/trezcool/synapse/services/ai/gemini"
	emailsvc "github.com/trezcool/synapse/services/email"
	logsvc "github.com/trezcool/synapse/services/logger"
	"github.com/trezcool/synapse/storage/credential"
	inmemdb "github.com/trezcool/synapse/storage/database/inmem"
)

type NewConfigFunc func() *core.Config

type ServerParam struct {
	dig.In

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

func newLogger(conf *core.Config) core.Logger {
	var out io.Writer = os.Stdout
	if conf.TestMode {
		out = io.Discard
	}
	return logsvc.NewRollbarLogger(log.New(out, "API : ", log.LstdFlags), conf)
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := core.NewValidator(translator)
	profile.InitValidators(validate, translator)
	advisor.InitValidators(validate, translator)
	preference.InitValidators(validate, translator)
	return validate
}

func newDB(logger core.Logger) *inmemdb.DB {
	db := inmemdb.Open()
	if err := inmemdb.Seed(context.Background(), db); err != nil {
		logger.Fatal(fmt.Sprintf("seeding database: %v", err), err)
	}
	return db
}

func newSessionManager(
	conf *core.Config,
	profiles profile.Repository,
	credentials session.CredentialStore,
	validate *validator.Validate,
	mailer core.EmailService,
	logger core.Logger,
) (*session.Manager, error) {
	policy, err := session.NewPolicy(conf)
	if err != nil {
		return nil, err
	}
	return session.NewManager(session.Deps{
		Profiles:    profiles,
		Credentials: credentials,
		Policy:      policy,
		Validate:    validate,
		Mailer:      mailer,
		Logger:      logger,
	}), nil
}

// newGenerator returns a nil Generator (not a nil *gemini.Client) when no API key is set.
func newGenerator(conf *core.Config) (advisor.Generator, error) {
	client, err := gemini.NewClient(context.Background(), conf)
	if err != nil || client == nil {
		return nil, err
	}
	return client, nil
}

func newPaymentGateway(conf *core.Config) payment.Gateway {
	return payment.MockGateway{Delay: conf.Payment.Delay}
}

func newPreferenceStore(conf *core.Config) (*preference.Store, error) {
	return preference.NewStore(conf.Preferences.Path)
}

func newServer(p ServerParam) *echoapi.Server {
	return echoapi.NewServer(&echoapi.Deps{
		Config:       p.Config,
		Logger:       p.Logger,
		Validate:     p.Validate,
		Translator:   p.Translator,
		Session:      p.Session,
		Profiles:     p.Profiles,
		Courses:      p.Courses,
		Tracker:      p.Tracker,
		Advisor:      p.Advisor,
		Payments:     p.Payments,
		Certificates: p.Certificates,
		Preferences:  p.Preferences,
	})
}

// New returns a new dependency injection dig.Container
func New(newConfig NewConfigFunc) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newDB))
	must(c.Provide(inmemdb.NewProfileRepository))
	must(c.Provide(inmemdb.NewCertificateRepository))
	must(c.Provide(credential.NewFileStore, dig.As(new(session.CredentialStore))))
	must(c.Provide(emailsvc.NewService))
	must(c.Provide(newSessionManager))
	must(c.Provide(course.SeedCatalog))
	must(c.Provide(enrollment.NewTracker))
	must(c.Provide(func(t *enrollment.Tracker) certificate.ProgressReader { return t }))
	must(c.Provide(certificate.NewService))
	must(c.Provide(newGenerator))
	must(c.Provide(advisor.NewService))
	must(c.Provide(newPaymentGateway))
	must(c.Provide(payment.NewService))
	must(c.Provide(newPreferenceStore))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
