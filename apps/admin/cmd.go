package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/course"
	"github.com/trezcool/synapse/core/preference"
	"github.com/trezcool/synapse/core/profile"
	"github.com/trezcool/synapse/core/session"
	"github.com/trezcool/synapse/storage/credential"
	inmemdb "github.com/trezcool/synapse/storage/database/inmem"
)

var (
	readPasswordFunc = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) } // mockable
)

type commandLine struct {
	conf    *core.Config
	logger  core.Logger
	session *session.Manager
	courses course.Directory
	prefs   *preference.Store
	out     io.Writer
}

func newCommandLine(conf *core.Config, logger core.Logger, out io.Writer) (*commandLine, error) {
	db := inmemdb.Open()
	if err := inmemdb.Seed(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "seeding database")
	}
	policy, err := session.NewPolicy(conf)
	if err != nil {
		return nil, err
	}
	prefs, err := preference.NewStore(conf.Preferences.Path)
	if err != nil {
		return nil, err
	}

	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	profile.InitValidators(validate, translator)

	return &commandLine{
		conf:   conf,
		logger: logger,
		session: session.NewManager(session.Deps{
			Profiles:    inmemdb.NewProfileRepository(db),
			Credentials: credential.NewFileStore(conf),
			Policy:      policy,
			Validate:    validate,
			Logger:      logger,
		}),
		courses: course.SeedCatalog(),
		prefs:   prefs,
		out:     out,
	}, nil
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "admin",
		Short:        cli.conf.AppName + " admin tools",
		SilenceUsage: true,
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	root.AddCommand(cli.loginCmd(), cli.logoutCmd(), cli.catalogCmd(), cli.themeCmd())
	return root
}

// run executes the command line; args exclude the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
