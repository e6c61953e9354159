package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/session"
	"github.com/trezcool/synapse/storage/credential"
	"github.com/trezcool/synapse/tests"
)

func setup(t *testing.T, conf *core.Config) (*commandLine, *bytes.Buffer) {
	out := new(bytes.Buffer)
	cli, err := newCommandLine(conf, testutil.NewLogger(t), out)
	require.NoError(t, err)
	return cli, out
}

func mockPassword(t *testing.T, pwd string, err error) {
	orig := readPasswordFunc
	readPasswordFunc = func() ([]byte, error) { return []byte(pwd), err }
	t.Cleanup(func() { readPasswordFunc = orig })
}

type cliTest struct {
	name       string
	args       []string // without program name
	password   string
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runCLITests(t *testing.T, conf *core.Config, tests []cliTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPassword(t, tt.password, nil)
			cli, out := setup(t, conf)

			err := cli.run(tt.args)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrStr != "":
				assert.EqualError(t, err, tt.wantErrStr)
			default:
				require.NoError(t, err)
			}
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_login(t *testing.T) {
	conf := core.NewTestConfig(t.TempDir())
	store := credential.NewFileStore(conf)

	runCLITests(t, conf, []cliTest{
		{name: "no email", args: []string{"login"}, wantErrStr: `required flag(s) "email" not set`},
		{name: "unknown email", args: []string{"login", "--email", "ghost@test.com"}, wantErr: session.ErrInvalidCredentials},
		{name: "wrong password", args: []string{"login", "--email", "alex@test.com"}, password: "nope", wantErr: session.ErrInvalidCredentials},
	})
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoCredential)

	runCLITests(t, conf, []cliTest{
		{
			name: "ok", args: []string{"login", "--email", "ALEX@test.com"}, password: "password123",
			wantOut: "logged in as Alex Johnson <alex@test.com> (Student)",
		},
	})
	subject, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "student123", subject)

	runCLITests(t, conf, []cliTest{
		{name: "logout", args: []string{"logout"}, wantOut: "logged out alex@test.com"},
		{name: "logout again", args: []string{"logout"}, wantOut: "not logged in"},
	})
	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoCredential)
}

func Test_commandLine_loginPromptFails(t *testing.T) {
	cli, _ := setup(t, core.NewTestConfig(t.TempDir()))
	mockPassword(t, "", errors.New("not a terminal"))
	assert.EqualError(t, cli.run([]string{"login", "--email", "alex@test.com"}), "reading password: not a terminal")
}

func Test_commandLine_catalog(t *testing.T) {
	runCLITests(t, core.NewTestConfig(t.TempDir()), []cliTest{
		{name: "sponsored", args: []string{"catalog"}, wantOut: "Free (Hubexus)"},
		{name: "paid", args: []string{"catalog"}, wantOut: "$49.99"},
		{name: "args", args: []string{"catalog", "all"}, wantErrStr: `unknown command "all" for "admin catalog"`},
	})
}

func Test_commandLine_theme(t *testing.T) {
	runCLITests(t, core.NewTestConfig(t.TempDir()), []cliTest{
		{name: "default", args: []string{"theme"}, wantOut: "dark"},
		{name: "set light", args: []string{"theme", "light"}, wantOut: "light"},
		{name: "saved", args: []string{"theme"}, wantOut: "light"},
		{name: "toggle", args: []string{"theme", "toggle"}, wantOut: "dark"},
		{name: "invalid", args: []string{"theme", "neon"}, wantErrStr: `invalid argument "neon" for "admin theme"`},
		{name: "too many", args: []string{"theme", "dark", "light"}, wantErrStr: "accepts at most 1 arg(s), received 2"},
	})
}
