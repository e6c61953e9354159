package echoapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	dig_container "github.com/trezcool/synapse/apps/api/di/dig"
	echoapi "github.com/trezcool/synapse/apps/api/echo"
	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/session"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

// setup builds the app from the dependency container, with its state kept under dir.
func setup(t *testing.T, dir ...string) (*echoapi.Server, *session.Manager) {
	t.Helper()

	stateDir := t.TempDir()
	if len(dir) > 0 {
		stateDir = dir[0]
	}
	c := dig_container.New(func() *core.Config { return core.NewTestConfig(stateDir) })

	var (
		app *echoapi.Server
		mgr *session.Manager
	)
	require.NoError(t, c.Invoke(func(s *echoapi.Server, m *session.Manager) {
		app, mgr = s, m
	}))
	require.NoError(t, mgr.Resolve(context.Background()))
	return app, mgr
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func serve(app http.Handler, method, path string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, data...)
	app.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, app http.Handler, email string) {
	t.Helper()
	rec := serve(app, http.MethodPost, "/v1/session/login", marshallObj(t, echoapi.LoginRequest{Email: email}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj(): %v", err)
	}
	return data
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			checkCodeAndData(t, tt, serve(app, method, tt.path, tt.body))
		})
	}
}
