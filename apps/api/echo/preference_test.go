package echoapi_test

import (
	"net/http"
	"testing"
)

func Test_preferenceApi_theme(t *testing.T) {
	app, _ := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "default", path: "/v1/preferences/theme", wantCode: http.StatusOK, wantData: []byte(`{"theme": "dark"}`)},
		{
			name: "invalid", method: http.MethodPut, path: "/v1/preferences/theme", body: []byte(`{"theme": "neon"}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"theme": "theme must be either dark or light"}`),
		},
		{
			name: "missing", method: http.MethodPut, path: "/v1/preferences/theme", body: []byte(`{}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"theme": "this field is required"}`),
		},
		{
			name: "set light", method: http.MethodPut, path: "/v1/preferences/theme", body: []byte(`{"theme": "light"}`),
			wantCode: http.StatusOK, wantData: []byte(`{"theme": "light"}`),
		},
		{name: "saved", path: "/v1/preferences/theme", wantCode: http.StatusOK, wantData: []byte(`{"theme": "light"}`)},
		{name: "toggle", method: http.MethodPost, path: "/v1/preferences/theme/toggle", wantCode: http.StatusOK, wantData: []byte(`{"theme": "dark"}`)},
		{name: "toggle back", method: http.MethodPost, path: "/v1/preferences/theme/toggle", wantCode: http.StatusOK, wantData: []byte(`{"theme": "light"}`)},
	})
}
