package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/synapse/core/profile"
)

func Test_adminApi_queryProfiles(t *testing.T) {
	app, _ := setup(t)

	runHTTPTests(t, app, []httpTest{
		{
			name: "no session", path: "/v1/admin/profiles",
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, httpErr{Error: "no active session"}),
		},
	})

	login(t, app, "alex@test.com")
	runHTTPTests(t, app, []httpTest{
		{
			name: "student", path: "/v1/admin/profiles",
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "forbidden"}),
		},
	})

	login(t, app, "admin@test.com")
	runHTTPTests(t, app, []httpTest{
		{
			name: "invalid role", path: "/v1/admin/profiles?role=Hacker",
			wantCode: http.StatusBadRequest, wantData: []byte(`{"role": "invalid role"}`),
		},
	})

	tests := []struct {
		query   string
		wantIDs []string
	}{
		{query: "", wantIDs: []string{"student123", "instructor123", "admin123", "student456", "student789", "instructor456"}},
		{query: "?role=Instructor", wantIDs: []string{"instructor123", "instructor456"}},
		{query: "?role=Admin", wantIDs: []string{"admin123"}},
	}
	for _, tt := range tests {
		t.Run("role"+tt.query, func(t *testing.T) {
			rec := serve(app, http.MethodGet, "/v1/admin/profiles"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var profiles []profile.Profile
			decode(t, rec, &profiles)
			ids := make([]string, 0, len(profiles))
			for _, p := range profiles {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
