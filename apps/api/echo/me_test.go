package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/synapse/apps/api/echo"
)

func Test_meApi_dashboardByRole(t *testing.T) {
	t.Run("instructor", func(t *testing.T) {
		app, _ := setup(t)
		login(t, app, "eva@test.com")

		rec := serve(app, http.MethodGet, "/v1/me/dashboard")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp echoapi.InstructorDashboardResponse
		decode(t, rec, &resp)
		assert.Equal(t, "instructor123", resp.Profile.ID)
		ids := make([]int, 0, len(resp.Courses))
		for _, c := range resp.Courses {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []int{1, 5, 8}, ids)
	})

	t.Run("admin", func(t *testing.T) {
		app, _ := setup(t)
		login(t, app, "admin@test.com")

		rec := serve(app, http.MethodGet, "/v1/me/dashboard")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp echoapi.AdminDashboardResponse
		decode(t, rec, &resp)
		assert.Equal(t, "admin123", resp.Profile.ID)
		assert.Equal(t, 6, resp.TotalUsers)
		assert.Equal(t, 8, resp.TotalCourses)
		assert.Equal(t, 2, resp.PendingApproval)

		// signups are counted
		serve(app, http.MethodPost, "/v1/session/signup", []byte(`{"email": "new@test.com"}`))
		login(t, app, "admin@test.com")
		rec = serve(app, http.MethodGet, "/v1/me/dashboard")
		decode(t, rec, &resp)
		assert.Equal(t, 7, resp.TotalUsers)
	})
}
