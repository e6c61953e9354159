package echoapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/synapse/apps/api/echo"
	"github.com/trezcool/synapse/core/certificate"
	"github.com/trezcool/synapse/core/course"
)

func Test_courseApi_query(t *testing.T) {
	app, _ := setup(t)

	courses := course.SeedCourses()
	published := []course.Course{courses[0], courses[1], courses[3], courses[5], courses[6]}
	runHTTPTests(t, app, []httpTest{
		{name: "published", path: "/v1/courses", wantCode: http.StatusOK, wantData: marshallObj(t, published)},
		{name: "search", path: "/v1/courses?q=Python", wantCode: http.StatusOK, wantData: marshallObj(t, []course.Course{courses[5]})},
		{name: "tag", path: "/v1/courses?tag=AI", wantCode: http.StatusOK, wantData: marshallObj(t, []course.Course{courses[0]})},
		{name: "no match", path: "/v1/courses?q=python&tag=React", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{
			name: "unknown level", path: "/v1/courses?level=Expert",
			wantCode: http.StatusBadRequest, wantData: []byte(`{"level": "unknown level"}`),
		},
		{name: "unpublished by id", path: "/v1/courses/8", wantCode: http.StatusOK, wantData: marshallObj(t, courses[7])},
		{name: "by id", path: "/v1/courses/3", wantCode: http.StatusOK, wantData: marshallObj(t, courses[2])},
		{name: "unknown id", path: "/v1/courses/42", wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "course not found"})},
		{name: "bad id", path: "/v1/courses/abc", wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "not found"})},
	})
}

func Test_courseApi_authRequired(t *testing.T) {
	app, _ := setup(t)
	noSession := marshallObj(t, httpErr{Error: "no active session"})

	runHTTPTests(t, app, []httpTest{
		{name: "enroll", method: http.MethodPost, path: "/v1/courses/1/enroll", wantCode: http.StatusUnauthorized, wantData: noSession},
		{name: "checkout", method: http.MethodPost, path: "/v1/courses/6/checkout", wantCode: http.StatusUnauthorized, wantData: noSession},
		{name: "toggle", method: http.MethodPost, path: "/v1/courses/1/items/101/toggle", wantCode: http.StatusUnauthorized, wantData: noSession},
		{name: "progress", path: "/v1/courses/1/progress", wantCode: http.StatusUnauthorized, wantData: noSession},
	})
}

func Test_courseApi_enrollAndProgress(t *testing.T) {
	app, mgr := setup(t)
	login(t, app, "alex@test.com")

	runHTTPTests(t, app, []httpTest{
		{
			name: "paid course", method: http.MethodPost, path: "/v1/courses/7/enroll",
			wantCode: http.StatusPaymentRequired, wantData: []byte(`{"outcome": "payment_required", "price": 99.99}`),
		},
		{
			name: "unknown course", method: http.MethodPost, path: "/v1/courses/42/enroll",
			wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "course not found"}),
		},
		{
			name: "toggle not enrolled", method: http.MethodPost, path: "/v1/courses/4/items/401/toggle",
			wantCode: http.StatusConflict, wantData: marshallObj(t, httpErr{Error: "not enrolled"}),
		},
		{
			name: "checkout free course", method: http.MethodPost, path: "/v1/courses/1/checkout",
			wantCode: http.StatusConflict, wantData: marshallObj(t, httpErr{Error: "course is free"}),
		},
	})
	p, _ := mgr.Current()
	assert.False(t, p.IsEnrolled(7))
	assert.False(t, p.IsEnrolled(4))

	// free enrollment
	rec := serve(app, http.MethodPost, "/v1/courses/1/enroll")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var enrolled echoapi.EnrollResponse
	decode(t, rec, &enrolled)
	assert.Equal(t, "enrolled", enrolled.Outcome)
	require.NotNil(t, enrolled.Profile)
	assert.True(t, enrolled.Profile.IsEnrolled(1))

	// paid enrollment after checkout
	rec = serve(app, http.MethodPost, "/v1/courses/7/checkout")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p, _ = mgr.Current()
	assert.True(t, p.IsEnrolled(7))

	// already enrolled: no payment asked
	rec = serve(app, http.MethodPost, "/v1/courses/7/enroll")
	assert.Equal(t, http.StatusOK, rec.Code)

	runHTTPTests(t, app, []httpTest{
		{
			name: "unknown item", method: http.MethodPost, path: "/v1/courses/1/items/999/toggle",
			wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "syllabus item not found"}),
		},
		{
			name: "bad item", method: http.MethodPost, path: "/v1/courses/1/items/abc/toggle",
			wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "not found"}),
		},
		{name: "seeded progress", path: "/v1/courses/6/progress", wantCode: http.StatusOK, wantData: []byte(`{"course_id": 6, "percent": 40}`)},
		{name: "no progress", path: "/v1/courses/1/progress", wantCode: http.StatusOK, wantData: []byte(`{"course_id": 1, "percent": 0}`)},
	})

	toggle := func(item int) echoapi.ProgressResponse {
		rec := serve(app, http.MethodPost, fmt.Sprintf("/v1/courses/1/items/%d/toggle", item))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp echoapi.ProgressResponse
		decode(t, rec, &resp)
		return resp
	}

	assert.Equal(t, 20, toggle(101).Percent)
	assert.Equal(t, 0, toggle(101).Percent)
	for i, item := range []int{101, 102, 103, 104} {
		resp := toggle(item)
		assert.Equal(t, (i+1)*20, resp.Percent)
		assert.Nil(t, resp.Certificate)
	}

	// completing the course issues a certificate, once
	done := toggle(105)
	assert.Equal(t, 100, done.Percent)
	require.NotNil(t, done.Certificate)
	assert.Equal(t, 1, done.Certificate.CourseID)
	assert.Equal(t, "Alex Johnson", done.Certificate.StudentName)
	assert.Equal(t, certificate.QRCodeURL(certificate.Code(done.Certificate.ID)), done.Certificate.QRCodeURL)

	assert.Equal(t, 80, toggle(105).Percent)
	again := toggle(105)
	assert.Equal(t, 100, again.Percent)
	assert.Nil(t, again.Certificate)

	rec = serve(app, http.MethodGet, "/v1/me/certificates")
	require.Equal(t, http.StatusOK, rec.Code)
	var certs []certificate.Certificate
	decode(t, rec, &certs)
	require.Len(t, certs, 3)
	assert.Equal(t, []string{"cert-101-py", "cert-202-bc", done.Certificate.ID}, []string{certs[0].ID, certs[1].ID, certs[2].ID})

	rec = serve(app, http.MethodGet, "/v1/me/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	var dashboard echoapi.DashboardResponse
	decode(t, rec, &dashboard)
	assert.Equal(t, 75, dashboard.XPProgress)
	got := make(map[int]int, len(dashboard.Courses))
	ids := make([]int, 0, len(dashboard.Courses))
	for _, cp := range dashboard.Courses {
		got[cp.Course.ID] = cp.Percent
		ids = append(ids, cp.Course.ID)
	}
	assert.Equal(t, []int{1, 2, 6, 7, 8}, ids)
	assert.Equal(t, map[int]int{1: 100, 2: 20, 6: 40, 7: 0, 8: 0}, got)
}

func Test_courseApi_checkoutEnrolled(t *testing.T) {
	app, _ := setup(t)
	login(t, app, "alex@test.com")

	// the gateway fails on a cancelled request, so only a charge attempt can fail
	cancelled := func(path string) *httptest.ResponseRecorder {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req, rec := newRequest(http.MethodPost, path)
		app.ServeHTTP(rec, req.WithContext(ctx))
		return rec
	}

	rec := cancelled("/v1/courses/8/checkout") // seeded enrollment
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp echoapi.EnrollResponse
	decode(t, rec, &resp)
	assert.Equal(t, "enrolled", resp.Outcome)
	require.NotNil(t, resp.Profile)
	assert.True(t, resp.Profile.IsEnrolled(8))

	rec = cancelled("/v1/courses/7/checkout")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_courseApi_afterLogout(t *testing.T) {
	app, _ := setup(t)
	login(t, app, "alex@test.com")
	serve(app, http.MethodPost, "/v1/session/logout")

	rec := serve(app, http.MethodPost, "/v1/courses/1/enroll")
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, httpErr{Error: "no active session"})}, rec)
}
