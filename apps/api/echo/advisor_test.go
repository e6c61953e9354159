package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/trezcool/synapse/core/advisor"
)

// Without an API key every advisory endpoint answers with its fallback.
func Test_advisorApi_fallbacks(t *testing.T) {
	app, _ := setup(t)
	fallbackText := marshallObj(t, map[string]string{"text": advisor.FallbackText})

	runHTTPTests(t, app, []httpTest{
		{
			name: "career path", method: http.MethodPost, path: "/v1/advisor/career-path", body: []byte(`{"goal": "Data Engineer"}`),
			wantCode: http.StatusOK, wantData: marshallObj(t, advisor.FallbackCareerPath()),
		},
		{
			name: "career path blank goal", method: http.MethodPost, path: "/v1/advisor/career-path", body: []byte(`{"goal": "  "}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"goal": "this field cannot be blank"}`),
		},
		{
			name: "timetable", method: http.MethodPost, path: "/v1/advisor/timetable", body: []byte(`{"prompt": "4 weeks of Go"}`),
			wantCode: http.StatusOK, wantData: marshallObj(t, advisor.FallbackTimetable()),
		},
		{
			name: "timetable no prompt", method: http.MethodPost, path: "/v1/advisor/timetable", body: []byte(`{}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"prompt": "this field is required"}`),
		},
		{name: "quiz", path: "/v1/courses/1/quiz", wantCode: http.StatusOK, wantData: marshallObj(t, advisor.FallbackQuiz())},
		{
			name: "ask", method: http.MethodPost, path: "/v1/courses/1/ask", body: []byte(`{"question": "what is next?"}`),
			wantCode: http.StatusOK, wantData: fallbackText,
		},
		{
			name: "ask unknown course", method: http.MethodPost, path: "/v1/courses/42/ask", body: []byte(`{"question": "what is next?"}`),
			wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "course not found"}),
		},
	})

	login(t, app, "alex@test.com")
	runHTTPTests(t, app, []httpTest{
		{name: "insight", path: "/v1/me/insight", wantCode: http.StatusOK, wantData: fallbackText},
	})
}
