package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"drmike/handlers"
	"drmike/middleware"
	"drmike/models"
	"drmike/routes"
	"drmike/services/appointment"
	"drmike/utils"
	"drmike/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cookieName = "landing_view"

var jwtSecret = []byte("handler-secret")

type countingSink struct {
	reports []models.AppointmentRequestDraft
}

func (s *countingSink) Report(_ context.Context, d models.AppointmentRequestDraft) error {
	s.reports = append(s.reports, d)
	return nil
}

type testServer struct {
	router *gin.Engine
	sink   *countingSink
	store  *appointment.MemoryStore
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := appointment.NewMemoryStore(time.Hour)
	sink := &countingSink{}
	svc, err := appointment.NewDefaultViewService(store, sink, zap.NewNop())
	require.NoError(t, err)
	content, err := views.DefaultContent()
	require.NoError(t, err)

	landing := handlers.NewLandingHandler(svc, content, cookieName, time.Hour, false)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(zap.NewNop()))
	r.Use(middleware.AuthStatusMiddleware(jwtSecret, "auth_token"))
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(landing), []string{"*"})

	return &testServer{router: r, sink: sink, store: store}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			s.cookie = c
		}
	}
	return w
}

func (s *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postForm(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(t, req)
}

func (s *testServer) patchDraft(t *testing.T, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/draft", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}

func draftFrom(t *testing.T, w *httptest.ResponseRecorder) models.AppointmentRequestDraft {
	t.Helper()
	var body struct {
		Draft models.AppointmentRequestDraft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Draft
}

func TestLandingPageAnonymous(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	html := w.Body.String()
	assert.Contains(t, html, `href="/login"`)
	assert.Contains(t, html, `href="/register"`)
	assert.NotContains(t, html, `href="/dashboard"`)
	assert.Equal(t, 4, strings.Count(html, `class="stat-card `))
	assert.Equal(t, 4, strings.Count(html, `class="service-card `))
	require.NotNil(t, s.cookie)
}

func TestLandingPageAuthenticated(t *testing.T) {
	s := newTestServer(t)
	tok, err := utils.GenerateToken(jwtSecret, "u1", "Jane Doe", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	w := s.do(t, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome, Jane!")
	assert.Contains(t, w.Body.String(), `href="/dashboard"`)
}

func TestLandingPageMountsOnce(t *testing.T) {
	s := newTestServer(t)

	first := s.get(t, "/")
	assert.Contains(t, first.Body.String(), `data-mount="pending"`)

	second := s.get(t, "/")
	assert.Contains(t, second.Body.String(), `data-mount="done"`)
	assert.NotContains(t, second.Body.String(), `data-mount="pending"`)
}

func TestSubmitScenario(t *testing.T) {
	s := newTestServer(t)
	s.get(t, "/")

	w := s.postForm(t, url.Values{
		"name":  {"Jane Doe"},
		"email": {"jane@x.com"},
		"phone": {"555-0000"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.Equal(t, 1, strings.Count(html, models.AcknowledgementMessage))
	assert.NotContains(t, html, `value="Jane Doe"`)

	require.Len(t, s.sink.reports, 1)
	assert.Equal(t, models.AppointmentRequestDraft{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0000"}, s.sink.reports[0])

	draft := draftFrom(t, s.get(t, "/api/appointments/draft"))
	assert.True(t, draft.IsEmpty())

	// the acknowledgement belongs to the submission response only
	assert.NotContains(t, s.get(t, "/").Body.String(), models.AcknowledgementMessage)
}

func TestSubmitMissingRequiredNeverReachesSink(t *testing.T) {
	full := url.Values{
		"name":          {"Jane Doe"},
		"email":         {"jane@x.com"},
		"phone":         {"555-0000"},
		"preferredTime": {"morning"},
	}
	for _, field := range []string{"name", "email", "phone"} {
		t.Run(field, func(t *testing.T) {
			s := newTestServer(t)
			form := url.Values{}
			for k, v := range full {
				form[k] = v
			}
			form.Set(field, "")

			w := s.postForm(t, form)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), "form-missing-notice")
			assert.NotContains(t, w.Body.String(), models.AcknowledgementMessage)
			assert.Contains(t, w.Body.String(), `<option value="morning" selected>`)
			assert.Empty(t, s.sink.reports)
		})
	}
}

func TestDraftAPI(t *testing.T) {
	s := newTestServer(t)
	s.get(t, "/")

	w := s.patchDraft(t, `{"field":"name","value":"Jane Doe"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AppointmentRequestDraft{Name: "Jane Doe"}, draftFrom(t, w))

	w = s.patchDraft(t, `{"field":"reason","value":"checkup"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AppointmentRequestDraft{Name: "Jane Doe", Reason: "checkup"}, draftFrom(t, w))

	w = s.patchDraft(t, `{"field":"insurance","value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.patchDraft(t, `{"value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	page := s.get(t, "/").Body.String()
	assert.Contains(t, page, `value="Jane Doe"`)
	assert.Contains(t, page, `<option value="checkup" selected>`)
	assert.Empty(t, s.sink.reports)
}

func TestDraftAPIWithoutView(t *testing.T) {
	s := newTestServer(t)
	w := s.patchDraft(t, `{"field":"name","value":"Jane"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	utils.CheckHealth(context.Background(), s.store)

	w := s.get(t, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string             `json:"status"`
		Health utils.HealthStatus `json:"health"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Health.ViewStore)
}
