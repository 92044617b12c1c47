package adminRoutes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clebut/backend"
	"clebut/config"
	"clebut/dashboard"
	"clebut/store"
)

// fixture wires a fiber app with the admin routes against a fake backend
type fixture struct {
	app      *fiber.App
	registry *dashboard.Registry
	store    *store.Store

	// requests the fake backend saw, as "METHOD path"; guarded because
	// the dashboard load fetches all collections concurrently
	mu    sync.Mutex
	calls []string
}

func (f *fixture) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
}

func (f *fixture) sawCall(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	config.AppConfig = &config.Config{SessionTTLMinutes: 720}

	f := &fixture{
		registry: dashboard.NewRegistry(time.Minute),
		store:    store.New(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"userId": float64(7)}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)

		switch {
		case r.URL.Path == "/auth/login":
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), "correct-password") {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Invalid credentials!"}`))
				return
			}
			w.Write([]byte(`{"token":"` + token + `","user":{"id":7,"email":"admin@clebut.com"}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/services":
			w.Write([]byte(`{"id":3,"title":"Consulting","description":"Advisory work"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/services/99":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Token expired!"}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/enrollments/5/status":
			w.Write([]byte(`{}`))
		case r.URL.Path == "/trainee-enrollments/all":
			w.Write([]byte(`[{"id":5,"fullName":"Ada","status":"approved","course":{"id":4,"title":"Go 101"}}]`))
		default:
			// every other collection fetch answers empty
			w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)

	f.app = fiber.New()
	SetupAdminRoutes(f.app, backend.New(srv.URL, 5*time.Second), f.store, f.registry)
	return f
}

func (f *fixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"email":"admin@clebut.com","password":"correct-password"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "clebut_session" {
			return cookie
		}
	}
	t.Fatal("login response carries no session cookie")
	return nil
}

func (f *fixture) do(t *testing.T, method, path, body string, cookie *http.Cookie) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := f.app.Test(req)
	require.NoError(t, err)

	envelope := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	json.Unmarshal(raw, &envelope)
	return resp, envelope
}

func TestLoginOpensSession(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	assert.NotNil(t, f.registry.Get(cookie.Value))
	assert.Equal(t, uint(7), f.registry.Get(cookie.Value).UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	resp, envelope := f.do(t, http.MethodPost, "/admin/login",
		`{"email":"admin@clebut.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials!", envelope["message"])
}

func TestLoginValidatesPayload(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.do(t, http.MethodPost, "/admin/login", `{"email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, f.sawCall("POST /auth/login"))
}

func TestDashboardRequiresSession(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.do(t, http.MethodGet, "/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutDropsSession(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, _ := f.do(t, http.MethodPost, "/admin/logout", "", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, f.registry.Get(cookie.Value))

	resp, _ = f.do(t, http.MethodGet, "/admin/dashboard", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateServiceClosesDialog(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, _ := f.do(t, http.MethodPost, "/admin/dialog",
		`{"title":"Add Service","form":"service-form"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/admin/services",
		`{"title":"Consulting","description":"Advisory work"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, f.sawCall("POST /services"))

	session := f.registry.Get(cookie.Value)
	assert.False(t, session.Dialog().Open)
	assert.Len(t, f.store.Snapshot().Services, 1)
}

func TestCreateServiceValidatesPayload(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, _ := f.do(t, http.MethodPost, "/admin/services", `{"title":"No description"}`, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, f.sawCall("POST /services"))
}

func TestExpiredBackendTokenBehavesLikeLogout(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	// backend answers 401 for this delete: the admin is sent to login
	resp, _ := f.do(t, http.MethodDelete, "/admin/services/99", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEnrollmentStatusUpdateRefreshesList(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, _ := f.do(t, http.MethodPatch, "/admin/enrollments/5/status",
		`{"status":"approved"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, f.sawCall("PATCH /enrollments/5/status"))
	assert.True(t, f.sawCall("GET /trainee-enrollments/all"))

	enrollments := f.store.Snapshot().Enrollments
	require.Len(t, enrollments, 1)
	assert.Equal(t, "approved", enrollments[0].Status)
}

func TestEnrollmentGroupEndpoints(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	// warm the store with the fake backend's enrollment list
	resp, _ := f.do(t, http.MethodPatch, "/admin/enrollments/5/status",
		`{"status":"approved"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := f.do(t, http.MethodGet, "/admin/enrollments", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	groups, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, groups, 1)

	group := groups[0].(map[string]any)
	assert.Equal(t, "4", group["key"])
	assert.Equal(t, true, group["active"])

	resp, _ = f.do(t, http.MethodPost, "/admin/enrollments/groups/4/toggle", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, envelope = f.do(t, http.MethodGet, "/admin/enrollments", "", cookie)
	group = envelope["data"].([]any)[0].(map[string]any)
	assert.Equal(t, true, group["showAll"])
}

func TestDashboardStatsDeriveFromCollections(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, envelope := f.do(t, http.MethodGet, "/admin/dashboard", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]any)
	stats, ok := data["stats"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, float64(0), stats["inquiries"])
	assert.Equal(t, float64(0), stats["projects"])
	assert.Equal(t, float64(0), stats["teamMembers"])
	assert.Equal(t, float64(1), stats["enrollments"])
	assert.NotContains(t, stats, "visitors")
}

func TestOpenDialogRequiresTitleAndForm(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, _ := f.do(t, http.MethodPost, "/admin/dialog", `{"title":"Only a title"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEditDialogRecordsSelection(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	resp, _ := f.do(t, http.MethodPost, "/admin/dialog",
		`{"title":"Edit Service","form":"service-form","kind":"service","id":3}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	session := f.registry.Get(cookie.Value)
	assert.Equal(t, dashboard.Selection{Kind: dashboard.KindService, ID: 3}, session.Selection())

	resp, _ = f.do(t, http.MethodDelete, "/admin/dialog", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dashboard.Selection{}, session.Selection())
}
