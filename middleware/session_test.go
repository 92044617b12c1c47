package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clebut/dashboard"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeUserIDFromUserIdClaim(t *testing.T) {
	id, err := DecodeUserID(signedToken(t, jwt.MapClaims{"userId": float64(42)}))
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestDecodeUserIDFallsBackToIdClaim(t *testing.T) {
	id, err := DecodeUserID(signedToken(t, jwt.MapClaims{"id": float64(7)}))
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestDecodeUserIDRejectsTokenWithoutClaim(t *testing.T) {
	_, err := DecodeUserID(signedToken(t, jwt.MapClaims{"email": "admin@clebut.com"}))
	assert.Error(t, err)
}

func TestDecodeUserIDRejectsGarbage(t *testing.T) {
	_, err := DecodeUserID("not-a-jwt")
	assert.Error(t, err)
}

func guardedApp(t *testing.T, registry *dashboard.Registry) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/admin/dashboard", SessionGuard(registry), func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", Session(c).UserID)
	})
	return app
}

func TestSessionGuardRedirectsPageLoads(t *testing.T) {
	app := guardedApp(t, dashboard.NewRegistry(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get("Location"))
}

func TestSessionGuardRejectsAPICallsWith401(t *testing.T) {
	app := guardedApp(t, dashboard.NewRegistry(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionGuardRejectsUnknownCookie(t *testing.T) {
	app := guardedApp(t, dashboard.NewRegistry(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale-session-id"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionGuardAdmitsLiveSession(t *testing.T) {
	registry := dashboard.NewRegistry(time.Minute)
	session := registry.Create("tok", 42)
	app := guardedApp(t, registry)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.ID})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
