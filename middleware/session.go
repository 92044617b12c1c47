package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"clebut/dashboard"
)

// SessionCookie carries the dashboard session id in the browser
const SessionCookie = "clebut_session"

// LoginPath is where unauthenticated admin requests are sent
const LoginPath = "/admin/login"

// SessionGuard gates every dashboard route on a live session. Page loads
// without one are redirected to the login route; API calls get a 401.
func SessionGuard(registry *dashboard.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(SessionCookie)
		if id == "" {
			return RejectUnauthenticated(c)
		}
		session := registry.Get(id)
		if session == nil {
			return RejectUnauthenticated(c)
		}
		c.Locals("session", session)
		return c.Next()
	}
}

// RejectUnauthenticated sends the caller back to login. Controllers also
// use it when any backend call answers 401, so an expired token behaves
// exactly like a missing one.
func RejectUnauthenticated(c *fiber.Ctx) error {
	if strings.Contains(c.Get("Accept"), "text/html") {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
}

// Session returns the guarded request's dashboard session
func Session(c *fiber.Ctx) *dashboard.Session {
	session, _ := c.Locals("session").(*dashboard.Session)
	return session
}

// DecodeUserID reads the userId claim out of a backend-issued token. The
// signature is not checked here: the signing key belongs to the backend,
// which already vetted the credentials when it issued the token.
func DecodeUserID(token string) (uint, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, err
	}
	for _, key := range []string{"userId", "id"} {
		if v, ok := claims[key].(float64); ok {
			return uint(v), nil
		}
	}
	return 0, fmt.Errorf("token carries no user id claim")
}
