package adminController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/config"
	"clebut/dashboard"
	"clebut/middleware"
	authValidator "clebut/validators/auth"
)

// Login exchanges admin credentials for a backend token and opens a
// dashboard session. Invalid credentials surface the backend's message
// without storing anything.
func Login(client *backend.Client, registry *dashboard.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		login, err := client.Login(reqData.Email, reqData.Password)
		if err != nil {
			return fail(c, err)
		}

		userID, err := middleware.DecodeUserID(login.Token)
		if err != nil {
			// The token is still usable; company-scoped calls fall back
			// to the user object from the login response.
			log.Printf("Could not decode user id from token: %v", err)
			userID = login.User.ID
		}

		session := registry.Create(login.Token, userID)
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    session.ID,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Now().Add(time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute),
		})

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", login.User)
	}
}

// Logout drops the dashboard session and expires the cookie
func Logout(registry *dashboard.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.Cookies(middleware.SessionCookie); id != "" {
			registry.Delete(id)
		}
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			HTTPOnly: true,
			Expires:  time.Now().Add(-time.Hour),
		})
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
	}
}
