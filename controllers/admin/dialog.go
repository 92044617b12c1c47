package adminController

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clebut/dashboard"
	"clebut/middleware"
)

// OpenDialog opens (or replaces) the session's modal with a named form.
// Edit dialogs also record which entity they are about; add dialogs
// leave the selection empty and the form starts from defaults.
func OpenDialog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)

		var reqData struct {
			Title string `json:"title"`
			Form  string `json:"form"`
			Kind  string `json:"kind"`
			ID    uint   `json:"id"`
		}
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if strings.TrimSpace(reqData.Title) == "" || strings.TrimSpace(reqData.Form) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and form are required!", nil)
		}

		if reqData.ID != 0 {
			session.Select(dashboard.EntityKind(reqData.Kind), reqData.ID)
		}
		session.OpenDialog(reqData.Title, reqData.Form)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dialog opened!", session.Dialog())
	}
}

// CloseDialog closes the modal and clears the selection
func CloseDialog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dialog closed!", nil)
	}
}
