package adminController

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
)

// fail turns a backend error into the user-facing response. A 401 from
// any authenticated call sends the admin back to login; other backend
// errors surface the server message so the admin can retry.
func fail(c *fiber.Ctx, err error) error {
	if backend.IsUnauthorized(err) {
		return middleware.RejectUnauthenticated(c)
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return middleware.JsonResponse(c, apiErr.StatusCode, false, apiErr.Message, nil)
	}
	return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Request to backend failed!", nil)
}

// paramID parses the :id route parameter
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
