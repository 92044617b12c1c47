package adminController

import (
	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
	"clebut/models"
	"clebut/store"
)

// MarkMessageRead flags one contact message as read. The backend call and
// the local patch are both idempotent, so opening the same message twice
// cannot double anything.
func MarkMessageRead(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}

		if err := client.WithToken(session.Token).MarkMessageRead(id); err != nil {
			return fail(c, err)
		}
		st.MarkMessageRead(id)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Message marked as read!", nil)
	}
}

// DeleteMessage removes one contact message and clears it from view
func DeleteMessage(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.MessageList, id,
			func(m models.Message) uint { return m.ID },
			func() error { return api.DeleteMessage(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Message deleted successfully!", nil)
	}
}
