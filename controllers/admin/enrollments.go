package adminController

import (
	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
	"clebut/models"
	"clebut/store"
)

// GetEnrollmentGroups returns the course buckets for the enrollments tab,
// with this session's active group and disclosure state applied.
func GetEnrollmentGroups(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		groups := session.EnrollmentGroups(st.Snapshot().Enrollments)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", groups)
	}
}

// SelectEnrollmentGroup activates one course bucket. No network effect.
func SelectEnrollmentGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		session.SelectGroup(c.Params("key"))
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Group selected!", nil)
	}
}

// ToggleEnrollmentGroup flips a bucket's "show all students" disclosure
func ToggleEnrollmentGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		session.ToggleShowAll(c.Params("key"))
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Group toggled!", nil)
	}
}

// UpdateEnrollmentStatus patches one application's status and re-fetches
// the list, since the status endpoint returns nothing useful to patch in.
func UpdateEnrollmentStatus(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}

		var reqData struct {
			Status string `json:"status"`
		}
		if err := c.BodyParser(&reqData); err != nil || reqData.Status == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status is required!", nil)
		}

		api := client.WithToken(session.Token)
		if err := api.UpdateEnrollmentStatus(id, reqData.Status); err != nil {
			return fail(c, err)
		}
		if items, err := api.ListEnrollments(); err == nil {
			st.ReplaceEnrollments(items)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status updated!", nil)
	}
}

// DeleteEnrollment removes one application. If it was the last student of
// the active group, the next grouping pass falls back to the first
// remaining group instead of an empty selection.
func DeleteEnrollment(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.EnrollmentList, id,
			func(e models.Enrollment) uint { return e.ID },
			func() error { return api.DeleteEnrollment(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully!", nil)
	}
}
