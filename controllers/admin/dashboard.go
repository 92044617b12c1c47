package adminController

import (
	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
	"clebut/store"
)

// GetDashboard loads every collection and returns the full dashboard
// state. Collection fetches fail independently — a broken resource shows
// up empty instead of blanking the page; only the session guard (and a
// 401 on a later authenticated call) sends the admin back to login.
func GetDashboard(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		api := client.WithToken(session.Token)

		st.FetchAll(api, session.UserID)

		data := st.Snapshot()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard loaded successfully!", fiber.Map{
			"team":         data.Team,
			"services":     data.Services,
			"projects":     data.Projects,
			"testimonials": data.Testimonials,
			"partners":     data.Partners,
			"messages":     data.Messages,
			"enrollments":  data.Enrollments,
			"posts":        data.Posts,
			"courses":      data.Courses,
			"stats": fiber.Map{
				"inquiries":   st.UnreadMessages(),
				"projects":    len(data.Projects),
				"teamMembers": len(data.Team),
				"enrollments": len(data.Enrollments),
			},
			"dialog":    session.Dialog(),
			"selection": session.Selection(),
		})
	}
}
