package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	adminController "clebut/controllers/admin"
	"clebut/dashboard"
	"clebut/middleware"
	"clebut/store"
	authValidator "clebut/validators/auth"
	contentValidator "clebut/validators/content"
)

// SetupAdminRoutes registers login plus the guarded dashboard routes
func SetupAdminRoutes(app *fiber.App, client *backend.Client, st *store.Store, registry *dashboard.Registry) {
	admin := app.Group("/admin")

	admin.Post("/login", authValidator.Login(), adminController.Login(client, registry))
	admin.Post("/logout", adminController.Logout(registry))

	guarded := admin.Group("/", middleware.SessionGuard(registry))

	guarded.Get("/dashboard", adminController.GetDashboard(client, st))

	guarded.Post("/team", contentValidator.TeamMember(), adminController.CreateTeamMember(client, st))
	guarded.Put("/team/:id", contentValidator.TeamMember(), adminController.UpdateTeamMember(client, st))
	guarded.Delete("/team/:id", adminController.DeleteTeamMember(client, st))

	guarded.Post("/services", contentValidator.Service(), adminController.CreateService(client, st))
	guarded.Put("/services/:id", contentValidator.Service(), adminController.UpdateService(client, st))
	guarded.Delete("/services/:id", adminController.DeleteService(client, st))

	guarded.Post("/projects", contentValidator.Project(), adminController.CreateProject(client, st))
	guarded.Put("/projects/:id", contentValidator.Project(), adminController.UpdateProject(client, st))
	guarded.Delete("/projects/:id", adminController.DeleteProject(client, st))

	guarded.Post("/testimonials", contentValidator.Testimonial(), adminController.CreateTestimonial(client, st))
	guarded.Put("/testimonials/:id", contentValidator.Testimonial(), adminController.UpdateTestimonial(client, st))
	guarded.Delete("/testimonials/:id", adminController.DeleteTestimonial(client, st))

	guarded.Post("/partners", contentValidator.Partner(), adminController.CreatePartner(client, st))
	guarded.Put("/partners/:id", contentValidator.Partner(), adminController.UpdatePartner(client, st))
	guarded.Delete("/partners/:id", adminController.DeletePartner(client, st))

	guarded.Post("/posts", contentValidator.Post(), adminController.CreatePost(client, st))
	guarded.Put("/posts/:id", contentValidator.Post(), adminController.UpdatePost(client, st))
	guarded.Delete("/posts/:id", adminController.DeletePost(client, st))

	guarded.Post("/courses", contentValidator.Course(), adminController.CreateCourse(client, st))
	guarded.Put("/courses/:id", contentValidator.Course(), adminController.UpdateCourse(client, st))
	guarded.Delete("/courses/:id", adminController.DeleteCourse(client, st))

	guarded.Put("/messages/:id/read", adminController.MarkMessageRead(client, st))
	guarded.Delete("/messages/:id", adminController.DeleteMessage(client, st))

	guarded.Get("/enrollments", adminController.GetEnrollmentGroups(st))
	guarded.Post("/enrollments/groups/:key/select", adminController.SelectEnrollmentGroup())
	guarded.Post("/enrollments/groups/:key/toggle", adminController.ToggleEnrollmentGroup())
	guarded.Patch("/enrollments/:id/status", adminController.UpdateEnrollmentStatus(client, st))
	guarded.Delete("/enrollments/:id", adminController.DeleteEnrollment(client, st))

	guarded.Post("/dialog", adminController.OpenDialog())
	guarded.Delete("/dialog", adminController.CloseDialog())

	guarded.Post("/upload", adminController.UploadImage(client))
}
