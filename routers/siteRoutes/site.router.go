package siteRoutes

import (
	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"clebut/backend"
	siteController "clebut/controllers/site"
	contactValidator "clebut/validators/contact"
	enrollmentValidator "clebut/validators/enrollment"
)

// SetupSiteRoutes registers the public marketing and enrollment routes
func SetupSiteRoutes(app *fiber.App, client *backend.Client, cache *gocache.Cache) {
	app.Get("/company", siteController.GetCompany(client, cache))
	app.Post("/contact", contactValidator.Submit(), siteController.SubmitContact(client))

	courses := app.Group("/courses")
	courses.Get("/", siteController.ListCourses(client))
	courses.Get("/:id", siteController.GetCourse(client))
	courses.Post("/:id/enroll", enrollmentValidator.Submit(), siteController.Enroll(client))
}
