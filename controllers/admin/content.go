package adminController

import (
	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
	"clebut/models"
	"clebut/store"
)

// CRUD handlers for the content tabs. Most collections reconcile
// optimistically from the record the backend returns; posts and courses
// re-fetch their whole collection instead because those endpoints do not
// return the stored record in a consistent shape. Each call site uses
// exactly one of the two strategies. Every successful mutation also
// closes the open dialog and clears the selection.

// Team members

func CreateTeamMember(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedTeamMember").(*models.TeamMember)
		api := client.WithToken(session.Token)

		err := store.Create(st, store.TeamList,
			func() (models.TeamMember, error) { return api.CreateTeamMember(*payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Team member created successfully!", nil)
	}
}

func UpdateTeamMember(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedTeamMember").(*models.TeamMember)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.TeamList, id,
			func(m models.TeamMember) uint { return m.ID },
			func() (models.TeamMember, error) { return api.UpdateTeamMember(id, *payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Team member updated successfully!", nil)
	}
}

func DeleteTeamMember(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.TeamList, id,
			func(m models.TeamMember) uint { return m.ID },
			func() error { return api.DeleteTeamMember(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Team member deleted successfully!", nil)
	}
}

// Services

func CreateService(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedService").(*models.Service)
		api := client.WithToken(session.Token)

		err := store.Create(st, store.ServiceList,
			func() (models.Service, error) { return api.CreateService(*payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Service created successfully!", nil)
	}
}

func UpdateService(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedService").(*models.Service)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.ServiceList, id,
			func(s models.Service) uint { return s.ID },
			func() (models.Service, error) { return api.UpdateService(id, *payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Service updated successfully!", nil)
	}
}

func DeleteService(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.ServiceList, id,
			func(s models.Service) uint { return s.ID },
			func() error { return api.DeleteService(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Service deleted successfully!", nil)
	}
}

// Projects

func CreateProject(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedProject").(*models.Project)
		api := client.WithToken(session.Token)

		err := store.Create(st, store.ProjectList,
			func() (models.Project, error) { return api.CreateProject(*payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", nil)
	}
}

func UpdateProject(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedProject").(*models.Project)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.ProjectList, id,
			func(p models.Project) uint { return p.ID },
			func() (models.Project, error) { return api.UpdateProject(id, *payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", nil)
	}
}

func DeleteProject(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.ProjectList, id,
			func(p models.Project) uint { return p.ID },
			func() error { return api.DeleteProject(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
	}
}

// Testimonials

func CreateTestimonial(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedTestimonial").(*models.Testimonial)
		api := client.WithToken(session.Token)

		err := store.Create(st, store.TestimonialList,
			func() (models.Testimonial, error) { return api.CreateTestimonial(*payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial created successfully!", nil)
	}
}

func UpdateTestimonial(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedTestimonial").(*models.Testimonial)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.TestimonialList, id,
			func(t models.Testimonial) uint { return t.ID },
			func() (models.Testimonial, error) { return api.UpdateTestimonial(id, *payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", nil)
	}
}

func DeleteTestimonial(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.TestimonialList, id,
			func(t models.Testimonial) uint { return t.ID },
			func() error { return api.DeleteTestimonial(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully!", nil)
	}
}

// Partners

func CreatePartner(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedPartner").(*models.Partner)
		api := client.WithToken(session.Token)

		err := store.Create(st, store.PartnerList,
			func() (models.Partner, error) { return api.CreatePartner(*payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Partner created successfully!", nil)
	}
}

func UpdatePartner(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedPartner").(*models.Partner)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.PartnerList, id,
			func(p models.Partner) uint { return p.ID },
			func() (models.Partner, error) { return api.UpdatePartner(id, *payload) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner updated successfully!", nil)
	}
}

func DeletePartner(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.PartnerList, id,
			func(p models.Partner) uint { return p.ID },
			func() error { return api.DeletePartner(id) }, nil)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner deleted successfully!", nil)
	}
}

// Blog posts — refresh after each mutation, /posts/create does not echo
// the stored record reliably.

func CreatePost(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedPost").(*models.Post)
		api := client.WithToken(session.Token)

		err := store.Create(st, store.PostList,
			func() (models.Post, error) { return api.CreatePost(*payload) },
			api.ListPosts)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", nil)
	}
}

func UpdatePost(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedPost").(*models.Post)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.PostList, id,
			func(p models.Post) uint { return p.ID },
			func() (models.Post, error) { return api.UpdatePost(id, *payload) },
			api.ListPosts)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", nil)
	}
}

func DeletePost(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.PostList, id,
			func(p models.Post) uint { return p.ID },
			func() error { return api.DeletePost(id) },
			api.ListPosts)
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
	}
}

// Courses — refresh after each mutation, scoped to the admin's company

func CreateCourse(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		payload := c.Locals("validatedCourse").(*models.Course)
		payload.UserID = session.UserID
		api := client.WithToken(session.Token)

		err := store.Create(st, store.CourseList,
			func() (models.Course, error) { return api.CreateCourse(*payload) },
			func() ([]models.Course, error) { return api.ListCompanyCourses(session.UserID) })
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", nil)
	}
}

func UpdateCourse(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		payload := c.Locals("validatedCourse").(*models.Course)
		api := client.WithToken(session.Token)

		err = store.Update(st, store.CourseList, id,
			func(cr models.Course) uint { return cr.ID },
			func() (models.Course, error) { return api.UpdateCourse(id, *payload) },
			func() ([]models.Course, error) { return api.ListCompanyCourses(session.UserID) })
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", nil)
	}
}

func DeleteCourse(client *backend.Client, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)
		id, err := paramID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		api := client.WithToken(session.Token)

		err = store.Delete(st, store.CourseList, id,
			func(cr models.Course) uint { return cr.ID },
			func() error { return api.DeleteCourse(id) },
			func() ([]models.Course, error) { return api.ListCompanyCourses(session.UserID) })
		if err != nil {
			return fail(c, err)
		}
		session.CloseDialog()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
	}
}
