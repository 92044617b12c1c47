package backend

import (
	"fmt"
	"net/http"

	"clebut/models"
)

// Auth

// LoginResponse is the body returned by POST /auth/login
type LoginResponse struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}

func (c *Client) Login(email, password string) (*LoginResponse, error) {
	body, err := c.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	out, err := decodeOne[LoginResponse](body)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Team members live under /users

func (c *Client) ListTeam() ([]models.TeamMember, error) {
	return getList[models.TeamMember](c, "/users")
}

func (c *Client) CreateTeamMember(payload models.TeamMember) (models.TeamMember, error) {
	return postOne[models.TeamMember](c, "/users", payload)
}

func (c *Client) UpdateTeamMember(id uint, payload models.TeamMember) (models.TeamMember, error) {
	return putOne[models.TeamMember](c, fmt.Sprintf("/users/%d", id), payload)
}

func (c *Client) DeleteTeamMember(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}

// Services

func (c *Client) ListServices() ([]models.Service, error) {
	return getList[models.Service](c, "/services")
}

func (c *Client) CreateService(payload models.Service) (models.Service, error) {
	return postOne[models.Service](c, "/services", payload)
}

func (c *Client) UpdateService(id uint, payload models.Service) (models.Service, error) {
	return putOne[models.Service](c, fmt.Sprintf("/services/%d", id), payload)
}

func (c *Client) DeleteService(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/services/%d", id), nil)
	return err
}

// Projects

func (c *Client) ListProjects() ([]models.Project, error) {
	return getList[models.Project](c, "/projects")
}

func (c *Client) CreateProject(payload models.Project) (models.Project, error) {
	return postOne[models.Project](c, "/projects", payload)
}

func (c *Client) UpdateProject(id uint, payload models.Project) (models.Project, error) {
	return putOne[models.Project](c, fmt.Sprintf("/projects/%d", id), payload)
}

func (c *Client) DeleteProject(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	return err
}

// Testimonials

func (c *Client) ListTestimonials() ([]models.Testimonial, error) {
	return getList[models.Testimonial](c, "/testimonials")
}

func (c *Client) CreateTestimonial(payload models.Testimonial) (models.Testimonial, error) {
	return postOne[models.Testimonial](c, "/testimonials", payload)
}

func (c *Client) UpdateTestimonial(id uint, payload models.Testimonial) (models.Testimonial, error) {
	return putOne[models.Testimonial](c, fmt.Sprintf("/testimonials/%d", id), payload)
}

func (c *Client) DeleteTestimonial(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/testimonials/%d", id), nil)
	return err
}

// Partners

func (c *Client) ListPartners() ([]models.Partner, error) {
	return getList[models.Partner](c, "/partners")
}

func (c *Client) CreatePartner(payload models.Partner) (models.Partner, error) {
	return postOne[models.Partner](c, "/partners", payload)
}

func (c *Client) UpdatePartner(id uint, payload models.Partner) (models.Partner, error) {
	return putOne[models.Partner](c, fmt.Sprintf("/partners/%d", id), payload)
}

func (c *Client) DeletePartner(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/partners/%d", id), nil)
	return err
}

// Contact messages. The backend reads from /contact-messages but mutates
// under /messages; both spellings are kept on purpose until the backend
// contract is unified (see DESIGN.md).

func (c *Client) ListMessages() ([]models.Message, error) {
	return getList[models.Message](c, "/contact-messages")
}

func (c *Client) CreateMessage(payload models.Message) (models.Message, error) {
	return postOne[models.Message](c, "/contact-messages", payload)
}

func (c *Client) MarkMessageRead(id uint) error {
	_, err := c.do(http.MethodPut, fmt.Sprintf("/messages/%d/read", id), nil)
	return err
}

func (c *Client) DeleteMessage(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/messages/%d", id), nil)
	return err
}

// Trainee enrollments. Public applications post to /trainee-enrollments,
// the admin list lives at /trainee-enrollments/all, and status changes go
// to /enrollments/:id/status — same naming split as the messages resource.

func (c *Client) SubmitEnrollment(payload models.EnrollmentRequest) (models.Enrollment, error) {
	return postOne[models.Enrollment](c, "/trainee-enrollments", payload)
}

func (c *Client) ListEnrollments() ([]models.Enrollment, error) {
	return getList[models.Enrollment](c, "/trainee-enrollments/all")
}

func (c *Client) UpdateEnrollmentStatus(id uint, status string) error {
	_, err := c.do(http.MethodPatch, fmt.Sprintf("/enrollments/%d/status", id), map[string]string{"status": status})
	return err
}

func (c *Client) DeleteEnrollment(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/trainee-enrollments/%d", id), nil)
	return err
}

// Blog posts

func (c *Client) ListPosts() ([]models.Post, error) {
	return getList[models.Post](c, "/posts/companyposts")
}

func (c *Client) CreatePost(payload models.Post) (models.Post, error) {
	return postOne[models.Post](c, "/posts/create", payload)
}

func (c *Client) UpdatePost(id uint, payload models.Post) (models.Post, error) {
	return putOne[models.Post](c, fmt.Sprintf("/posts/%d", id), payload)
}

func (c *Client) DeletePost(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil)
	return err
}

// Courses

func (c *Client) ListCourses() ([]models.Course, error) {
	return getList[models.Course](c, "/course")
}

// ListCompanyCourses returns the courses owned by one admin user
func (c *Client) ListCompanyCourses(userID uint) ([]models.Course, error) {
	return getList[models.Course](c, fmt.Sprintf("/course/company/%d", userID))
}

func (c *Client) GetCourse(id uint) (models.Course, error) {
	return getOne[models.Course](c, fmt.Sprintf("/course/%d", id))
}

func (c *Client) CreateCourse(payload models.Course) (models.Course, error) {
	return postOne[models.Course](c, "/course", payload)
}

func (c *Client) UpdateCourse(id uint, payload models.Course) (models.Course, error) {
	return putOne[models.Course](c, fmt.Sprintf("/course/%d", id), payload)
}

func (c *Client) DeleteCourse(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/course/%d", id), nil)
	return err
}

// Company aggregate for the public marketing pages

func (c *Client) GetCompany(id int) (models.Company, error) {
	return getOne[models.Company](c, fmt.Sprintf("/companies/%d", id))
}
