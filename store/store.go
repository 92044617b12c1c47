// Package store keeps the in-memory copy of the dashboard collections and
// reconciles it against the backend after every mutation. It is never a
// source of truth: state here is the last known server state.
package store

import (
	"sync"

	"clebut/models"
)

// Collections holds the nine lists synced from the backend
type Collections struct {
	Team         []models.TeamMember
	Services     []models.Service
	Projects     []models.Project
	Testimonials []models.Testimonial
	Partners     []models.Partner
	Messages     []models.Message
	Enrollments  []models.Enrollment
	Posts        []models.Post
	Courses      []models.Course
}

// Store guards Collections for concurrent handler access
type Store struct {
	mu   sync.Mutex
	data Collections
}

func New() *Store {
	return &Store{}
}

// Snapshot returns a copy safe to render without holding the lock
func (s *Store) Snapshot() Collections {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.data
	out.Team = append([]models.TeamMember(nil), s.data.Team...)
	out.Services = append([]models.Service(nil), s.data.Services...)
	out.Projects = append([]models.Project(nil), s.data.Projects...)
	out.Testimonials = append([]models.Testimonial(nil), s.data.Testimonials...)
	out.Partners = append([]models.Partner(nil), s.data.Partners...)
	out.Messages = append([]models.Message(nil), s.data.Messages...)
	out.Enrollments = append([]models.Enrollment(nil), s.data.Enrollments...)
	out.Posts = append([]models.Post(nil), s.data.Posts...)
	out.Courses = append([]models.Course(nil), s.data.Courses...)
	return out
}

// Accessors used by the generic executor. Each returns the slot for one
// collection inside Collections; the executor mutates through them.
var (
	TeamList        = func(d *Collections) *[]models.TeamMember { return &d.Team }
	ServiceList     = func(d *Collections) *[]models.Service { return &d.Services }
	ProjectList     = func(d *Collections) *[]models.Project { return &d.Projects }
	TestimonialList = func(d *Collections) *[]models.Testimonial { return &d.Testimonials }
	PartnerList     = func(d *Collections) *[]models.Partner { return &d.Partners }
	MessageList     = func(d *Collections) *[]models.Message { return &d.Messages }
	EnrollmentList  = func(d *Collections) *[]models.Enrollment { return &d.Enrollments }
	PostList        = func(d *Collections) *[]models.Post { return &d.Posts }
	CourseList      = func(d *Collections) *[]models.Course { return &d.Courses }
)

// ReplaceEnrollments swaps in a freshly fetched enrollment list
func (s *Store) ReplaceEnrollments(items []models.Enrollment) {
	s.replace(func(d *Collections) { d.Enrollments = orEmpty(items, nil) })
}

// MarkMessageRead flags one message as read in local state. Calling it
// again for the same id is a no-op, matching the backend's idempotent
// read endpoint.
func (s *Store) MarkMessageRead(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Messages {
		if s.data.Messages[i].ID == id {
			s.data.Messages[i].Read = true
		}
	}
}

// UnreadMessages counts messages not yet opened by the admin
func (s *Store) UnreadMessages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.data.Messages {
		if !m.Read {
			n++
		}
	}
	return n
}
