package store

import (
	"log"
	"sync"

	"clebut/backend"
)

// FetchAll loads every collection from the backend concurrently. Each
// fetch fails on its own: a broken resource logs and comes back as an
// empty list so the rest of the dashboard still renders. Nothing here
// redirects on 401 — only the session check does that.
func (s *Store) FetchAll(c *backend.Client, userID uint) {
	var wg sync.WaitGroup

	fetch := func(name string, load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil {
				log.Printf("Failed to fetch %s: %v", name, err)
			}
		}()
	}

	fetch("team", func() error {
		items, err := c.ListTeam()
		s.replace(func(d *Collections) { d.Team = orEmpty(items, err) })
		return err
	})
	fetch("services", func() error {
		items, err := c.ListServices()
		s.replace(func(d *Collections) { d.Services = orEmpty(items, err) })
		return err
	})
	fetch("projects", func() error {
		items, err := c.ListProjects()
		s.replace(func(d *Collections) { d.Projects = orEmpty(items, err) })
		return err
	})
	fetch("testimonials", func() error {
		items, err := c.ListTestimonials()
		s.replace(func(d *Collections) { d.Testimonials = orEmpty(items, err) })
		return err
	})
	fetch("partners", func() error {
		items, err := c.ListPartners()
		s.replace(func(d *Collections) { d.Partners = orEmpty(items, err) })
		return err
	})
	fetch("messages", func() error {
		items, err := c.ListMessages()
		s.replace(func(d *Collections) { d.Messages = orEmpty(items, err) })
		return err
	})
	fetch("enrollments", func() error {
		items, err := c.ListEnrollments()
		s.replace(func(d *Collections) { d.Enrollments = orEmpty(items, err) })
		return err
	})
	fetch("posts", func() error {
		items, err := c.ListPosts()
		s.replace(func(d *Collections) { d.Posts = orEmpty(items, err) })
		return err
	})
	fetch("courses", func() error {
		items, err := c.ListCompanyCourses(userID)
		s.replace(func(d *Collections) { d.Courses = orEmpty(items, err) })
		return err
	})

	wg.Wait()
}

func (s *Store) replace(apply func(*Collections)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.data)
}

// orEmpty normalizes a failed or nil fetch result into an empty list
func orEmpty[T any](items []T, err error) []T {
	if err != nil || items == nil {
		return []T{}
	}
	return items
}
