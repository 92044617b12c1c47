package dashboard

import (
	"strconv"

	"clebut/models"
)

// UnknownGroupKey buckets enrollments whose course reference is missing
const UnknownGroupKey = "unknown"

// collapsedLimit caps the visible students per group until "show all"
const collapsedLimit = 3

// GroupView is one course bucket rendered on the enrollments tab
type GroupView struct {
	Key      string              `json:"key"`
	Course   models.CourseRef    `json:"course"`
	Total    int                 `json:"total"`
	ShowAll  bool                `json:"showAll"`
	Active   bool                `json:"active"`
	Students []models.Enrollment `json:"students"`
}

// groupKey derives the bucket key from the embedded course reference
func groupKey(e models.Enrollment) string {
	if e.Course == nil || e.Course.ID == 0 {
		return UnknownGroupKey
	}
	return strconv.FormatUint(uint64(e.Course.ID), 10)
}

// EnrollmentGroups derives the course buckets from the flat enrollment
// list, in first-seen order, and applies this session's disclosure state.
// If the active group vanished (its last student was deleted) the first
// remaining group becomes active instead of leaving an empty selection.
func (s *Session) EnrollmentGroups(items []models.Enrollment) []GroupView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order []string
	buckets := make(map[string]*GroupView)
	for _, e := range items {
		key := groupKey(e)
		g, ok := buckets[key]
		if !ok {
			g = &GroupView{Key: key}
			if e.Course != nil {
				g.Course = *e.Course
			} else {
				g.Course = models.CourseRef{Title: "Unknown"}
			}
			buckets[key] = g
			order = append(order, key)
		}
		g.Students = append(g.Students, e)
	}

	if _, ok := buckets[s.activeGroup]; !ok {
		s.activeGroup = ""
	}
	if s.activeGroup == "" && len(order) > 0 {
		s.activeGroup = order[0]
	}

	views := make([]GroupView, 0, len(order))
	for _, key := range order {
		g := buckets[key]
		g.Total = len(g.Students)
		g.ShowAll = s.showAll[key]
		g.Active = key == s.activeGroup
		if !g.ShowAll && len(g.Students) > collapsedLimit {
			g.Students = g.Students[:collapsedLimit]
		}
		views = append(views, *g)
	}
	return views
}

// SelectGroup makes a group active. Pure state change, no network effect;
// an unknown key is ignored until the next grouping pass corrects it.
func (s *Session) SelectGroup(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeGroup = key
}

// ToggleShowAll flips the "show all students" disclosure for one group
func (s *Session) ToggleShowAll(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showAll[key] = !s.showAll[key]
}
