package dashboard

// EntityKind names the record type an admin is currently working on
type EntityKind string

const (
	KindNone        EntityKind = ""
	KindTeamMember  EntityKind = "team"
	KindService     EntityKind = "service"
	KindProject     EntityKind = "project"
	KindTestimonial EntityKind = "testimonial"
	KindPartner     EntityKind = "partner"
	KindMessage     EntityKind = "message"
	KindEnrollment  EntityKind = "enrollment"
	KindPost        EntityKind = "post"
	KindCourse      EntityKind = "course"
)

// Selection is the single "currently editing" reference. One tagged value
// replaces a per-entity field for each type, so closing a dialog cannot
// leave a stale reference behind for the next one.
type Selection struct {
	Kind EntityKind `json:"kind"`
	ID   uint       `json:"id"`
}

// Dialog is the modal state: closed, or open with a title and form. There
// is no queue; opening while open silently replaces the content.
type Dialog struct {
	Open  bool   `json:"open"`
	Title string `json:"title"`
	Form  string `json:"form"`
}

// OpenDialog opens (or replaces) the modal with the given form
func (s *Session) OpenDialog(title, form string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = Dialog{Open: true, Title: title, Form: form}
}

// Select records the entity an edit dialog is about to show
func (s *Session) Select(kind EntityKind, id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Kind: kind, ID: id}
}

// CloseDialog closes the modal and always clears the selection
func (s *Session) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = Dialog{}
	s.selection = Selection{}
}

// Dialog returns the current modal state
func (s *Session) Dialog() Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog
}

// Selection returns the current editing reference
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}
