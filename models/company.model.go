package models

// Company is the aggregate returned by /companies/:id, used by the
// public marketing pages. The nested collections mirror the dashboard ones.
type Company struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	Mission      string        `json:"mission"`
	Vision       string        `json:"vision"`
	Logo         string        `json:"logo"`
	Services     []Service     `json:"services"`
	Testimonials []Testimonial `json:"testimonials"`
	Partners     []Partner     `json:"partners"`
	Team         []TeamMember  `json:"team"`
}

// AuthUser is the user object returned alongside the login token
type AuthUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
