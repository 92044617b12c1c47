package models

// Project is a delivered engagement shown on the projects section
type Project struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Client       string   `json:"client"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Outcome      string   `json:"outcome"`
	Slug         string   `json:"slug"`
	Technologies []string `json:"technologies"`
}
