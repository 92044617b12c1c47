package models

// Post is a blog entry managed from the dashboard blog tab
type Post struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	Published  bool   `json:"published"`
	CoverImage string `json:"coverImage"`
	Author     string `json:"author"`
	Date       string `json:"date"`
}
