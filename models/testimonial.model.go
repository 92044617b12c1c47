package models

type Testimonial struct {
	ID       uint   `json:"id"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position"`
}
