package models

// Message is a contact form submission from the public site
type Message struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
