package models

type Partner struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Website string `json:"website,omitempty"`
}
