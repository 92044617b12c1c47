package models

// Course is a training offering with a public enrollment flow.
// The backend spells curriculum "calculmn" and prerequisites "prequesites";
// the tags keep the wire names so existing records round-trip.
type Course struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartDate     string   `json:"startDate"`
	Location      string   `json:"location"`
	Level         string   `json:"level"`
	Price         float64  `json:"price"`
	Curriculum    []string `json:"calculmn"`
	Prerequisites []string `json:"prequesites"`
	Benefits      []string `json:"benefits"`
	UserID        uint     `json:"userId"`
	CoverImage    string   `json:"coverImage"`
}
