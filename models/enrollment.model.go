package models

// CourseRef is the course reference embedded in an enrollment record.
// The backend only returns the id and title here, enough for grouping.
type CourseRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// Enrollment is a trainee application submitted from the public course page
type Enrollment struct {
	ID                 uint       `json:"id"`
	FullName           string     `json:"fullName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Course             *CourseRef `json:"course,omitempty"`
	ExperienceLevel    string     `json:"experienceLevel"`
	LearningGoals      string     `json:"learningGoals"`
	Availability       []string   `json:"availability"`
	LearningStyle      []string   `json:"learningStyle"`
	AccessibilityNeeds string     `json:"accessibilityNeeds"`
	AgreeToTerms       bool       `json:"agreeToTerms"`
	Status             string     `json:"status,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
}

// EnrollmentRequest is the payload posted to /trainee-enrollments
type EnrollmentRequest struct {
	CompanyID          uint     `json:"companyId"`
	CourseID           uint     `json:"courseId"`
	FullName           string   `json:"fullName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	ExperienceLevel    string   `json:"experienceLevel"`
	LearningGoals      string   `json:"learningGoals"`
	Availability       []string `json:"availability"`
	LearningStyle      []string `json:"learningStyle"`
	AccessibilityNeeds string   `json:"accessibilityNeeds"`
	AgreeToTerms       bool     `json:"agreeToTerms"`
}
