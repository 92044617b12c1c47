package enrollmentValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"clebut/middleware"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// SubmitRequest is the public enrollment form payload
type SubmitRequest struct {
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

// Submit validator middleware for the trainee enrollment form
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FullName) == "" {
			errors["fullName"] = "Full name is required!"
		}
		if reqData.Email == "" || !emailRe.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Phone == "" || !phoneRe.MatchString(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}
		if strings.TrimSpace(reqData.ExperienceLevel) == "" {
			errors["experienceLevel"] = "Experience level is required!"
		}
		if strings.TrimSpace(reqData.LearningGoals) == "" {
			errors["learningGoals"] = "Learning goals are required!"
		}
		if !reqData.AgreeToTerms {
			errors["agreeToTerms"] = "You must agree to the terms of enrollment!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
