package siteController

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
	"clebut/models"
	enrollmentValidator "clebut/validators/enrollment"
)

// ListCourses serves the public course catalogue
func ListCourses(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courses, err := client.ListCourses()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch courses!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
	}
}

// GetCourse serves one course detail page
func GetCourse(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		course, err := client.GetCourse(uint(id))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
	}
}

// Enroll submits a trainee application for one course. The company id on
// the wire is the course's owning user id, matching what the backend
// expects from the enrollment form.
func Enroll(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.SubmitRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		course, err := client.GetCourse(uint(id))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		enrollment, err := client.SubmitEnrollment(models.EnrollmentRequest{
			CompanyID:          course.UserID,
			CourseID:           course.ID,
			FullName:           reqData.FullName,
			Email:              reqData.Email,
			Phone:              reqData.Phone,
			ExperienceLevel:    reqData.ExperienceLevel,
			LearningGoals:      reqData.LearningGoals,
			Availability:       reqData.Availability,
			LearningStyle:      reqData.LearningStyle,
			AccessibilityNeeds: reqData.AccessibilityNeeds,
			AgreeToTerms:       reqData.AgreeToTerms,
		})
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to submit enrollment. Please try again.", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", enrollment)
	}
}
