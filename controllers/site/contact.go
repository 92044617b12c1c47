package siteController

import (
	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/middleware"
	"clebut/models"
	contactValidator "clebut/validators/contact"
)

// SubmitContact forwards a contact form submission to the backend
func SubmitContact(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedContact").(*contactValidator.SubmitRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		message, err := client.CreateMessage(models.Message{
			Name:    reqData.Name,
			Email:   reqData.Email,
			Subject: reqData.Subject,
			Message: reqData.Message,
		})
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to send your message. Please try again.", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", message)
	}
}
