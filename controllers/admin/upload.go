package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"clebut/backend"
	"clebut/config"
	"clebut/middleware"
)

// UploadImage forwards a form image to the backend's media endpoint and
// returns the public URL for the form to store on its entity.
func UploadImage(client *backend.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := middleware.Session(c)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Failed to open uploaded file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
		}
		defer file.Close()

		folder := c.FormValue("folderName", config.AppConfig.UploadFolder)
		url, err := client.WithToken(session.Token).UploadFile(fileHeader.Filename, file, folder)
		if err != nil {
			return fail(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{"url": url})
	}
}
