package siteController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"clebut/backend"
	"clebut/config"
	"clebut/middleware"
	"clebut/models"
)

// companyCacheKey holds the aggregate the marketing pages render from
const companyCacheKey = "company"

// GetCompany serves the /companies/:id aggregate for the public pages,
// from cache when warm so the backend is not hit on every page view.
func GetCompany(client *backend.Client, cache *gocache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cached, ok := cache.Get(companyCacheKey); ok {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched successfully!", cached.(models.Company))
		}

		company, err := client.GetCompany(config.AppConfig.CompanyID)
		if err != nil {
			log.Printf("Failed to fetch company aggregate: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch company profile!", nil)
		}

		cache.SetDefault(companyCacheKey, company)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched successfully!", company)
	}
}

// RefreshCompanyCache re-fetches the aggregate; the cron scheduler calls
// this so public pages keep serving warm data between visits.
func RefreshCompanyCache(client *backend.Client, cache *gocache.Cache) error {
	company, err := client.GetCompany(config.AppConfig.CompanyID)
	if err != nil {
		return err
	}
	cache.SetDefault(companyCacheKey, company)
	return nil
}
