package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	gocache "github.com/patrickmn/go-cache"

	"clebut/backend"
	"clebut/config"
	"clebut/dashboard"
	adminRoutes "clebut/routers/adminRoutes"
	siteRoutes "clebut/routers/siteRoutes"
	"clebut/store"
	"clebut/utils"
)

func main() {
	config.LoadConfig()

	client := backend.New(config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.HTTPTimeoutSeconds)*time.Second)

	cacheTTL := time.Duration(config.AppConfig.CacheTTLMinutes) * time.Minute
	companyCache := gocache.New(cacheTTL, 2*cacheTTL)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	registry := dashboard.NewRegistry(sessionTTL)

	st := store.New()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	siteRoutes.SetupSiteRoutes(app, client, companyCache)
	adminRoutes.SetupAdminRoutes(app, client, st, registry)

	utils.InitializeCacheScheduler(client, companyCache)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
