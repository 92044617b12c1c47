package utils

import (
	"fmt"
	"log"

	gocache "github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"

	"clebut/backend"
	"clebut/config"
	siteController "clebut/controllers/site"
)

// InitializeCacheScheduler keeps the public company aggregate warm so
// marketing page views rarely wait on the backend. Runs on the cache TTL
// interval; a failed refresh keeps the last good copy.
func InitializeCacheScheduler(client *backend.Client, cache *gocache.Cache) *cron.Cron {
	c := cron.New()

	spec := fmt.Sprintf("@every %dm", config.AppConfig.CacheTTLMinutes)
	c.AddFunc(spec, func() {
		if err := siteController.RefreshCompanyCache(client, cache); err != nil {
			log.Printf("Company cache refresh failed: %v", err)
		}
	})

	c.Start()
	log.Printf("Company cache scheduler started - refreshes every %dm", config.AppConfig.CacheTTLMinutes)
	return c
}
