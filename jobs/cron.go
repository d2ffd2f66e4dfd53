package jobs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// listCacheKeys are the cached list payloads swept nightly so a
// missed invalidation never outlives a day.
var listCacheKeys = []string{
	"employees:all",
	"inventory:all",
	"sales:all",
	"gcash:all",
	"paymaya:all",
	"juanpay:all",
	"payroll:all",
	"categories:all",
}

// InitCronJobs schedules the nightly cache sweep. No business data is
// touched from here.
func InitCronJobs(c *cron.Cron, rdb *redis.Client) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if rdb == nil {
			return
		}
		ctx := context.Background()
		for _, key := range listCacheKeys {
			if err := rdb.Del(ctx, key).Err(); err != nil {
				log.Printf("Cache sweep failed for %s: %v", key, err)
			}
		}
		log.Println("Nightly cache sweep completed")
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
