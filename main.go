package main

import (
	"log"

	"jims/config"
	"jims/jobs"
	"jims/routes"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := jobs.InitCronJobs(c, config.RedisClient); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	port := config.GetEnv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
