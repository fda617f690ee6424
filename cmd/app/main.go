package main

import (
	"log"

	"pixelpantry/cmd/config"
	"pixelpantry/internal/utils"
)

func main() {
	utils.LoadConfig()

	store, err := config.ConnectStorage()
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	app, err := config.NewApp(store)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
