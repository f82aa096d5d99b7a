package main

import (
	"log"

	"resto-pos-backend/cmd/config"
	migration "resto-pos-backend/cmd/database/migrate"
	"resto-pos-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	if err := app.Listen(":5000"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
