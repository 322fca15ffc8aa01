package main

import (
	"log"
	"os"

	"github.com/ljubanOpacic10/tiac-food-ordering/cmd/config"
	migration "github.com/ljubanOpacic10/tiac-food-ordering/cmd/database/migrate"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
