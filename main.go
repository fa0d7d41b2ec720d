package main

import (
	"log"

	"effsample/adapters/api"
	"effsample/adapters/postgres"
	"effsample/app"
	"effsample/internal"
	"effsample/internal/config"
	"effsample/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	gin.SetMode(appConfig.Server.GinMode)

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	reportRepo := postgres.NewReportRepository(db)
	reportService := app.NewReportService(reportRepo)

	server := api.NewServer(reportService, reportRepo, logger)
	if err := server.Run(appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDatabase connects to PostgreSQL and ensures the report schema
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := postgres.EnsureSchema(db); err != nil {
		return nil, errors.Wrap(err, "failed to ensure schema")
	}

	return db, nil
}
