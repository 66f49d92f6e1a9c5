package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cargotracker/cmd"
	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/pkg/sampledata"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectToDatabase(configs)
	mustMigrateDatabase(gormDB)
	mustSeedReferenceData(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer func() {
		if err := app.Close(); err != nil {
			log.Errorf("Failed to close application resources: %v", err)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		PathFinderURL:            goDotEnvVariable("PATH_FINDER_URL"),
		HandlingReportUploadDir:  goDotEnvVariable("HANDLING_REPORT_UPLOAD_DIR"),
		HandlingReportFailureDir: goDotEnvVariable("HANDLING_REPORT_FAILURE_DIR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectToDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&locationrepo.LocationDTO{},
		&voyagerepo.VoyageDTO{},
		&voyagerepo.CarrierMovementDTO{},
		&cargorepo.CargoDTO{},
		&cargorepo.LegDTO{},
		&handlingrepo.HandlingEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func mustSeedReferenceData(gormDB *gorm.DB) {
	ctx := context.Background()

	locationRepo := locationrepo.NewGormLocationRepository(gormDB)
	existing, err := locationRepo.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to check reference data: %v", err)
	}
	if len(existing) > 0 {
		return
	}

	for _, loc := range sampledata.AllLocations() {
		if err = locationRepo.Add(ctx, loc); err != nil {
			log.Fatalf("Failed to seed location %s: %v", loc.UnLocode(), err)
		}
	}

	voyageRepo := voyagerepo.NewGormVoyageRepository(gormDB)
	for _, v := range sampledata.AllVoyages() {
		if err = voyageRepo.Add(ctx, v); err != nil {
			log.Fatalf("Failed to seed voyage %s: %v", v.Number(), err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
