package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"tracking/cmd"
	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres/migrations"
	"tracking/internal/generated/servers"

	_ "tracking/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := makeConnectionString(configs)
	migrateDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func makeConnectionString(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func migrateDatabase(dsn string) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database for migrations: %v", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		log.Fatalf("Error creating migration provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAddTrackingEventCommandHandler(),
		app.CreateAddLocationEventCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateGetShipmentByTrackingCodeQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateGetAllBranchesQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
