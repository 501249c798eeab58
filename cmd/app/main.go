package main

import (
	"fmt"
	"log/slog"
	"os"

	"pickleshop/cmd"
	"pickleshop/internal/adapters/out/postgres/contactrepo"
	"pickleshop/internal/adapters/out/postgres/draftrepo"
	"pickleshop/internal/adapters/out/postgres/orderrepo"
	"pickleshop/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		ShopName:               goDotEnvVariable("SHOP_NAME"),
		EmailRelayBaseURL:      goDotEnvVariable("EMAIL_RELAY_BASE_URL"),
		EmailRelayServiceID:    goDotEnvVariable("EMAIL_RELAY_SERVICE_ID"),
		EmailRelayUserID:       goDotEnvVariable("EMAIL_RELAY_USER_ID"),
		OrderEmailTemplateID:   goDotEnvVariable("ORDER_EMAIL_TEMPLATE_ID"),
		ContactEmailTemplateID: goDotEnvVariable("CONTACT_EMAIL_TEMPLATE_ID"),
		SnapshotTTLHours:       goDotEnvVariable("SNAPSHOT_TTL_HOURS"),
		ThankYouDelaySeconds:   goDotEnvVariable("THANK_YOU_DELAY_SECONDS"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
		&contactrepo.MessageDTO{},
		&draftrepo.SnapshotDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
