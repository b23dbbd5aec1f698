package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aryan26102004/Bill-Genius/cmd"
	httpin "github.com/aryan26102004/Bill-Genius/internal/adapters/in/http"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres/deliveryrepo"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres/driverrepo"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres/orderrepo"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres/productrepo"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres/reservationrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:             goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
		TrackingBaseURL:       goDotEnvVariable("TRACKING_BASE_URL"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&driverrepo.DriverDTO{},
		&reservationrepo.ReservationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateGetOrderByTrackingQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetDriverDeliveriesQueryHandler(),
		app.CreateGetInventoryQueryHandler(),
		app.EventSource(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
