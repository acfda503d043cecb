package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"foodorder/cmd"
	httpserver "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/itemrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/productrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Error("Failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		PaymentServiceURL:    goDotEnvVariable("PAYMENT_SERVICE_URL"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderQueueTopic: goDotEnvVariable("KAFKA_ORDER_QUEUE_TOPIC"),
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

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&itemrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateEditItemCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateCheckoutOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateAcknowledgePaymentCommandHandler(),
		app.CreateFinalizeOrderCommandHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetOrderItemsQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetCustomersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
