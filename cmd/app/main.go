package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"microshop/cmd"
	httpin "microshop/internal/adapters/in/http"
	"microshop/internal/adapters/out/postgres/orderrepo"
	"microshop/internal/adapters/out/postgres/productrepo"
	"microshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderTTL = 30 * time.Minute

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)
	startJobs(&app, configs)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:      envVariable("HTTP_PORT"),
		DBHost:        envVariable("DB_HOST"),
		DBPort:        envVariable("DB_PORT"),
		DBUser:        envVariable("DB_USER"),
		DBPassword:    envVariable("DB_PASSWORD"),
		DBName:        envVariable("DB_NAME"),
		DBSslMode:     envVariable("DB_SSLMODE"),
		StaleOrderTTL: staleOrderTTL(),
	}
	return config
}

func envVariable(key string) string {
	return os.Getenv(key)
}

func staleOrderTTL() time.Duration {
	raw := os.Getenv("STALE_ORDER_TTL")
	if raw == "" {
		return defaultStaleOrderTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Warnf("Invalid STALE_ORDER_TTL %q, using default %s", raw, defaultStaleOrderTTL)
		return defaultStaleOrderTTL
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&productrepo.ProductDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderTTL,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateItemQuantityCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetProductsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
