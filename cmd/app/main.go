package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfloor/cmd"
	_ "shopfloor/docs"
	httpadapter "shopfloor/internal/adapters/in/http"
	"shopfloor/internal/adapters/out/postgres/assignmentrepo"
	"shopfloor/internal/adapters/out/postgres/auditrepo"
	"shopfloor/internal/adapters/out/postgres/locationrepo"
	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/generated/servers"
	"shopfloor/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Shopfloor Scheduling API
// @version 1.0
// @description Routing and queue-ordering scheduler for production orders.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustAutoMigrate(gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(root.CreateRecomputeQueuesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
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

// mustConnectDB opens the database through the pq driver so repository error
// translation sees *pq.Error values, then hands the connection to gorm.
func mustConnectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustAutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&locationrepo.LocationDTO{},
		&assignmentrepo.AssignmentDTO{},
		&auditrepo.AuditEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		root.CreateCreateLocationCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateDetachOrderLocationCommandHandler(),
		root.CreateEnqueueAtLocationCommandHandler(),
		root.CreateFinishWorkCommandHandler(),
		root.CreatePauseWorkCommandHandler(),
		root.CreateRecomputeQueuesCommandHandler(),
		root.CreateRecordShipmentCommandHandler(),
		root.CreateRefreshLocationQueueCommandHandler(),
		root.CreateReorderLocationQueueCommandHandler(),
		root.CreateSetGlobalPositionCommandHandler(),
		root.CreateSetRushCommandHandler(),
		root.CreateStartWorkCommandHandler(),
		root.CreateUnsetRushCommandHandler(),
		root.CreateUpdateCompletedQuantityCommandHandler(),
		root.CreateGetGlobalQueueQueryHandler(),
		root.CreateGetLocationQueueQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
