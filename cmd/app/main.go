package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"library/cmd"
	"library/internal/adapters/out/kafka"
	"library/internal/adapters/out/postgres/bookrepo"
	"library/internal/adapters/out/postgres/categoryrepo"
	"library/internal/adapters/out/postgres/orderrepo"
	"library/internal/adapters/out/postgres/reviewrepo"
	"library/internal/adapters/out/postgres/userrepo"
	"library/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs, logger)

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	producer, err := kafka.NewOrderProducer(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaOrderChangedTopic,
		logger,
	)
	if err != nil {
		logger.Error("Failed to create kafka producer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = producer.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, producer, logger)

	jobManager := jobs.NewJobManager(app.CreateExpireOverdueOrdersCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
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
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:          goDotEnvVariable("REDIS_PASSWORD"),
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

func connectDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&bookrepo.BookDTO{},
		&userrepo.UserDTO{},
		&reviewrepo.ReviewDTO{},
		&categoryrepo.CategoryDTO{},
		&categoryrepo.SubcategoryDTO{},
	)
	if err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
