package config

import (
	"Home-Inventory-Backend/internal/api/handlers"
	"Home-Inventory-Backend/internal/api/routes"
	"Home-Inventory-Backend/internal/middleware"
	"Home-Inventory-Backend/internal/utils"
	"Home-Inventory-Backend/pkg/events"
	"Home-Inventory-Backend/pkg/inventory"
	"Home-Inventory-Backend/pkg/jwt"
	"Home-Inventory-Backend/pkg/reminder"
	"Home-Inventory-Backend/pkg/user"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const (
	defaultReminderCron   = "0 8 * * *"
	defaultWorkers        = 8
	defaultWebhookTimeout = 10 * time.Second
)

func NewApp(db *gorm.DB) (*fiber.App, *reminder.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Events
	publisher := newPublisher()

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository, publisher)

	// Reminder scheduler
	emailSender := reminder.NewEmailSender()
	webhookSender := reminder.NewWebhookSender(webhookTimeout())
	reminderService := reminder.NewReminderService(
		userRepository,
		inventoryRepository,
		emailSender,
		webhookSender,
		reminderWorkers(),
	)
	scheduler := reminder.NewScheduler(reminderService, reminderCron())

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	itemHandler := handlers.NewItemHandler(inventoryService, validator)
	transactionHandler := handlers.NewTransactionHandler(inventoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		ItemHandler:        itemHandler,
		TransactionHandler: transactionHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()

	return app, scheduler, nil
}

func newPublisher() events.Publisher {
	brokers := utils.GetConfig("KAFKA_BROKERS")
	if brokers == "" {
		return events.NewNoopPublisher()
	}

	topic := utils.GetConfig("KAFKA_TOPIC")
	if topic == "" {
		topic = "inventory.transactions"
	}

	return events.NewKafkaPublisher(strings.Split(brokers, ","), topic)
}

func reminderCron() string {
	if spec := utils.GetConfig("REMINDER_CRON"); spec != "" {
		return spec
	}
	return defaultReminderCron
}

func reminderWorkers() int {
	if raw := utils.GetConfig("REMINDER_WORKERS"); raw != "" {
		if workers, err := strconv.Atoi(raw); err == nil && workers > 0 {
			return workers
		}
	}
	return defaultWorkers
}

func webhookTimeout() time.Duration {
	if raw := utils.GetConfig("WEBHOOK_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultWebhookTimeout
}
