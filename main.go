package main

import (
	"Home-Inventory-Backend/cmd/config"
	migration "Home-Inventory-Backend/cmd/database/migrate"
	"Home-Inventory-Backend/internal/utils"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, scheduler, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		scheduler.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":3000"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
