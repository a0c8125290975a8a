package routes

import (
	"Home-Inventory-Backend/internal/api/handlers"
	"Home-Inventory-Backend/internal/middleware"
	"Home-Inventory-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	ItemHandler        handlers.ItemHandler
	TransactionHandler handlers.TransactionHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Items()
	c.Transactions()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		auth.Put("/settings", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateSettings)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))

	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id/amount", c.ItemHandler.GetItemAmount)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
}

func (c *Config) Transactions() {
	transactions := c.App.Group("/api/v1/transactions", c.Middleware.AuthMiddleware(c.JWTService))

	transactions.Post("", c.TransactionHandler.RecordTransaction)
	transactions.Get("/:item_id", c.TransactionHandler.GetItemTransactions)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
