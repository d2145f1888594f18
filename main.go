package main

import (
	"log"

	"cubikor_backend/config"
	"cubikor_backend/handlers"
	"cubikor_backend/internal/notify"
	"cubikor_backend/middleware"
	"cubikor_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.LoadConfig()

	db := config.ConnectDB(cfg)
	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Cubikor Backend",
		ServerHeader: "Cubikor Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	hub := notify.NewHub()

	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	shopHandler := handlers.NewShopHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	orderHandler := handlers.NewOrderHandler(db, hub)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	api := app.Group("/api")
	auth := utils.AuthMiddleware(cfg.JWTSecret)

	// Auth
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/shops/register", authHandler.RegisterShop)
	api.Post("/shops/login", authHandler.LoginShop)

	// Users
	api.Get("/users/:id", auth, userHandler.GetUser)
	api.Put("/users/:id", auth, userHandler.UpdateUser)
	api.Delete("/users/:id", auth, userHandler.DeleteUser)

	// Shops
	api.Get("/shops/:id", auth, shopHandler.GetShop)
	api.Put("/shops/:id", auth, shopHandler.UpdateShop)
	api.Delete("/shops/:id", auth, shopHandler.DeleteShop)

	// Catalog
	api.Get("/categories", categoryHandler.GetCategories)
	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", auth, productHandler.CreateProduct)
	api.Put("/products/:id", auth, productHandler.UpdateProduct)
	api.Delete("/products/:id", auth, productHandler.DeleteProduct)

	// Cart
	api.Post("/cart", auth, cartHandler.AddItem)
	api.Get("/cart", auth, cartHandler.GetItems)
	api.Delete("/cart/:id", auth, cartHandler.RemoveItem)

	// Orders
	api.Post("/orders", auth, orderHandler.PlaceOrder)
	api.Patch("/orders/:id/status", auth, orderHandler.UpdateStatus)
	api.Get("/orders/my", auth, orderHandler.GetMyOrders)
	api.Get("/orders/shop/:shopId", auth, orderHandler.GetShopOrders)

	// Order event stream
	app.Use("/ws", notify.Upgrade)
	app.Get("/ws/orders", auth, notify.ServeOrders(hub))

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
