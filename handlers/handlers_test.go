package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cubikor_backend/config"
	"cubikor_backend/handlers"
	"cubikor_backend/internal/notify"
	"cubikor_backend/models"
	"cubikor_backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	App *fiber.App
	DB  *gorm.DB
	Cfg *config.Config

	Orders *handlers.OrderHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.CustomerOrder{},
		&models.SellerOrder{},
	))

	cfg := &config.Config{
		JWTSecret:    []byte("test-secret"),
		UserTokenTTL: time.Hour,
		ShopTokenTTL: time.Hour,
	}

	app := fiber.New()
	auth := utils.AuthMiddleware(cfg.JWTSecret)

	hub := notify.NewHub()
	authHandler := handlers.NewAuthHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	orderHandler := handlers.NewOrderHandler(db, hub)

	api := app.Group("/api")
	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/shops/register", authHandler.RegisterShop)
	api.Post("/shops/login", authHandler.LoginShop)
	api.Post("/cart", auth, cartHandler.AddItem)
	api.Get("/cart", auth, cartHandler.GetItems)
	api.Delete("/cart/:id", auth, cartHandler.RemoveItem)
	api.Post("/orders", auth, orderHandler.PlaceOrder)
	api.Patch("/orders/:id/status", auth, orderHandler.UpdateStatus)
	api.Get("/orders/my", auth, orderHandler.GetMyOrders)
	api.Get("/orders/shop/:shopId", auth, orderHandler.GetShopOrders)

	return &testEnv{App: app, DB: db, Cfg: cfg, Orders: orderHandler}
}

// createUser inserts a buyer directly and returns a valid token for it.
func (e *testEnv) createUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Username:     "buyer",
		Email:        email,
		Password:     hash,
		Name:         "Test Buyer",
		MobileNumber: "5550001111",
		Role:         "user",
		Street:       "12 Main St",
		City:         "Kolkata",
		State:        "WB",
		Zipcode:      "700001",
	}
	require.NoError(t, e.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, e.Cfg.JWTSecret, e.Cfg.UserTokenTTL)
	require.NoError(t, err)

	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}, headers ...map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func placeOrderBody(productID, shopID uint, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"product_id":   productID,
		"shop_id":      shopID,
		"quantity":     quantity,
		"buyer_name":   "Test Buyer",
		"buyer_mobile": "5550001111",
		"shipping_address": map[string]string{
			"street":  "12 Main St",
			"city":    "Kolkata",
			"state":   "WB",
			"zipcode": "700001",
			"country": "IN",
		},
		"product_name":  "Cube Timer",
		"product_image": "https://cdn.example.com/timer.png",
		"product_price": 19.99,
	}
}
