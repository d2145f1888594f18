package handlers

import (
	"errors"
	"regexp"

	"cubikor_backend/config"
	"cubikor_backend/models"
	"cubikor_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// RegisterRequest defines the payload for buyer registration
type RegisterRequest struct {
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Name             string  `json:"name"`
	MobileNumber     string  `json:"mobile_number"`
	Country          string  `json:"country"`
	SecurityQuestion string  `json:"security_question"`
	SecurityAnswer   string  `json:"security_answer"`
	ShippingAddress  Address `json:"shipping_address"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShopRegisterRequest defines the payload for shop registration
type ShopRegisterRequest struct {
	ShopName     string `json:"shop_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	OwnerName    string `json:"owner_name"`
	MobileNumber string `json:"mobile_number"`
	Address      string `json:"address"`
	Country      string `json:"country"`
}

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateCredentials(email, password string) *models.ErrorDetail {
	if len(email) < 3 || !emailRx.MatchString(email) {
		return &models.ErrorDetail{Code: "invalid_email", Field: "email", Message: "A valid email is required"}
	}
	if len(password) < 5 {
		return &models.ErrorDetail{Code: "invalid_password", Field: "password", Message: "Password must be at least 5 characters"}
	}
	return nil
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if len(req.Username) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed",
			models.ErrorDetail{Code: "invalid_username", Field: "username", Message: "Username must be at least 3 characters"}))
	}
	if detail := validateCredentials(req.Email, req.Password); detail != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed", detail))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	user := models.User{
		Username:         req.Username,
		Email:            req.Email,
		Password:         hashedPassword,
		Name:             req.Name,
		MobileNumber:     req.MobileNumber,
		Country:          req.Country,
		Role:             "user",
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
		Street:           req.ShippingAddress.Street,
		City:             req.ShippingAddress.City,
		State:            req.ShippingAddress.State,
		Zipcode:          req.ShippingAddress.Zipcode,
		ShippingCountry:  req.ShippingAddress.Country,
	}

	// Existence check and insert inside one transaction; the unique index
	// on email backstops concurrent registrations.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			return gorm.ErrDuplicatedKey
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User already exists"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully", "id": user.ID})
}

// Login - POST /api/auth/login
//
// Unknown email and wrong password both answer with the same generic 401
// so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	t, err := utils.GenerateToken(user.ID, user.Email, user.Role, h.Cfg.JWTSecret, h.Cfg.UserTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": t,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// RegisterShop - POST /api/shops/register
func (h *AuthHandler) RegisterShop(c *fiber.Ctx) error {
	var req ShopRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.ShopName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed",
			models.ErrorDetail{Code: "missing_field", Field: "shop_name", Message: "Shop name is required"}))
	}
	if detail := validateCredentials(req.Email, req.Password); detail != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed", detail))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	shop := models.Shop{
		ShopName:     req.ShopName,
		Email:        req.Email,
		Password:     hashedPassword,
		OwnerName:    req.OwnerName,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
		Country:      req.Country,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Shop
		if err := tx.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			return gorm.ErrDuplicatedKey
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&shop).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Shop already exists"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create shop"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Shop registered successfully", "id": shop.ID})
}

// LoginShop - POST /api/shops/login
func (h *AuthHandler) LoginShop(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var shop models.Shop
	if err := h.DB.Where("email = ?", req.Email).First(&shop).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if !utils.CheckPasswordHash(req.Password, shop.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	// Shop class tokens live longer than buyer tokens.
	t, err := utils.GenerateToken(shop.ID, shop.Email, "shop", h.Cfg.JWTSecret, h.Cfg.ShopTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": t,
		"shop": fiber.Map{
			"id":        shop.ID,
			"email":     shop.Email,
			"shop_name": shop.ShopName,
		},
	})
}
