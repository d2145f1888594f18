package handlers

import (
	"errors"
	"strconv"

	"cubikor_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CartHandler struct {
	DB *gorm.DB
}

func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{DB: db}
}

// AddCartItemRequest carries the product snapshot taken by the caller at
// add time; the cart never re-reads the catalog.
type AddCartItemRequest struct {
	ProductID    uint    `json:"product_id"`
	CategoryID   uint    `json:"category_id"`
	ShopID       uint    `json:"shop_id"`
	Quantity     int     `json:"quantity"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`
}

// AddItem - POST /api/cart
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed",
			models.ErrorDetail{Code: "missing_field", Field: "product_id", Message: "Product id is required"}))
	}
	if req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed",
			models.ErrorDetail{Code: "invalid_quantity", Field: "quantity", Message: "Quantity must be greater than zero"}))
	}

	userID := c.Locals("user_id").(uint)

	item := models.CartItem{
		UserID:       userID,
		ProductID:    req.ProductID,
		CategoryID:   req.CategoryID,
		ShopID:       req.ShopID,
		Quantity:     req.Quantity,
		ProductName:  req.ProductName,
		ProductImage: req.ProductImage,
		ProductPrice: req.ProductPrice,
	}

	// Check and insert run inside one transaction; the composite unique
	// index on (user_id, product_id) catches the concurrent-add race the
	// check alone cannot.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error
		if err == nil {
			return ErrDuplicateCartLine
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCartLine
			}
			return err
		}
		return nil
	})

	if errors.Is(err, ErrDuplicateCartLine) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Product is already in the cart"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not add item to cart"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Item added to cart", "data": item})
}

// GetItems - GET /api/cart
func (h *CartHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var items []models.CartItem
	if err := h.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch cart"})
	}

	return c.JSON(fiber.Map{"data": items})
}

// RemoveItem - DELETE /api/cart/:id
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	userID := c.Locals("user_id").(uint)

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not remove item"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart item not found"})
	}

	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}
