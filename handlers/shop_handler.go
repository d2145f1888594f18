package handlers

import (
	"strconv"

	"cubikor_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShopHandler struct {
	DB *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{DB: db}
}

// GetShop - GET /api/shops/:id
func (h *ShopHandler) GetShop(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var shop models.Shop
	if err := h.DB.First(&shop, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shop not found"})
	}

	return c.JSON(fiber.Map{"data": shop})
}

type UpdateShopRequest struct {
	ShopName     *string `json:"shop_name"`
	OwnerName    *string `json:"owner_name"`
	MobileNumber *string `json:"mobile_number"`
	Address      *string `json:"address"`
	Country      *string `json:"country"`
}

// UpdateShop - PUT /api/shops/:id
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateShopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var shop models.Shop
	if err := h.DB.First(&shop, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shop not found"})
	}

	if req.ShopName != nil {
		shop.ShopName = *req.ShopName
	}
	if req.OwnerName != nil {
		shop.OwnerName = *req.OwnerName
	}
	if req.MobileNumber != nil {
		shop.MobileNumber = *req.MobileNumber
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Country != nil {
		shop.Country = *req.Country
	}

	if err := h.DB.Save(&shop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update shop"})
	}

	return c.JSON(fiber.Map{"message": "Shop updated", "data": shop})
}

// DeleteShop - DELETE /api/shops/:id
func (h *ShopHandler) DeleteShop(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.DB.Delete(&models.Shop{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete shop"})
	}

	return c.JSON(fiber.Map{"message": "Shop deleted"})
}
