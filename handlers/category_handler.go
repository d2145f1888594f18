package handlers

import (
	"cubikor_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

// GetCategories - GET /api/categories
//
// The fixed category set comes from the seeder; ?slug narrows the list to
// one entry so clients can resolve a slug without fetching everything.
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	query := h.DB.Order("name asc")
	if slug := c.Query("slug"); slug != "" {
		query = query.Where("slug = ?", slug)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch categories"})
	}
	return c.JSON(fiber.Map{"data": categories})
}
