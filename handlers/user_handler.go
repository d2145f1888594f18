package handlers

import (
	"strconv"

	"cubikor_backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetUser - GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"data": user})
}

// UpdateUserRequest allows partial profile updates; nil fields are untouched.
type UpdateUserRequest struct {
	Username        *string  `json:"username"`
	Name            *string  `json:"name"`
	MobileNumber    *string  `json:"mobile_number"`
	Country         *string  `json:"country"`
	ShippingAddress *Address `json:"shipping_address"`
}

// UpdateUser - PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.MobileNumber != nil {
		user.MobileNumber = *req.MobileNumber
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.ShippingAddress != nil {
		user.Street = req.ShippingAddress.Street
		user.City = req.ShippingAddress.City
		user.State = req.ShippingAddress.State
		user.Zipcode = req.ShippingAddress.Zipcode
		user.ShippingCountry = req.ShippingAddress.Country
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update user"})
	}

	return c.JSON(fiber.Map{"message": "User updated", "data": user})
}

// DeleteUser - DELETE /api/users/:id
//
// Deletion is unconditional; dependent orders are left in place.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.DB.Delete(&models.User{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
