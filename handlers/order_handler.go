package handlers

import (
	"errors"

	"cubikor_backend/internal/notify"
	"cubikor_backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderHandler owns the dual-ledger order flow: placement writes one
// CustomerOrder and one SellerOrder under a single generated order id,
// status changes move both rows together, and neither is ever observable
// without the other.
type OrderHandler struct {
	DB  *gorm.DB
	Hub *notify.Hub

	// NewOrderID generates order ids; a field so tests can inject faults.
	NewOrderID func() string
}

func NewOrderHandler(db *gorm.DB, hub *notify.Hub) *OrderHandler {
	return &OrderHandler{
		DB:         db,
		Hub:        hub,
		NewOrderID: func() string { return uuid.NewString() },
	}
}

// PlaceOrderRequest carries the full shipment and product snapshot. The
// coordinator trusts it as supplied: the denormalized copy is what keeps
// historical orders correct after catalog or profile edits.
type PlaceOrderRequest struct {
	ProductID uint `json:"product_id"`
	ShopID    uint `json:"shop_id"`
	Quantity  int  `json:"quantity"`

	BuyerName       string `json:"buyer_name"`
	BuyerMobile     string `json:"buyer_mobile"`
	ShippingAddress struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zipcode string `json:"zipcode"`
		Country string `json:"country"`
	} `json:"shipping_address"`

	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`
}

func (r *PlaceOrderRequest) validate() *models.ErrorDetail {
	switch {
	case r.ProductID == 0:
		return &models.ErrorDetail{Code: "missing_field", Field: "product_id", Message: "Product id is required"}
	case r.ShopID == 0:
		return &models.ErrorDetail{Code: "missing_field", Field: "shop_id", Message: "Shop id is required"}
	case r.Quantity <= 0:
		return &models.ErrorDetail{Code: "invalid_quantity", Field: "quantity", Message: "Quantity must be greater than zero"}
	case r.BuyerName == "":
		return &models.ErrorDetail{Code: "missing_field", Field: "buyer_name", Message: "Buyer name is required"}
	case r.BuyerMobile == "":
		return &models.ErrorDetail{Code: "missing_field", Field: "buyer_mobile", Message: "Buyer mobile is required"}
	case r.ShippingAddress.Street == "":
		return &models.ErrorDetail{Code: "missing_field", Field: "shipping_address.street", Message: "Street is required"}
	case r.ShippingAddress.City == "":
		return &models.ErrorDetail{Code: "missing_field", Field: "shipping_address.city", Message: "City is required"}
	case r.ShippingAddress.Zipcode == "":
		return &models.ErrorDetail{Code: "missing_field", Field: "shipping_address.zipcode", Message: "Zipcode is required"}
	case r.ProductName == "":
		return &models.ErrorDetail{Code: "missing_field", Field: "product_name", Message: "Product name is required"}
	case r.ProductPrice <= 0:
		return &models.ErrorDetail{Code: "missing_field", Field: "product_price", Message: "Product price is required"}
	}
	return nil
}

// PlaceOrder - POST /api/orders
//
// Creates the customer ledger row, the seller ledger row and consumes the
// matching cart line as one unit of work. Any failure rolls the whole unit
// back; the caller sees a formed order pair or nothing.
//
// Without an Idempotency-Key header the call is deliberately not
// idempotent: identical requests produce independent order pairs. With a
// key, a replay returns the originally created order id.
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if detail := req.validate(); detail != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed", detail))
	}

	userID := c.Locals("user_id").(uint)

	var idemKey *string
	if k := c.Get("Idempotency-Key"); k != "" {
		idemKey = &k
	}

	orderID := h.NewOrderID()

	customerOrder := models.CustomerOrder{
		OrderID:        orderID,
		UserID:         userID,
		ProductID:      req.ProductID,
		ShopID:         req.ShopID,
		Quantity:       req.Quantity,
		ProductName:    req.ProductName,
		ProductImage:   req.ProductImage,
		ProductPrice:   req.ProductPrice,
		Status:         models.OrderStatusPlaced,
		IdempotencyKey: idemKey,
	}

	sellerOrder := models.SellerOrder{
		OrderID:         orderID,
		ShopID:          req.ShopID,
		UserID:          userID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		BuyerName:       req.BuyerName,
		BuyerMobile:     req.BuyerMobile,
		Street:          req.ShippingAddress.Street,
		City:            req.ShippingAddress.City,
		State:           req.ShippingAddress.State,
		Zipcode:         req.ShippingAddress.Zipcode,
		ShippingCountry: req.ShippingAddress.Country,
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		ProductPrice:    req.ProductPrice,
		Status:          models.OrderStatusPlaced,
	}

	replayed := false
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if idemKey != nil {
			// Scoped to the buyer: one caller's key must never surface
			// another caller's order.
			var prior models.CustomerOrder
			err := tx.Where("user_id = ? AND idempotency_key = ?", userID, *idemKey).First(&prior).Error
			if err == nil {
				orderID = prior.OrderID
				replayed = true
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if err := tx.Create(&customerOrder).Error; err != nil {
			return err
		}
		if err := tx.Create(&sellerOrder).Error; err != nil {
			return err
		}
		// Absence of a cart line is fine: a reorder does not go through
		// the cart.
		if err := tx.Where("user_id = ? AND product_id = ?", userID, req.ProductID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		// Two first-time requests carrying the same key can both pass the
		// replay check; the loser hits the unique index and the winner's
		// row is the order to report.
		if idemKey != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			var prior models.CustomerOrder
			if rerr := h.DB.Where("user_id = ? AND idempotency_key = ?", userID, *idemKey).
				First(&prior).Error; rerr == nil {
				return c.JSON(fiber.Map{"message": "Order already placed", "order_id": prior.OrderID})
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Order placement failed"})
	}

	if replayed {
		return c.JSON(fiber.Map{"message": "Order already placed", "order_id": orderID})
	}

	h.Hub.Publish(notify.OrderEvent{
		OrderID:   orderID,
		Status:    string(models.OrderStatusPlaced),
		Event:     "order_placed",
		ProductID: req.ProductID,
	}, notify.UserKey(userID), notify.ShopKey(req.ShopID))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order placed", "order_id": orderID})
}

// UpdateStatusRequest names the target state of the transition.
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus - PATCH /api/orders/:id/status
//
// Applies one transition of the status state machine to both ledgers in
// one unit of work; a partial update is never observable.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Validation failed",
			models.ErrorDetail{Code: "invalid_status", Field: "status", Message: "Unknown order status"}))
	}

	var buyerID, shopID uint
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var customerOrder models.CustomerOrder
		if err := tx.Where("order_id = ?", orderID).First(&customerOrder).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		var sellerOrder models.SellerOrder
		if err := tx.Where("order_id = ?", orderID).First(&sellerOrder).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !customerOrder.Status.CanTransition(req.Status) {
			return ErrInvalidTransition
		}

		// Both updates are guarded on the status just read. A concurrent
		// transaction that moved the order in between leaves RowsAffected
		// at zero, so a stale read can never traverse an edge outside the
		// state machine.
		res := tx.Model(&models.CustomerOrder{}).
			Where("order_id = ? AND status = ?", orderID, customerOrder.Status).
			Update("status", req.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}

		res = tx.Model(&models.SellerOrder{}).
			Where("order_id = ? AND status = ?", orderID, sellerOrder.Status).
			Update("status", req.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}

		buyerID = customerOrder.UserID
		shopID = sellerOrder.ShopID
		return nil
	})

	switch {
	case errors.Is(err, ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	case errors.Is(err, ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid status transition"})
	case errors.Is(err, ErrConcurrentUpdate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Order was modified concurrently, retry"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update order status"})
	}

	h.Hub.Publish(notify.OrderEvent{
		OrderID: orderID,
		Status:  string(req.Status),
		Event:   "status_changed",
	}, notify.UserKey(buyerID), notify.ShopKey(shopID))

	return c.JSON(fiber.Map{"message": "Order status updated", "status": req.Status})
}

// GetMyOrders - GET /api/orders/my
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var orders []models.CustomerOrder
	if err := h.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	return c.JSON(fiber.Map{"data": orders})
}

// GetShopOrders - GET /api/orders/shop/:shopId
//
// Any authenticated caller may query any shop's orders; the check that the
// caller owns the shop id is an inherited gap, left as-is on purpose.
func (h *OrderHandler) GetShopOrders(c *fiber.Ctx) error {
	shopID := c.Params("shopId")

	var orders []models.SellerOrder
	if err := h.DB.Where("shop_id = ?", shopID).Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	return c.JSON(fiber.Map{"data": orders})
}
