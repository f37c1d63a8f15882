package orderController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/responses"
	"github.com/monupal1122/grocery-backend/services/orders"
)

type Controller struct {
	Orders *orders.Service
}

func New(svc *orders.Service) *Controller {
	return &Controller{Orders: svc}
}

func currentUserID(c *fiber.Ctx) (primitive.ObjectID, bool) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Controller) CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	var in orders.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	order, err := h.Orders.Create(ctx, userID, in)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "Order placed successfully", &fiber.Map{"order": order})
}

func (h *Controller) GetMyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	list, err := h.Orders.ListByUserDetailed(ctx, userID)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Orders fetched successfully", &fiber.Map{"orders": list})
}

func (h *Controller) GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid order ID format", nil)
	}

	order, err := h.Orders.Get(ctx, orderID)
	if err != nil {
		return responses.Error(c, err)
	}

	// Owners see their own orders; everyone else needs the admin role.
	if role, _ := c.Locals("role").(string); role != "admin" {
		userID, ok := currentUserID(c)
		if !ok || order.UserId != userID {
			return responses.Error(c, apperr.NotFound("order not found"))
		}
	}
	return responses.OK(c, "Order fetched successfully", &fiber.Map{"order": order})
}

func (h *Controller) UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid order ID format", nil)
	}

	var up orders.StatusUpdate
	if err := c.BodyParser(&up); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	order, err := h.Orders.UpdateStatus(ctx, orderID, up)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Order status updated", &fiber.Map{"order": order})
}

func (h *Controller) DeleteOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid order ID format", nil)
	}

	if err := h.Orders.Delete(ctx, orderID); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Order deleted successfully", nil)
}

func (h *Controller) GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Orders.All(ctx)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Orders fetched successfully", &fiber.Map{"orders": list})
}

func (h *Controller) GetOrdersByUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	summaries, err := h.Orders.GroupedByUser(ctx)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Orders grouped by user", &fiber.Map{"users": summaries})
}

func (h *Controller) UpdateOrdersByUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid user ID format", nil)
	}

	var reqBody struct {
		FromStatus string `json:"fromStatus"`
		ToStatus   string `json:"toStatus"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	count, err := h.Orders.BulkUpdateByUser(ctx, userID, reqBody.FromStatus, reqBody.ToStatus)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Orders updated for user", &fiber.Map{"modifiedCount": count})
}
