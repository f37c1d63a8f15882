package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/responses"
	"github.com/monupal1122/grocery-backend/services/cart"
)

type Controller struct {
	Cart *cart.Service
}

func New(svc *cart.Service) *Controller {
	return &Controller{Cart: svc}
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

func (h *Controller) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	view, err := h.Cart.Get(ctx, userID)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Cart fetched successfully", &fiber.Map{"cart": view})
}

func (h *Controller) AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	var reqBody struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	view, err := h.Cart.AddItem(ctx, userID, reqBody.ProductID, reqBody.Quantity)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Item added to cart", &fiber.Map{"cart": view})
}

func (h *Controller) UpdateCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	var reqBody struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	view, err := h.Cart.UpdateItem(ctx, userID, c.Params("productId"), reqBody.Quantity)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Cart updated", &fiber.Map{"cart": view})
}

func (h *Controller) RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	view, err := h.Cart.RemoveItem(ctx, userID, c.Params("productId"))
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Item removed from cart", &fiber.Map{"cart": view})
}

func (h *Controller) ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	if err := h.Cart.Clear(ctx, userID); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Cart cleared", nil)
}

func (h *Controller) GetAllCarts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	carts, err := h.Cart.All(ctx)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Carts fetched successfully", &fiber.Map{"carts": carts})
}
