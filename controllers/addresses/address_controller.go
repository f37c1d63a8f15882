package addressController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/responses"
	"github.com/monupal1122/grocery-backend/services/addresses"
)

type Controller struct {
	Addresses *addresses.Service
}

func New(svc *addresses.Service) *Controller {
	return &Controller{Addresses: svc}
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

func (h *Controller) AddAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	var in addresses.Input
	if err := c.BodyParser(&in); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	address, err := h.Addresses.Add(ctx, userID, in)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "Address added successfully", &fiber.Map{"address": address})
}

func (h *Controller) GetAddresses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	list, err := h.Addresses.List(ctx, userID)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Addresses fetched successfully", &fiber.Map{"addresses": list})
}

func (h *Controller) UpdateAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	var in addresses.Input
	if err := c.BodyParser(&in); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	address, err := h.Addresses.Update(ctx, userID, c.Params("id"), in)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Address updated successfully", &fiber.Map{"address": address})
}

func (h *Controller) DeleteAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	if err := h.Addresses.Delete(ctx, userID, c.Params("id")); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Address deleted successfully", nil)
}

func (h *Controller) SetDefaultAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return responses.JSON(c, fiber.StatusUnauthorized, "User ID not found in token", nil)
	}

	address, err := h.Addresses.SetDefault(ctx, userID, c.Params("id"))
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Default address set", &fiber.Map{"address": address})
}

func (h *Controller) GetAllAddresses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Addresses.All(ctx)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Addresses fetched successfully", &fiber.Map{"addresses": list})
}
