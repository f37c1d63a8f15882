package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monupal1122/grocery-backend/payment"
	"github.com/monupal1122/grocery-backend/responses"
)

type Controller struct {
	Gateway *payment.Gateway
}

func New(gw *payment.Gateway) *Controller {
	return &Controller{Gateway: gw}
}

// CreateOrder registers a payment intent with the gateway and hands the
// client what it needs to open the checkout.
func (h *Controller) CreateOrder(c *fiber.Ctx) error {
	var reqBody struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.Amount <= 0 {
		return responses.JSON(c, fiber.StatusBadRequest, "Amount must be greater than zero", nil)
	}

	order, err := h.Gateway.CreateOrder(reqBody.Amount)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Payment order created", &fiber.Map{
		"order": order,
		"keyId": h.Gateway.KeyID(),
	})
}

// VerifyPayment validates the capture signature sent back by the client.
func (h *Controller) VerifyPayment(c *fiber.Ctx) error {
	var reqBody struct {
		RazorpayOrderId   string `json:"razorpay_order_id"`
		RazorpayPaymentId string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.RazorpayOrderId == "" || reqBody.RazorpayPaymentId == "" || reqBody.RazorpaySignature == "" {
		return responses.JSON(c, fiber.StatusBadRequest, "Missing payment verification fields", nil)
	}

	if !h.Gateway.Verify(reqBody.RazorpayOrderId, reqBody.RazorpayPaymentId, reqBody.RazorpaySignature) {
		return responses.JSON(c, fiber.StatusBadRequest, "Payment verification failed", &fiber.Map{"status": "failure"})
	}
	return responses.OK(c, "Payment verified successfully", &fiber.Map{"status": "success"})
}
