package routes

import (
	paymentController "github.com/monupal1122/grocery-backend/controllers/payment"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App, h *paymentController.Controller) {
	app.Post("/api/payment/order", middlewares.AuthMiddleware, h.CreateOrder)
	app.Post("/api/payment/verify", middlewares.AuthMiddleware, h.VerifyPayment)
}
