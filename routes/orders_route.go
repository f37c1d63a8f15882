package routes

import (
	orderController "github.com/monupal1122/grocery-backend/controllers/orders"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App, h *orderController.Controller) {
	app.Post("/api/order", middlewares.AuthMiddleware, h.CreateOrder)
	app.Get("/api/order/my", middlewares.AuthMiddleware, h.GetMyOrders)

	app.Get("/api/order/all", middlewares.AuthMiddleware, middlewares.AdminOnly, h.GetAllOrders)
	app.Get("/api/order/by-user", middlewares.AuthMiddleware, middlewares.AdminOnly, h.GetOrdersByUser)
	app.Put("/api/order/user/:userId/status", middlewares.AuthMiddleware, middlewares.AdminOnly, h.UpdateOrdersByUser)
	app.Put("/api/order/:id/status", middlewares.AuthMiddleware, middlewares.AdminOnly, h.UpdateOrderStatus)
	app.Delete("/api/order/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.DeleteOrder)

	app.Get("/api/order/:id", middlewares.AuthMiddleware, h.GetOrderById)
}
