package routes

import (
	cartController "github.com/monupal1122/grocery-backend/controllers/cart"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App, h *cartController.Controller) {
	app.Get("/api/cart", middlewares.AuthMiddleware, h.GetCart)
	app.Post("/api/cart", middlewares.AuthMiddleware, h.AddToCart)
	app.Put("/api/cart/:productId", middlewares.AuthMiddleware, h.UpdateCartItem)
	app.Delete("/api/cart", middlewares.AuthMiddleware, h.ClearCart)
	app.Delete("/api/cart/:productId", middlewares.AuthMiddleware, h.RemoveFromCart)

	app.Get("/api/cart/all", middlewares.AuthMiddleware, middlewares.AdminOnly, h.GetAllCarts)
}
