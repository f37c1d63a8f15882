package routes

import (
	addressController "github.com/monupal1122/grocery-backend/controllers/addresses"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AddressRoutes(app *fiber.App, h *addressController.Controller) {
	app.Post("/api/address", middlewares.AuthMiddleware, h.AddAddress)
	app.Get("/api/address", middlewares.AuthMiddleware, h.GetAddresses)
	app.Put("/api/address/:id", middlewares.AuthMiddleware, h.UpdateAddress)
	app.Delete("/api/address/:id", middlewares.AuthMiddleware, h.DeleteAddress)
	app.Put("/api/address/:id/default", middlewares.AuthMiddleware, h.SetDefaultAddress)

	app.Get("/api/address/all", middlewares.AuthMiddleware, middlewares.AdminOnly, h.GetAllAddresses)
}
