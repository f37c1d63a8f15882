package routes

import (
	profileController "github.com/monupal1122/grocery-backend/controllers/profile"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App, h *profileController.Controller) {
	app.Post("/api/profile", middlewares.AuthMiddleware, h.UpsertProfile)
	app.Get("/api/profile", middlewares.AuthMiddleware, h.GetMyProfile)
	app.Delete("/api/profile", middlewares.AuthMiddleware, h.DeleteProfile)

	app.Get("/api/profile/all", middlewares.AuthMiddleware, middlewares.AdminOnly, h.GetAllProfiles)
}
