package routes

import (
	bannerController "github.com/monupal1122/grocery-backend/controllers/banners"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func BannerRoutes(app *fiber.App, h *bannerController.Controller) {
	app.Get("/api/banner", h.GetBanners)

	app.Post("/api/banner", middlewares.AuthMiddleware, middlewares.AdminOnly, h.CreateBanner)
	app.Put("/api/banner/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.UpdateBanner)
	app.Delete("/api/banner/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.DeleteBanner)
}
