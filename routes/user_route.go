package routes

import (
	authController "github.com/monupal1122/grocery-backend/controllers/auth"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App, h *authController.Controller) {
	app.Post("/api/auth/signup", h.Signup)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/request-otp", h.RequestOTP)
	app.Post("/api/auth/verify-otp", h.VerifyOTP)
	app.Post("/api/auth/logout", middlewares.AuthMiddleware, h.Logout)
	app.Post("/api/auth/admin/login", h.AdminLogin)
}
