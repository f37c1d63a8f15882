package routes

import (
	catalogController "github.com/monupal1122/grocery-backend/controllers/catalog"
	"github.com/monupal1122/grocery-backend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CatalogRoutes(app *fiber.App, h *catalogController.Controller) {
	app.Get("/api/category", h.GetCategories)
	app.Get("/api/subcategory", h.GetSubcategories)
	app.Get("/api/product", h.GetProducts)
	app.Get("/api/product/:id", h.GetProductById)

	app.Post("/api/category", middlewares.AuthMiddleware, middlewares.AdminOnly, h.CreateCategory)
	app.Put("/api/category/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.UpdateCategory)
	app.Delete("/api/category/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.DeleteCategory)

	app.Post("/api/subcategory", middlewares.AuthMiddleware, middlewares.AdminOnly, h.CreateSubcategory)
	app.Put("/api/subcategory/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.UpdateSubcategory)
	app.Delete("/api/subcategory/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.DeleteSubcategory)

	app.Post("/api/product", middlewares.AuthMiddleware, middlewares.AdminOnly, h.CreateProduct)
	app.Put("/api/product/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.UpdateProduct)
	app.Delete("/api/product/:id", middlewares.AuthMiddleware, middlewares.AdminOnly, h.DeleteProduct)
}
