package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/responses"
	"github.com/monupal1122/grocery-backend/store"
)

// Controller serves categories, subcategories and products. Catalog CRUD is
// thin enough to sit directly on the stores.
type Controller struct {
	Categories    store.Categories
	Subcategories store.Subcategories
	Products      store.Products
}

func New(st *store.Store) *Controller {
	return &Controller{
		Categories:    st.Categories,
		Subcategories: st.Subcategories,
		Products:      st.Products,
	}
}

// --- categories ---

func (h *Controller) CreateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name  string `json:"name"`
		Image string `json:"image"`
		Desc  string `json:"desc"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.Name == "" || reqBody.Image == "" {
		return responses.JSON(c, fiber.StatusBadRequest, "Name and image are required", nil)
	}

	now := time.Now()
	category := models.Category{
		Id:        primitive.NewObjectID(),
		Name:      reqBody.Name,
		Image:     reqBody.Image,
		Desc:      reqBody.Desc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Categories.Insert(ctx, category); err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "Category created successfully", &fiber.Map{"category": category})
}

func (h *Controller) GetCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.Categories.All(ctx)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Categories fetched successfully", &fiber.Map{"categories": categories})
}

func (h *Controller) UpdateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid category ID format", nil)
	}

	var reqBody struct {
		Name  string `json:"name"`
		Image string `json:"image"`
		Desc  string `json:"desc"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		return responses.Error(c, err)
	}
	if reqBody.Name != "" {
		category.Name = reqBody.Name
	}
	if reqBody.Image != "" {
		category.Image = reqBody.Image
	}
	if reqBody.Desc != "" {
		category.Desc = reqBody.Desc
	}
	category.UpdatedAt = time.Now()

	if err := h.Categories.Update(ctx, category); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Category updated successfully", &fiber.Map{"category": category})
}

func (h *Controller) DeleteCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid category ID format", nil)
	}
	if err := h.Categories.Delete(ctx, id); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Category deleted successfully", nil)
}

// --- subcategories ---

func (h *Controller) CreateSubcategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name       string `json:"name"`
		Image      string `json:"image"`
		Desc       string `json:"desc"`
		CategoryID string `json:"categoryId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.Name == "" || reqBody.CategoryID == "" {
		return responses.JSON(c, fiber.StatusBadRequest, "Name and categoryId are required", nil)
	}

	categoryID, err := primitive.ObjectIDFromHex(reqBody.CategoryID)
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid category ID format", nil)
	}
	if _, err := h.Categories.FindByID(ctx, categoryID); err != nil {
		return responses.Error(c, err)
	}

	now := time.Now()
	subcategory := models.Subcategory{
		Id:        primitive.NewObjectID(),
		Name:      reqBody.Name,
		Image:     reqBody.Image,
		Desc:      reqBody.Desc,
		Category:  categoryID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Subcategories.Insert(ctx, subcategory); err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "Subcategory created successfully", &fiber.Map{"subcategory": subcategory})
}

func (h *Controller) GetSubcategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var (
		subcategories []models.Subcategory
		err           error
	)
	if categoryParam := c.Query("categoryId"); categoryParam != "" {
		categoryID, idErr := primitive.ObjectIDFromHex(categoryParam)
		if idErr != nil {
			return responses.JSON(c, fiber.StatusBadRequest, "Invalid category ID format", nil)
		}
		subcategories, err = h.Subcategories.ListByCategory(ctx, categoryID)
	} else {
		subcategories, err = h.Subcategories.All(ctx)
	}
	if err != nil {
		return responses.Error(c, err)
	}

	// Resolve category names at read time.
	type subcategoryView struct {
		models.Subcategory
		CategoryName string `json:"categoryName,omitempty"`
	}
	views := make([]subcategoryView, 0, len(subcategories))
	for _, sc := range subcategories {
		v := subcategoryView{Subcategory: sc}
		if cat, err := h.Categories.FindByID(ctx, sc.Category); err == nil {
			v.CategoryName = cat.Name
		}
		views = append(views, v)
	}
	return responses.OK(c, "Subcategories fetched successfully", &fiber.Map{"subcategories": views})
}

func (h *Controller) UpdateSubcategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid subcategory ID format", nil)
	}

	var reqBody struct {
		Name  string `json:"name"`
		Image string `json:"image"`
		Desc  string `json:"desc"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	subcategory, err := h.Subcategories.FindByID(ctx, id)
	if err != nil {
		return responses.Error(c, err)
	}
	if reqBody.Name != "" {
		subcategory.Name = reqBody.Name
	}
	if reqBody.Image != "" {
		subcategory.Image = reqBody.Image
	}
	if reqBody.Desc != "" {
		subcategory.Desc = reqBody.Desc
	}
	subcategory.UpdatedAt = time.Now()

	if err := h.Subcategories.Update(ctx, subcategory); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Subcategory updated successfully", &fiber.Map{"subcategory": subcategory})
}

func (h *Controller) DeleteSubcategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid subcategory ID format", nil)
	}
	if err := h.Subcategories.Delete(ctx, id); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Subcategory deleted successfully", nil)
}

// --- products ---

type productBody struct {
	Name        string   `json:"name"`
	Images      []string `json:"images"`
	Price       float64  `json:"price"`
	Desc        string   `json:"desc"`
	Stock       int      `json:"stock"`
	Discount    float64  `json:"discount"`
	CategoryID  string   `json:"categoryId"`
	Subcategory string   `json:"subcategoryId"`
	Status      *bool    `json:"status"`
}

func (h *Controller) CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody productBody
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.Name == "" || len(reqBody.Images) == 0 || reqBody.Price <= 0 {
		return responses.JSON(c, fiber.StatusBadRequest, "Name, images and a positive price are required", nil)
	}

	categoryID, err := primitive.ObjectIDFromHex(reqBody.CategoryID)
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid category ID format", nil)
	}
	subcategoryID, err := primitive.ObjectIDFromHex(reqBody.Subcategory)
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid subcategory ID format", nil)
	}
	if _, err := h.Categories.FindByID(ctx, categoryID); err != nil {
		return responses.Error(c, err)
	}
	if _, err := h.Subcategories.FindByID(ctx, subcategoryID); err != nil {
		return responses.Error(c, err)
	}

	status := true
	if reqBody.Status != nil {
		status = *reqBody.Status
	}
	now := time.Now()
	product := models.Product{
		Id:          primitive.NewObjectID(),
		Name:        reqBody.Name,
		Images:      reqBody.Images,
		Price:       reqBody.Price,
		Desc:        reqBody.Desc,
		Stock:       reqBody.Stock,
		Discount:    reqBody.Discount,
		Category:    categoryID,
		Subcategory: subcategoryID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Products.Insert(ctx, product); err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "Product created successfully", &fiber.Map{"product": product})
}

func (h *Controller) GetProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	products, err := h.Products.All(ctx)
	if err != nil {
		return responses.Error(c, err)
	}

	type productView struct {
		models.Product
		CategoryName    string `json:"categoryName,omitempty"`
		SubcategoryName string `json:"subcategoryName,omitempty"`
	}
	views := make([]productView, 0, len(products))
	for _, p := range products {
		v := productView{Product: p}
		if cat, err := h.Categories.FindByID(ctx, p.Category); err == nil {
			v.CategoryName = cat.Name
		}
		if sub, err := h.Subcategories.FindByID(ctx, p.Subcategory); err == nil {
			v.SubcategoryName = sub.Name
		}
		views = append(views, v)
	}
	return responses.OK(c, "Products fetched successfully", &fiber.Map{"products": views})
}

func (h *Controller) GetProductById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid product ID format", nil)
	}
	product, err := h.Products.FindByID(ctx, id)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Product fetched successfully", &fiber.Map{"product": product})
}

func (h *Controller) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid product ID format", nil)
	}

	var reqBody productBody
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	product, err := h.Products.FindByID(ctx, id)
	if err != nil {
		return responses.Error(c, err)
	}
	if reqBody.Name != "" {
		product.Name = reqBody.Name
	}
	if len(reqBody.Images) > 0 {
		product.Images = reqBody.Images
	}
	if reqBody.Price > 0 {
		product.Price = reqBody.Price
	}
	if reqBody.Desc != "" {
		product.Desc = reqBody.Desc
	}
	if reqBody.Stock != 0 {
		product.Stock = reqBody.Stock
	}
	if reqBody.Discount != 0 {
		product.Discount = reqBody.Discount
	}
	if reqBody.Status != nil {
		product.Status = *reqBody.Status
	}
	product.UpdatedAt = time.Now()

	if err := h.Products.Update(ctx, product); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Product updated successfully", &fiber.Map{"product": product})
}

func (h *Controller) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid product ID format", nil)
	}
	if err := h.Products.Delete(ctx, id); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Product deleted successfully", nil)
}
