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

type Controller struct {
	Banners store.Banners
}

func New(st *store.Store) *Controller {
	return &Controller{Banners: st.Banners}
}

type bannerBody struct {
	Title       *string    `json:"title"`
	ImageUrl    *string    `json:"imageUrl"`
	Link        *string    `json:"link"`
	BannerType  *string    `json:"bannerType"`
	IsActive    *bool      `json:"isActive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Priority    *int       `json:"priority"`
	Description *string    `json:"description"`
}

func (h *Controller) CreateBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody bannerBody
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.Title == nil || *reqBody.Title == "" || reqBody.ImageUrl == nil || *reqBody.ImageUrl == "" {
		return responses.JSON(c, fiber.StatusBadRequest, "Title and imageUrl are required", nil)
	}

	bannerType := models.BannerHome
	if reqBody.BannerType != nil {
		if !models.ValidBannerType(*reqBody.BannerType) {
			return responses.JSON(c, fiber.StatusBadRequest, "Invalid banner type", nil)
		}
		bannerType = *reqBody.BannerType
	}

	isActive := true
	if reqBody.IsActive != nil {
		isActive = *reqBody.IsActive
	}

	now := time.Now()
	banner := models.Banner{
		Id:         primitive.NewObjectID(),
		Title:      *reqBody.Title,
		ImageUrl:   *reqBody.ImageUrl,
		BannerType: bannerType,
		IsActive:   isActive,
		StartDate:  reqBody.StartDate,
		EndDate:    reqBody.EndDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if reqBody.Link != nil {
		banner.Link = *reqBody.Link
	}
	if reqBody.Priority != nil {
		banner.Priority = *reqBody.Priority
	}
	if reqBody.Description != nil {
		banner.Description = *reqBody.Description
	}

	if err := h.Banners.Insert(ctx, banner); err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "Banner created successfully", &fiber.Map{"banner": banner})
}

// GetBanners lists active banners, optionally filtered by ?type=.
func (h *Controller) GetBanners(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	bannerType := c.Query("type")
	if bannerType != "" && !models.ValidBannerType(bannerType) {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid banner type", nil)
	}

	banners, err := h.Banners.ListActive(ctx, bannerType)
	if err != nil {
		return responses.Error(c, err)
	}

	// Date windows are enforced at read time so expired banners
	// disappear without a sweeper.
	now := time.Now()
	visible := make([]models.Banner, 0, len(banners))
	for _, b := range banners {
		if b.StartDate != nil && now.Before(*b.StartDate) {
			continue
		}
		if b.EndDate != nil && now.After(*b.EndDate) {
			continue
		}
		visible = append(visible, b)
	}
	return responses.OK(c, "Banners fetched successfully", &fiber.Map{"banners": visible})
}

func (h *Controller) UpdateBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid banner ID format", nil)
	}

	var reqBody bannerBody
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.BannerType != nil && !models.ValidBannerType(*reqBody.BannerType) {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid banner type", nil)
	}

	banner, err := h.Banners.Patch(ctx, id, models.BannerPatch{
		Title:       reqBody.Title,
		ImageUrl:    reqBody.ImageUrl,
		Link:        reqBody.Link,
		BannerType:  reqBody.BannerType,
		IsActive:    reqBody.IsActive,
		StartDate:   reqBody.StartDate,
		EndDate:     reqBody.EndDate,
		Priority:    reqBody.Priority,
		Description: reqBody.Description,
	})
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Banner updated successfully", &fiber.Map{"banner": banner})
}

func (h *Controller) DeleteBanner(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid banner ID format", nil)
	}
	if err := h.Banners.Delete(ctx, id); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Banner deleted successfully", nil)
}
