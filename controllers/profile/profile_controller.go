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
	Profiles store.Profiles
	Users    store.Users
}

func New(st *store.Store) *Controller {
	return &Controller{Profiles: st.Profiles, Users: st.Users}
}

func currentUserID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(raw)
}

// UpsertProfile creates the caller's profile on first write and merges
// non-empty fields on subsequent ones.
func (h *Controller) UpsertProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return responses.JSON(c, fiber.StatusUnauthorized, "Invalid user ID", nil)
	}

	var reqBody struct {
		FullName     string     `json:"fullName"`
		PhoneNumber  string     `json:"phoneNumber"`
		Gender       string     `json:"gender"`
		DateOfBirth  *time.Time `json:"dateOfBirth"`
		ProfileImage string     `json:"avatar"`
		Bio          string     `json:"bio"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}
	if reqBody.Gender != "" && reqBody.Gender != "Male" && reqBody.Gender != "Female" && reqBody.Gender != "Other" {
		return responses.JSON(c, fiber.StatusBadRequest, "Gender must be Male, Female or Other", nil)
	}

	now := time.Now()
	profile := models.Profile{
		UserId:       userID,
		FullName:     reqBody.FullName,
		PhoneNumber:  reqBody.PhoneNumber,
		Gender:       reqBody.Gender,
		DateOfBirth:  reqBody.DateOfBirth,
		ProfileImage: reqBody.ProfileImage,
		Bio:          reqBody.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user, err := h.Users.FindByID(ctx, userID); err == nil {
		profile.Email = user.Email
	}

	saved, err := h.Profiles.Upsert(ctx, profile)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Profile saved successfully", &fiber.Map{"profile": saved})
}

func (h *Controller) GetMyProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return responses.JSON(c, fiber.StatusUnauthorized, "Invalid user ID", nil)
	}

	profile, err := h.Profiles.FindByUser(ctx, userID)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Profile fetched successfully", &fiber.Map{"profile": profile})
}

func (h *Controller) DeleteProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return responses.JSON(c, fiber.StatusUnauthorized, "Invalid user ID", nil)
	}

	if err := h.Profiles.DeleteByUser(ctx, userID); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Profile deleted successfully", nil)
}

func (h *Controller) GetAllProfiles(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	profiles, err := h.Profiles.All(ctx)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Profiles fetched successfully", &fiber.Map{"profiles": profiles})
}
