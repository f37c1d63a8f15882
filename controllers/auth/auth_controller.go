package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/monupal1122/grocery-backend/responses"
	"github.com/monupal1122/grocery-backend/services/auth"
)

type Controller struct {
	Auth *auth.Service
}

func New(svc *auth.Service) *Controller {
	return &Controller{Auth: svc}
}

func (h *Controller) Signup(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	user, token, err := h.Auth.Signup(ctx, reqBody.Username, reqBody.Email, reqBody.Password)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.Created(c, "User created successfully", &fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": user.Id.Hex(), "email": user.Email, "username": user.Username},
	})
}

func (h *Controller) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	user, token, err := h.Auth.Login(ctx, reqBody.Email, reqBody.Password)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Login successful", &fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": user.Id.Hex(), "email": user.Email, "username": user.Username},
	})
}

func (h *Controller) RequestOTP(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	if err := h.Auth.RequestOTP(ctx, reqBody.Email); err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "OTP sent", nil)
}

func (h *Controller) VerifyOTP(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	user, token, err := h.Auth.VerifyOTP(ctx, reqBody.Email, reqBody.Otp)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Login successful", &fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": user.Id.Hex(), "email": user.Email, "username": user.Username},
	})
}

// Logout is stateless: the client drops the token.
func (h *Controller) Logout(c *fiber.Ctx) error {
	return responses.OK(c, "Logout successful", nil)
}

func (h *Controller) AdminLogin(c *fiber.Ctx) error {
	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.JSON(c, fiber.StatusBadRequest, "Invalid request format", nil)
	}

	token, err := h.Auth.AdminLogin(reqBody.Email, reqBody.Password)
	if err != nil {
		return responses.Error(c, err)
	}
	return responses.OK(c, "Admin Login Successful", &fiber.Map{
		"token": token,
		"admin": fiber.Map{"email": reqBody.Email, "role": "admin"},
	})
}
