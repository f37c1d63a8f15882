package responses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/configs"
)

type ApiResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result"`
}

func OK(c *fiber.Ctx, message string, result *fiber.Map) error {
	return JSON(c, fiber.StatusOK, message, result)
}

func Created(c *fiber.Ctx, message string, result *fiber.Map) error {
	return JSON(c, fiber.StatusCreated, message, result)
}

func JSON(c *fiber.Ctx, status int, message string, result *fiber.Map) error {
	return c.Status(status).JSON(ApiResponse{
		Status:  status,
		Message: message,
		Result:  result,
	})
}

// Error converts a service error into the JSON envelope. Internal errors show
// their message only in development mode.
func Error(c *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError && !configs.IsDevelopment() {
		message = "Something went wrong, please try again later"
	}
	return c.Status(status).JSON(ApiResponse{
		Status:  status,
		Message: message,
		Result:  nil,
	})
}
