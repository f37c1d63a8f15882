package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/monupal1122/grocery-backend/configs"
	"github.com/monupal1122/grocery-backend/responses"
)

func unauthorized(c *fiber.Ctx, message string) error {
	return responses.JSON(c, fiber.StatusUnauthorized, message, nil)
}

// AuthMiddleware validates the bearer token and stores userId and role in
// Locals for the handlers.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c, "No auth token, access denied")
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return unauthorized(c, "Invalid authorization header format")
	}

	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return unauthorized(c, "Token verification failed, access denied")
	}

	userId, ok := (*claims)["id"].(string)
	if !ok || userId == "" {
		return unauthorized(c, "User ID not found in token")
	}

	c.Locals("userId", userId)
	if role, ok := (*claims)["role"].(string); ok {
		c.Locals("role", role)
	}
	return c.Next()
}

// AdminOnly requires a token carrying the admin role. Mount after
// AuthMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	if role, ok := c.Locals("role").(string); !ok || role != "admin" {
		return responses.JSON(c, fiber.StatusForbidden, "Access denied: Admin only", nil)
	}
	return c.Next()
}
