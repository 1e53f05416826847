package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/pumpshop/seed/internal/dto"
)

// RoleRequired lets the request through only when the token's Role claim
// is one of roles.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, role, err := Claims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Access denied"})
		}
		return c.Next()
	}
}
