package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errNoClaims = errors.New("invalid token in context")

// Claims returns the UserId and Role carried by the verified token.
func Claims(c *fiber.Ctx) (int, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, "", errNoClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	// JSON numbers decode as float64.
	id, ok := claims["UserId"].(float64)
	if !ok {
		return 0, "", errors.New("missing UserId claim")
	}
	role, _ := claims["Role"].(string)
	return int(id), role, nil
}
