package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/pumpshop/seed/internal/config"
	"github.com/pumpshop/seed/internal/dto"
)

// JWTProtected accepts only HS256 bearer tokens signed with the configured
// secret. Both a missing and a rejected token answer 401 so the web client
// drops its session and returns to the login page.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.JWTSecret),
		},
		ErrorHandler: tokenRejected,
	})
}

func tokenRejected(c *fiber.Ctx, err error) error {
	msg := "Invalid or expired token"
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		msg = "Access token required"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg})
}
