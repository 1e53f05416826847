package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/middleware"
	"github.com/pumpshop/seed/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Username and password are required"})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid credentials"})
		}
		slog.Error("login failed", "username", req.Username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(resp)
}

// currentViewer resolves the token on c to a seeded user.
func currentViewer(c *fiber.Ctx, auth *services.AuthService) (services.Viewer, error) {
	userID, _, err := middleware.Claims(c)
	if err != nil {
		return services.Viewer{}, err
	}
	return auth.Viewer(userID)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
}
