package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/services"
)

type ShopHandler struct {
	shop *services.ShopService
}

func NewShopHandler(shop *services.ShopService) *ShopHandler {
	return &ShopHandler{shop: shop}
}

func (h *ShopHandler) Inventory(c *fiber.Ctx) error {
	return c.JSON(dto.ListResponse[models.InventoryPart]{Data: h.shop.Inventory()})
}

func (h *ShopHandler) Customers(c *fiber.Ctx) error {
	return c.JSON(dto.ListResponse[models.CustomerDetail]{Data: h.shop.Customers(c.Query("search"))})
}

// Workers and Users answer with bare arrays; the settings pages read the
// body directly instead of a data envelope.
func (h *ShopHandler) Workers(c *fiber.Ctx) error {
	return c.JSON(h.shop.Workers())
}

func (h *ShopHandler) Users(c *fiber.Ctx) error {
	return c.JSON(h.shop.Users())
}
