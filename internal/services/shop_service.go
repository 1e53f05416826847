package services

import (
	"strings"

	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/models"
)

// ShopService serves the reference lists of a seeded dataset.
type ShopService struct {
	ds *models.Dataset
}

func NewShopService(ds *models.Dataset) *ShopService {
	return &ShopService{ds: ds}
}

func (s *ShopService) Inventory() []models.InventoryPart {
	return nonNil(s.ds.Parts)
}

// Customers matches search against name, company and contact number.
func (s *ShopService) Customers(search string) []models.CustomerDetail {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return nonNil(s.ds.Customers)
	}
	out := []models.CustomerDetail{}
	for _, c := range s.ds.Customers {
		company := ""
		if c.CompanyName != nil {
			company = *c.CompanyName
		}
		if strings.Contains(strings.ToLower(c.CustomerName), search) ||
			strings.Contains(strings.ToLower(company), search) ||
			strings.Contains(c.PrimaryContact, search) {
			out = append(out, c)
		}
	}
	return out
}

func (s *ShopService) Workers() []models.Worker {
	return nonNil(s.ds.Workers)
}

func (s *ShopService) Users() []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(s.ds.Users))
	for _, u := range s.ds.Users {
		out = append(out, dto.UserResponse{
			UserID:     u.UserID,
			Username:   u.Username,
			Role:       u.Role,
			WorkerID:   u.WorkerID,
			CustomerID: u.CustomerID,
		})
	}
	return out
}

func (s *ShopService) JobCount() int {
	return len(s.ds.Jobs)
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
