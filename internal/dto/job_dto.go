package dto

import (
	"time"

	"github.com/pumpshop/seed/internal/models"
	"github.com/shopspring/decimal"
)

type JobQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Status string `query:"status"`
	Search string `query:"search"`
}

// JobSummary is one row of the jobs list. CustomerName and EstimatedAmount
// are left out for workers.
type JobSummary struct {
	JobNumber       string           `json:"JobNumber"`
	CustomerName    string           `json:"CustomerName,omitempty"`
	PumpBrand       string           `json:"PumpBrand"`
	PumpModel       string           `json:"PumpModel"`
	MotorBrand      string           `json:"MotorBrand"`
	MotorModel      string           `json:"MotorModel"`
	HP              decimal.Decimal  `json:"HP"`
	DateReceived    time.Time        `json:"DateReceived"`
	Status          string           `json:"Status"`
	EstimatedAmount *decimal.Decimal `json:"EstimatedAmount,omitempty"`
}

type Pagination struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type JobListResponse struct {
	Data       []JobSummary `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// JobDetail is a service request with everything recorded against it.
// JobDetail shadows the embedded EstimatedAmount so it can be left out for
// workers.
type JobDetail struct {
	models.ServiceRequest
	EstimatedAmount *decimal.Decimal      `json:"EstimatedAmount,omitempty"`
	CustomerName    string                `json:"CustomerName,omitempty"`
	PrimaryContact  string                `json:"PrimaryContact,omitempty"`
	Parts           []models.PartUsed     `json:"Parts"`
	WorkLogs        []models.WorkLog      `json:"WorkLogs"`
	Winding         *models.WindingDetail `json:"Winding"`
	Payments        []models.Payment      `json:"Payments"`
	Documents       []models.Document     `json:"Documents"`
}

type DashboardStats struct {
	TotalJobs       int             `json:"totalJobs"`
	ActiveJobs      int             `json:"activeJobs"`
	PendingApproval int             `json:"pendingApproval"`
	ByStatus        map[string]int  `json:"byStatus"`
	Revenue         decimal.Decimal `json:"revenue"`
}

type ListResponse[T any] struct {
	Data []T `json:"data"`
}
