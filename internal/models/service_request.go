package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRequest is a repair job. DeclinedReason and DeclinedNotes are only
// set for Not Approved jobs.
type ServiceRequest struct {
	JobNumber       string          `gorm:"column:JobNumber;primaryKey;size:50" json:"JobNumber"`
	CustomerID      int             `gorm:"column:CustomerId;not null;index" json:"CustomerId"`
	PumpBrand       string          `gorm:"column:PumpBrand;size:100" json:"PumpBrand"`
	PumpModel       string          `gorm:"column:PumpModel;size:100" json:"PumpModel"`
	MotorBrand      string          `gorm:"column:MotorBrand;size:100" json:"MotorBrand"`
	MotorModel      string          `gorm:"column:MotorModel;size:100" json:"MotorModel"`
	HP              decimal.Decimal `gorm:"column:HP;type:decimal(5,2)" json:"HP"`
	Warranty        string          `gorm:"column:Warranty;size:3" json:"Warranty"`
	DateReceived    time.Time       `gorm:"column:DateReceived;not null" json:"DateReceived"`
	Status          string          `gorm:"column:Status;size:50;index" json:"Status"`
	EstimationDate  *time.Time      `gorm:"column:EstimationDate" json:"EstimationDate"`
	ApprovalDate    *time.Time      `gorm:"column:ApprovalDate" json:"ApprovalDate"`
	DeclinedReason  *string         `gorm:"column:DeclinedReason;size:255" json:"DeclinedReason"`
	DeclinedNotes   *string         `gorm:"column:DeclinedNotes;type:text" json:"DeclinedNotes"`
	EstimatedAmount decimal.Decimal `gorm:"column:EstimatedAmount;type:decimal(12,2)" json:"EstimatedAmount"`
}

func (ServiceRequest) TableName() string { return "servicerequest" }
