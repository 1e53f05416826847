package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rows below hang off a ServiceRequest by JobNumber.

type WorkLog struct {
	WorkLogID int       `gorm:"column:WorkLogId;primaryKey" json:"WorkLogId"`
	JobNumber string    `gorm:"column:JobNumber;size:50;not null;index" json:"JobNumber"`
	WorkerID  int       `gorm:"column:WorkerId;not null;index" json:"WorkerId"`
	WorkDone  string    `gorm:"column:WorkDone;size:255" json:"WorkDone"`
	StartTime time.Time `gorm:"column:StartTime" json:"StartTime"`
	EndTime   time.Time `gorm:"column:EndTime" json:"EndTime"`
}

func (WorkLog) TableName() string { return "worklog" }

type PartUsed struct {
	PartUsedID int             `gorm:"column:PartUsedId;primaryKey" json:"PartUsedId"`
	JobNumber  string          `gorm:"column:JobNumber;size:50;not null;index" json:"JobNumber"`
	PartName   string          `gorm:"column:PartName;size:255" json:"PartName"`
	Unit       string          `gorm:"column:Unit;size:20" json:"Unit"`
	Qty        int             `gorm:"column:Qty" json:"Qty"`
	CostPrice  decimal.Decimal `gorm:"column:CostPrice;type:decimal(12,2)" json:"CostPrice"`
}

func (PartUsed) TableName() string { return "partsused" }

type WindingDetail struct {
	ID             int             `gorm:"column:id;primaryKey" json:"id"`
	JobNumber      string          `gorm:"column:jobNumber;size:50;not null;index" json:"jobNumber"`
	HP             decimal.Decimal `gorm:"column:hp;type:decimal(5,2)" json:"hp"`
	Phase          string          `gorm:"column:phase;size:20" json:"phase"`
	ConnectionType string          `gorm:"column:connection_type;size:20" json:"connection_type"`
	SWGRun         int             `gorm:"column:swg_run" json:"swg_run"`
	TurnsRun       int             `gorm:"column:turns_run" json:"turns_run"`
}

func (WindingDetail) TableName() string { return "windingdetails" }

type Payment struct {
	PaymentID   int             `gorm:"column:PaymentId;primaryKey" json:"PaymentId"`
	JobNumber   string          `gorm:"column:JobNumber;size:50;not null;index" json:"JobNumber"`
	Amount      decimal.Decimal `gorm:"column:Amount;type:decimal(12,2)" json:"Amount"`
	PaymentType string          `gorm:"column:PaymentType;size:30" json:"PaymentType"`
	PaymentMode string          `gorm:"column:PaymentMode;size:30" json:"PaymentMode"`
}

func (Payment) TableName() string { return "payments" }

type Document struct {
	DocumentID   int    `gorm:"column:DocumentId;primaryKey" json:"DocumentId"`
	JobNumber    string `gorm:"column:JobNumber;size:50;not null;index" json:"JobNumber"`
	CustomerID   int    `gorm:"column:CustomerId;not null" json:"CustomerId"`
	DocumentType string `gorm:"column:DocumentType;size:50" json:"DocumentType"`
	EmbedTag     string `gorm:"column:EmbedTag;type:text" json:"EmbedTag"`
	CreatedBy    int    `gorm:"column:CreatedBy" json:"CreatedBy"`
}

func (Document) TableName() string { return "documents" }
