package models

import "github.com/shopspring/decimal"

type Supplier struct {
	SupplierID   int    `gorm:"column:SupplierId;primaryKey;autoIncrement:false" json:"SupplierId"`
	SupplierName string `gorm:"column:SupplierName;size:255;not null" json:"SupplierName"`
}

func (Supplier) TableName() string { return "suppliers" }

type InventoryPart struct {
	PartID              int             `gorm:"column:PartId;primaryKey;autoIncrement:false" json:"PartId"`
	PartName            string          `gorm:"column:PartName;size:255;not null" json:"PartName"`
	Unit                string          `gorm:"column:Unit;size:20" json:"Unit"`
	DefaultCostPrice    decimal.Decimal `gorm:"column:DefaultCostPrice;type:decimal(12,2)" json:"DefaultCostPrice"`
	DefaultSellingPrice decimal.Decimal `gorm:"column:DefaultSellingPrice;type:decimal(12,2)" json:"DefaultSellingPrice"`
	QuantityInStock     int             `gorm:"column:QuantityInStock" json:"QuantityInStock"`
}

func (InventoryPart) TableName() string { return "inventory" }
