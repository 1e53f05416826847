package models

const (
	CustomerIndividual         = "Individual"
	CustomerOrganizationMember = "OrganizationMember"
)

// CustomerDetail is a shop customer. OrganizationID is set only for
// OrganizationMember customers.
type CustomerDetail struct {
	CustomerID     int     `gorm:"column:CustomerId;primaryKey;autoIncrement:false" json:"CustomerId"`
	CustomerName   string  `gorm:"column:CustomerName;size:255;not null" json:"CustomerName"`
	CompanyName    *string `gorm:"column:CompanyName;size:255" json:"CompanyName"`
	Address        string  `gorm:"column:Address;type:text" json:"Address"`
	PrimaryContact string  `gorm:"column:PrimaryContact;size:20" json:"PrimaryContact"`
	OrganizationID *int    `gorm:"column:OrganizationId;index" json:"OrganizationId"`
	CustomerType   string  `gorm:"column:CustomerType;size:30;not null" json:"CustomerType"`
}

func (CustomerDetail) TableName() string { return "customerdetails" }

type CustomerMobileNumber struct {
	MobileNumberID int    `gorm:"column:MobileNumberId;primaryKey" json:"MobileNumberId"`
	CustomerID     int    `gorm:"column:CustomerId;not null;index" json:"CustomerId"`
	MobileNumber   string `gorm:"column:MobileNumber;size:20;not null" json:"MobileNumber"`
}

func (CustomerMobileNumber) TableName() string { return "customermobilenumbers" }
