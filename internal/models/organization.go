package models

// Organization is a billing/contact parent for OrganizationMember customers.
type Organization struct {
	OrganizationID   int    `gorm:"column:OrganizationId;primaryKey;autoIncrement:false" json:"OrganizationId"`
	OrganizationName string `gorm:"column:OrganizationName;size:255;not null" json:"OrganizationName"`
	Email            string `gorm:"column:Email;size:255" json:"Email"`
	PrimaryContact   string `gorm:"column:PrimaryContact;size:20" json:"PrimaryContact"`
	Address          string `gorm:"column:Address;type:text" json:"Address"`
	City             string `gorm:"column:City;size:100" json:"City"`
	State            string `gorm:"column:State;size:100" json:"State"`
	OrganizationType string `gorm:"column:OrganizationType;size:50" json:"OrganizationType"`
}

func (Organization) TableName() string { return "organizations" }
