package models

const (
	RoleAdmin    = "Admin"
	RoleOwner    = "Owner"
	RoleWorker   = "Worker"
	RoleCustomer = "Customer"
)

// User is a login account. Worker users carry WorkerID, Customer users carry
// CustomerID; Admin and Owner carry neither.
type User struct {
	UserID       int    `gorm:"column:UserId;primaryKey;autoIncrement:false" json:"UserId"`
	Username     string `gorm:"column:Username;size:255;not null;uniqueIndex" json:"Username"`
	PasswordHash string `gorm:"column:PasswordHash;size:255;not null" json:"-"`
	Role         string `gorm:"column:Role;size:20;not null" json:"Role"`
	WorkerID     *int   `gorm:"column:WorkerId" json:"WorkerId"`
	CustomerID   *int   `gorm:"column:CustomerId" json:"CustomerId"`
}

func (User) TableName() string { return "users" }
