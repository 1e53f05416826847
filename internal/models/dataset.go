package models

// Dataset is one complete generated seed, held in dependency order.
type Dataset struct {
	Organizations []Organization
	Customers     []CustomerDetail
	MobileNumbers []CustomerMobileNumber
	Workers       []Worker
	Users         []User
	Suppliers     []Supplier
	Parts         []InventoryPart
	Jobs          []ServiceRequest
	WorkLogs      []WorkLog
	PartsUsed     []PartUsed
	Windings      []WindingDetail
	Payments      []Payment
	Documents     []Document
}

// SchemaModels lists the target tables in the order they are seeded.
func SchemaModels() []interface{} {
	return []interface{}{
		&Organization{},
		&CustomerDetail{},
		&CustomerMobileNumber{},
		&Worker{},
		&User{},
		&Supplier{},
		&InventoryPart{},
		&ServiceRequest{},
		&WorkLog{},
		&PartUsed{},
		&WindingDetail{},
		&Payment{},
		&Document{},
	}
}

// Counts returns the number of rows per table name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		Organization{}.TableName():         len(d.Organizations),
		CustomerDetail{}.TableName():       len(d.Customers),
		CustomerMobileNumber{}.TableName(): len(d.MobileNumbers),
		Worker{}.TableName():               len(d.Workers),
		User{}.TableName():                 len(d.Users),
		Supplier{}.TableName():             len(d.Suppliers),
		InventoryPart{}.TableName():        len(d.Parts),
		ServiceRequest{}.TableName():       len(d.Jobs),
		WorkLog{}.TableName():              len(d.WorkLogs),
		PartUsed{}.TableName():             len(d.PartsUsed),
		WindingDetail{}.TableName():        len(d.Windings),
		Payment{}.TableName():              len(d.Payments),
		Document{}.TableName():             len(d.Documents),
	}
}

func (d *Dataset) Job(jobNumber string) (*ServiceRequest, bool) {
	for i := range d.Jobs {
		if d.Jobs[i].JobNumber == jobNumber {
			return &d.Jobs[i], true
		}
	}
	return nil, false
}

func (d *Dataset) Customer(id int) (*CustomerDetail, bool) {
	for i := range d.Customers {
		if d.Customers[i].CustomerID == id {
			return &d.Customers[i], true
		}
	}
	return nil, false
}

func (d *Dataset) UserByName(username string) (*User, bool) {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i], true
		}
	}
	return nil, false
}
