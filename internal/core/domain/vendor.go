package domain

// Vendor is a supplier of services or assets.
type Vendor struct {
	VendorID      string `json:"vendorID"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// Category groups services for reporting.
type Category struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	AuditFields
}
