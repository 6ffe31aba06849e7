package models

// Vendor is a row of the vendors table.
type Vendor struct {
	VendorID      string `db:"vendor_id"`
	Name          string `db:"name"`
	ContactPerson string `db:"contact_person"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Website       string `db:"website"`
	Address       string `db:"address"`
	Notes         string `db:"notes"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// Category is a row of the service_categories table.
type Category struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Color       string `db:"color"`
	AuditFields
}
