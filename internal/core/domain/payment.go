package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentPending  PaymentStatus = "Pending"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

// IsValid reports whether s is one of the known payment statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment records money paid against a service.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	ServiceID     string          `json:"serviceID"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"` // invoice or transaction number
	Status        PaymentStatus   `json:"status"`
	Notes         string          `json:"notes"`
	AuditFields
}
