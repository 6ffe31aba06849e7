package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelService converts a domain Service to a model Service
func ToModelService(d domain.Service) models.Service {
	m := models.Service{
		ServiceID:         d.ServiceID,
		ServiceName:       d.ServiceName,
		Provider:          d.Provider,
		VendorID:          d.VendorID,
		CategoryID:        d.CategoryID,
		Amount:            d.Amount,
		Currency:          d.Currency,
		BillingCycle:      string(d.BillingCycle),
		StartDate:         d.StartDate,
		NextRenewalDate:   d.NextRenewalDate,
		NextRenewalAmount: d.NextRenewalAmount,
		Status:            string(d.Status),
		AutoRenew:         d.AutoRenew,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.CustomCycleDays != nil {
		days := int32(*d.CustomCycleDays)
		m.CustomCycleDays = &days
	}
	return m
}

// ToDomainService converts a model Service to a domain Service
func ToDomainService(m models.Service) domain.Service {
	d := domain.Service{
		ServiceID:         m.ServiceID,
		ServiceName:       m.ServiceName,
		Provider:          m.Provider,
		VendorID:          m.VendorID,
		CategoryID:        m.CategoryID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		BillingCycle:      domain.BillingCycle(m.BillingCycle),
		StartDate:         m.StartDate,
		NextRenewalDate:   m.NextRenewalDate,
		NextRenewalAmount: m.NextRenewalAmount,
		Status:            domain.ServiceStatus(m.Status),
		AutoRenew:         m.AutoRenew,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.CustomCycleDays != nil {
		days := int(*m.CustomCycleDays)
		d.CustomCycleDays = &days
	}
	return d
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ServiceID:     d.ServiceID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		PaymentDate:   d.PaymentDate,
		PaymentMethod: d.PaymentMethod,
		Reference:     d.Reference,
		Status:        string(d.Status),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ServiceID:     m.ServiceID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		PaymentDate:   m.PaymentDate,
		PaymentMethod: m.PaymentMethod,
		Reference:     m.Reference,
		Status:        domain.PaymentStatus(m.Status),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
