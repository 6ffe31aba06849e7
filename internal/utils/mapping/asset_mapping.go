package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:          d.AssetID,
		Name:             d.Name,
		AssetTag:         d.AssetTag,
		CategoryID:       d.CategoryID,
		LocationID:       d.LocationID,
		VendorID:         d.VendorID,
		PurchaseDate:     d.PurchaseDate,
		PurchaseCost:     d.PurchaseCost,
		CurrentBookValue: d.CurrentBookValue,
		Currency:         d.Currency,
		Status:           string(d.Status),
		Condition:        string(d.Condition),
		SerialNumber:     d.SerialNumber,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:          m.AssetID,
		Name:             m.Name,
		AssetTag:         m.AssetTag,
		CategoryID:       m.CategoryID,
		LocationID:       m.LocationID,
		VendorID:         m.VendorID,
		PurchaseDate:     m.PurchaseDate,
		PurchaseCost:     m.PurchaseCost,
		CurrentBookValue: m.CurrentBookValue,
		Currency:         m.Currency,
		Status:           domain.AssetStatus(m.Status),
		Condition:        domain.AssetCondition(m.Condition),
		SerialNumber:     m.SerialNumber,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainAssetCategory(m models.AssetCategory) domain.AssetCategory {
	return domain.AssetCategory{
		AssetCategoryID: m.AssetCategoryID,
		Name:            m.Name,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainAssetLocation(m models.AssetLocation) domain.AssetLocation {
	return domain.AssetLocation{
		AssetLocationID: m.AssetLocationID,
		Name:            m.Name,
		Address:         m.Address,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDepreciationSchedule converts a domain schedule to its row.
func ToModelDepreciationSchedule(d domain.DepreciationSchedule) models.DepreciationSchedule {
	return models.DepreciationSchedule{
		DepreciationID:  d.DepreciationID,
		AssetID:         d.AssetID,
		Method:          string(d.Method),
		UsefulLifeYears: int32(d.UsefulLifeYears),
		SalvageValue:    d.SalvageValue,
		StartDate:       d.StartDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepreciationSchedule converts a stored schedule row.
func ToDomainDepreciationSchedule(m models.DepreciationSchedule) domain.DepreciationSchedule {
	return domain.DepreciationSchedule{
		DepreciationID:  m.DepreciationID,
		AssetID:         m.AssetID,
		Method:          domain.DepreciationMethod(m.Method),
		UsefulLifeYears: int(m.UsefulLifeYears),
		SalvageValue:    m.SalvageValue,
		StartDate:       m.StartDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
