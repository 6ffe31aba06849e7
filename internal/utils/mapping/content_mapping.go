package mapping

import (
	"encoding/json"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelPageLayout converts a domain PageLayout to a model PageLayout
func ToModelPageLayout(d domain.PageLayout) models.PageLayout {
	return models.PageLayout{
		LayoutID:    d.LayoutID,
		Name:        d.Name,
		PageKey:     d.PageKey,
		Components:  []byte(d.Components),
		IsPublished: d.IsPublished,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPageLayout converts a model PageLayout to a domain PageLayout
func ToDomainPageLayout(m models.PageLayout) domain.PageLayout {
	return domain.PageLayout{
		LayoutID:    m.LayoutID,
		Name:        m.Name,
		PageKey:     m.PageKey,
		Components:  json.RawMessage(m.Components),
		IsPublished: m.IsPublished,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		Section:     domain.SettingsSection(m.Section),
		Values:      json.RawMessage(m.Values),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAttachment converts a domain Attachment to a model Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID: d.AttachmentID,
		EntityType:   string(d.EntityType),
		EntityID:     d.EntityID,
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		SizeBytes:    d.SizeBytes,
		StorageKey:   d.StorageKey,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID: m.AttachmentID,
		EntityType:   domain.AttachmentEntity(m.EntityType),
		EntityID:     m.EntityID,
		FileName:     m.FileName,
		ContentType:  m.ContentType,
		SizeBytes:    m.SizeBytes,
		StorageKey:   m.StorageKey,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
