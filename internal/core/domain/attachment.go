package domain

// AttachmentEntity names the kind of record a file is attached to.
type AttachmentEntity string

const (
	AttachmentService AttachmentEntity = "service"
	AttachmentPayment AttachmentEntity = "payment"
	AttachmentAsset   AttachmentEntity = "asset"
	AttachmentVendor  AttachmentEntity = "vendor"
)

// IsValid reports whether e is a supported attachment target.
func (e AttachmentEntity) IsValid() bool {
	switch e {
	case AttachmentService, AttachmentPayment, AttachmentAsset, AttachmentVendor:
		return true
	}
	return false
}

// Attachment is a stored file linked to a record.
type Attachment struct {
	AttachmentID string           `json:"attachmentID"`
	EntityType   AttachmentEntity `json:"entityType"`
	EntityID     string           `json:"entityID"`
	FileName     string           `json:"fileName"`
	ContentType  string           `json:"contentType"`
	SizeBytes    int64            `json:"sizeBytes"`
	StorageKey   string           `json:"-"`
	AuditFields
}
