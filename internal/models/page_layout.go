package models

// PageLayout is a row of the page_layouts table. Components is stored as JSONB.
type PageLayout struct {
	LayoutID    string `db:"layout_id"`
	Name        string `db:"name"`
	PageKey     string `db:"page_key"`
	Components  []byte `db:"components"`
	IsPublished bool   `db:"is_published"`
	AuditFields
}

// Settings is a row of the settings table, one per section.
type Settings struct {
	Section string `db:"section"`
	Values  []byte `db:"section_values"`
	AuditFields
}

// Attachment is a row of the attachments table.
type Attachment struct {
	AttachmentID string `db:"attachment_id"`
	EntityType   string `db:"entity_type"`
	EntityID     string `db:"entity_id"`
	FileName     string `db:"file_name"`
	ContentType  string `db:"content_type"`
	SizeBytes    int64  `db:"size_bytes"`
	StorageKey   string `db:"storage_key"`
	AuditFields
}
