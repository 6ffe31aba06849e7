package services

import (
	"context"
	"io"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// UploadAttachmentInput describes an incoming file.
type UploadAttachmentInput struct {
	EntityType  domain.AttachmentEntity
	EntityID    string
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

// AttachmentSvcFacade stores files linked to records.
type AttachmentSvcFacade interface {
	Upload(ctx context.Context, in UploadAttachmentInput, creatorUserID string) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, entityType domain.AttachmentEntity, entityID string) ([]domain.Attachment, error)

	// Open returns the metadata and a reader over the stored bytes. The caller closes the reader.
	Open(ctx context.Context, attachmentID string) (*domain.Attachment, io.ReadCloser, error)
	DeleteAttachment(ctx context.Context, attachmentID string, requestingUserID string) error
}
