package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// AttachmentRepositoryFacade stores attachment metadata. File bytes live in a FileStore.
type AttachmentRepositoryFacade interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)
	FindAttachments(ctx context.Context, entityType domain.AttachmentEntity, entityID string) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}
