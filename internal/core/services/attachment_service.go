package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/google/uuid"
)

type attachmentService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	store    portsrepo.FileStore
	maxBytes int64
}

// NewAttachmentService creates the attachment service. maxBytes <= 0 disables the size check.
func NewAttachmentService(repos portsrepo.RepositoryProvider, store portsrepo.FileStore, maxBytes int64) portssvc.AttachmentSvcFacade {
	return &attachmentService{repos: repos, store: store, maxBytes: maxBytes}
}

// Upload stores the file and then its metadata row. When the row cannot be
// saved the stored object is removed again.
func (s *attachmentService) Upload(ctx context.Context, in portssvc.UploadAttachmentInput, creatorUserID string) (*domain.Attachment, error) {
	if !in.EntityType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported entity type %q", in.EntityType))
	}
	name := filepath.Base(strings.TrimSpace(in.FileName))
	if name == "" || name == "." || name == "/" {
		return nil, apperrors.NewValidationError("file name is required")
	}
	if s.maxBytes > 0 && in.SizeBytes > s.maxBytes {
		return nil, apperrors.NewValidationError(fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	if err := s.entityExists(ctx, in.EntityType, in.EntityID); err != nil {
		return nil, err
	}

	suffix, err := utils.GenerateSecureRandomString(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate storage key: %w", err)
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	attachment := domain.Attachment{
		AttachmentID: uuid.NewString(),
		EntityType:   in.EntityType,
		EntityID:     in.EntityID,
		FileName:     name,
		ContentType:  contentType,
		SizeBytes:    in.SizeBytes,
		AuditFields:  domain.NewAuditFields(creatorUserID, s.Now()),
	}
	attachment.StorageKey = fmt.Sprintf("%s/%s/%s-%s", in.EntityType, in.EntityID, suffix, name)

	logger := s.GetLogger(ctx).With(slog.String("storage_key", attachment.StorageKey))
	if err := s.store.Put(ctx, attachment.StorageKey, contentType, in.Body); err != nil {
		logger.Error("Failed to store attachment", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "failed to store attachment", err)
	}

	if err := s.repos.AttachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		logger.Error("Failed to save attachment metadata", slog.String("error", err.Error()))
		if delErr := s.store.Delete(ctx, attachment.StorageKey); delErr != nil {
			logger.Error("Failed to remove orphaned attachment object", slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	logger.Info("Attachment uploaded", slog.String("attachment_id", attachment.AttachmentID), slog.Int64("size_bytes", attachment.SizeBytes))
	return &attachment, nil
}

func (s *attachmentService) entityExists(ctx context.Context, entityType domain.AttachmentEntity, entityID string) error {
	var err error
	switch entityType {
	case domain.AttachmentService:
		_, err = s.repos.ServiceRepo.FindServiceByID(ctx, entityID)
	case domain.AttachmentPayment:
		_, err = s.repos.PaymentRepo.FindPaymentByID(ctx, entityID)
	case domain.AttachmentAsset:
		_, err = s.repos.AssetRepo.FindAssetByID(ctx, entityID)
	case domain.AttachmentVendor:
		_, err = s.repos.VendorRepo.FindVendorByID(ctx, entityID)
	}
	if err != nil {
		return fmt.Errorf("failed to find %s %s: %w", entityType, entityID, err)
	}
	return nil
}

func (s *attachmentService) ListAttachments(ctx context.Context, entityType domain.AttachmentEntity, entityID string) ([]domain.Attachment, error) {
	if !entityType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported entity type %q", entityType))
	}
	attachments, err := s.repos.AttachmentRepo.FindAttachments(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	if attachments == nil {
		attachments = []domain.Attachment{}
	}
	return attachments, nil
}

func (s *attachmentService) Open(ctx context.Context, attachmentID string) (*domain.Attachment, io.ReadCloser, error) {
	attachment, err := s.repos.AttachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find attachment: %w", err)
	}
	body, err := s.store.Get(ctx, attachment.StorageKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to read attachment object", slog.String("attachment_id", attachmentID))
		return nil, nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	return attachment, body, nil
}

func (s *attachmentService) DeleteAttachment(ctx context.Context, attachmentID string, requestingUserID string) error {
	attachment, err := s.repos.AttachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to find attachment: %w", err)
	}
	if err := s.repos.AttachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	removeStoredFiles(ctx, &s.BaseService, s.store, []string{attachment.StorageKey})
	s.LogInfo(ctx, "Attachment deleted", slog.String("attachment_id", attachmentID), slog.String("deleted_by", requestingUserID))
	return nil
}

// removeStoredFiles deletes objects whose metadata rows are already gone. Failures are only logged.
func removeStoredFiles(ctx context.Context, base *BaseService, store portsrepo.FileStore, keys []string) {
	if store == nil {
		return
	}
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			base.LogError(ctx, err, "Failed to delete attachment object", slog.String("storage_key", key))
		}
	}
}
