package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

// GCSStore keeps attachment files in a Google Cloud Storage bucket.
type GCSStore struct {
	bucket  string
	objects *gcs.ObjectsService
}

var _ portsrepo.FileStore = (*GCSStore)(nil)

// NewGCSStore connects to the bucket. An empty credentialsFile uses the
// application default credentials.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket cannot be empty")
	}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{bucket: bucket, objects: svc.Objects}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, contentType string, r io.Reader) error {
	obj := &gcs.Object{Name: key, ContentType: contentType}
	_, err := s.objects.Insert(s.bucket, obj).
		Media(r, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *GCSStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := s.objects.Get(s.bucket, key).Context(ctx).Download()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("stored file %s: %w", key, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	return resp.Body, nil
}

// Delete is idempotent: a missing object is not an error.
func (s *GCSStore) Delete(ctx context.Context, key string) error {
	err := s.objects.Delete(s.bucket, key).Context(ctx).Do()
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
