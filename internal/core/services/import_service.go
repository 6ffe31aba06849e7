package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/importing"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var importRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "backoffice_import_rows_total",
	Help: "Rows processed by bulk imports, by record type and outcome.",
}, []string{"record_type", "outcome"})

type importService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
}

// NewImportService creates the bulk import service.
func NewImportService(serviceRepo portsrepo.ServiceRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade) portssvc.ImportSvc {
	return &importService{serviceRepo: serviceRepo, paymentRepo: paymentRepo, vendorRepo: vendorRepo}
}

// Import parses data, classifies it and inserts the rows one at a time in file order.
// Row failures are collected in the result and never abort the import.
func (s *importService) Import(ctx context.Context, filename string, data []byte, creatorUserID string) (*dto.ImportResult, error) {
	ds, err := importing.Parse(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	recordType, rows, err := importing.Classify(ds, filename)
	if err != nil {
		var unrecognized *importing.UnrecognizedError
		if errors.As(err, &unrecognized) || errors.Is(err, importing.ErrNoRecords) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to classify import: %w", err)
	}

	logger := s.GetLogger(ctx).With(slog.String("record_type", string(recordType)), slog.String("filename", filename))
	logger.Info("Import started", slog.Int("rows", len(rows)))

	result := &dto.ImportResult{RecordType: string(recordType), Total: len(rows), Errors: []string{}}
	insert := s.rowInserter(ctx, recordType, creatorUserID)
	for i, row := range rows {
		rowNum := i + 1
		if err := insert(rowNum, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, rowMessage(rowNum, err))
			importRowsTotal.WithLabelValues(string(recordType), "failed").Inc()
			continue
		}
		result.Imported++
		importRowsTotal.WithLabelValues(string(recordType), "imported").Inc()
	}

	logger.Info("Import finished", slog.Int("imported", result.Imported), slog.Int("failed", result.Failed))
	return result, nil
}

// rowInserter returns the function that maps and stores one row of recordType.
func (s *importService) rowInserter(ctx context.Context, recordType importing.RecordType, userID string) func(int, importing.Row) error {
	now := s.Now()
	switch recordType {
	case importing.Payments:
		resolve := s.serviceResolver(ctx)
		return func(rowNum int, row importing.Row) error {
			p, err := importing.MapPaymentRow(rowNum, row, resolve, now)
			if err != nil {
				return err
			}
			p.PaymentID = uuid.NewString()
			p.AuditFields = domain.NewAuditFields(userID, now)
			return s.paymentRepo.SavePayment(ctx, p)
		}
	case importing.Vendors:
		return func(rowNum int, row importing.Row) error {
			v, err := importing.MapVendorRow(rowNum, row)
			if err != nil {
				return err
			}
			v.VendorID = uuid.NewString()
			v.AuditFields = domain.NewAuditFields(userID, now)
			return s.vendorRepo.SaveVendor(ctx, v)
		}
	default:
		return func(rowNum int, row importing.Row) error {
			svc, err := importing.MapServiceRow(rowNum, row)
			if err != nil {
				return err
			}
			svc.ServiceID = uuid.NewString()
			svc.AuditFields = domain.NewAuditFields(userID, now)
			return s.serviceRepo.SaveService(ctx, svc)
		}
	}
}

// serviceResolver looks services up by name, case-insensitively, caching hits for the import.
func (s *importService) serviceResolver(ctx context.Context) importing.ServiceNameResolver {
	cache := make(map[string]string)
	return func(name string) (string, bool) {
		key := strings.ToLower(strings.TrimSpace(name))
		if id, ok := cache[key]; ok {
			return id, true
		}
		svc, err := s.serviceRepo.FindServiceByName(ctx, name)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to resolve service by name", slog.String("service_name", name))
			}
			return "", false
		}
		cache[key] = svc.ServiceID
		return svc.ServiceID, true
	}
}

// rowMessage keeps mapping errors as they are and prefixes storage errors with the row number.
func rowMessage(rowNum int, err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "Row ") {
		return msg
	}
	return fmt.Sprintf("Row %d: %s", rowNum, msg)
}
