package importing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RecordType is the kind of record an import file holds.
type RecordType string

const (
	Services RecordType = "services"
	Payments RecordType = "payments"
	Vendors  RecordType = "vendors"
)

// exportPriority is the order a system export is unwrapped in when the filename gives no hint.
var exportPriority = []RecordType{Services, Payments, Vendors}

// UnrecognizedError is returned when no rule can classify the file.
type UnrecognizedError struct {
	Columns []string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("could not determine whether the file holds services, payments or vendors. Available columns: %s",
		strings.Join(e.Columns, ", "))
}

// Classify decides which record type ds holds and returns its rows. The first matching rule wins:
// system export unwrap, then filename, then column names.
func Classify(ds *Dataset, filename string) (RecordType, []Row, error) {
	hint, hinted := fromFilename(filename)

	if ds.IsSystemExport() {
		if hinted && len(ds.Export[hint]) > 0 {
			return hint, ds.Export[hint], nil
		}
		for _, rt := range exportPriority {
			if rows := ds.Export[rt]; len(rows) > 0 {
				return rt, rows, nil
			}
		}
		return "", nil, ErrNoRecords
	}

	if hinted {
		return hint, ds.Rows, nil
	}

	if rt, ok := fromColumns(ds.Columns); ok {
		return rt, ds.Rows, nil
	}
	return "", nil, &UnrecognizedError{Columns: ds.Columns}
}

func fromFilename(filename string) (RecordType, bool) {
	name := strings.ToLower(filepath.Base(filename))
	switch {
	case strings.Contains(name, "service"):
		return Services, true
	case strings.Contains(name, "payment"):
		return Payments, true
	case strings.Contains(name, "vendor"):
		return Vendors, true
	}
	return "", false
}

var (
	serviceHints = []string{"service", "provider", "subscription", "renewal", "billingcycle"}
	paymentHints = []string{"payment", "invoice", "transaction", "paidon", "paiddate"}
	vendorHints  = []string{"vendor", "supplier", "company"}
	contactHints = []string{"email", "phone", "contact", "website", "address"}
)

func fromColumns(columns []string) (RecordType, bool) {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = normalizeKey(c)
	}

	if anyContains(keys, serviceHints) {
		return Services, true
	}
	if anyContains(keys, paymentHints) || anyEquals(keys, "amount") {
		return Payments, true
	}
	if anyContains(keys, vendorHints) || (anyEquals(keys, "name") && anyContains(keys, contactHints)) {
		return Vendors, true
	}
	return "", false
}

func anyContains(keys, hints []string) bool {
	for _, k := range keys {
		for _, h := range hints {
			if strings.Contains(k, h) {
				return true
			}
		}
	}
	return false
}

func anyEquals(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

// normalizeKey folds a column name so that "Service Name", "service_name" and "serviceName" match.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '_', '-', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
