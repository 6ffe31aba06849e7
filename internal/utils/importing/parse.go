// Package importing parses uploaded CSV and JSON files, works out which kind
// of record they hold and maps loosely named columns onto domain records.
package importing

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoRecords is returned for files that contain no data rows.
var ErrNoRecords = errors.New("file contains no records")

// Row is one parsed record keyed by its original column names.
type Row map[string]string

// Columns returns the row's column names in sorted order.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for k := range r {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Dataset is the parsed content of an import file.
type Dataset struct {
	Rows    []Row
	Columns []string
	// Export holds the arrays of a system export file, keyed by record type.
	Export map[RecordType][]Row
}

// IsSystemExport reports whether the file was a system export wrapper.
func (d *Dataset) IsSystemExport() bool {
	return d.Export != nil
}

// Parse picks the parser from the file extension, falling back to sniffing the content.
func Parse(filename string, data []byte) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	case ".json":
		return ParseJSON(data)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return ParseJSON(data)
	}
	return ParseCSV(bytes.NewReader(data))
}

// ParseCSV reads a comma separated file with a header row. Rows whose field
// count differs from the header are dropped and blank lines are skipped.
func ParseCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	ds := &Dataset{Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(record) != len(header) {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			row[col] = strings.TrimSpace(record[i])
		}
		ds.Rows = append(ds.Rows, row)
	}

	if len(ds.Rows) == 0 {
		return nil, ErrNoRecords
	}
	return ds, nil
}

// ParseJSON accepts an array of objects, a single object, or a system export
// object holding services, payments and vendors arrays.
func ParseJSON(data []byte) (*Dataset, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	switch v := raw.(type) {
	case []any:
		rows, err := objectsToRows(v)
		if err != nil {
			return nil, err
		}
		return newDataset(rows)
	case map[string]any:
		if export, ok := systemExport(v); ok {
			return &Dataset{Export: export}, nil
		}
		return newDataset([]Row{objectToRow(v)})
	}
	return nil, fmt.Errorf("json must be an object or an array of objects")
}

func newDataset(rows []Row) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}
	return &Dataset{Rows: rows, Columns: columnsOf(rows)}, nil
}

func systemExport(obj map[string]any) (map[RecordType][]Row, bool) {
	export := make(map[RecordType][]Row)
	found := false
	for _, rt := range exportPriority {
		arr, ok := obj[string(rt)].([]any)
		if !ok {
			continue
		}
		found = true
		rows, err := objectsToRows(arr)
		if err != nil {
			continue
		}
		export[rt] = rows
	}
	return export, found
}

func objectsToRows(items []any) ([]Row, error) {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not an object", i+1)
		}
		rows = append(rows, objectToRow(obj))
	}
	return rows, nil
}

func objectToRow(obj map[string]any) Row {
	row := make(Row, len(obj))
	for k, v := range obj {
		row[k] = stringify(v)
	}
	return row
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// columnsOf collects the union of column names in first-seen order.
func columnsOf(rows []Row) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for _, c := range row.Columns() {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	return cols
}
