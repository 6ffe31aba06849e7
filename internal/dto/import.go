package dto

// ImportResult summarises a bulk import.
type ImportResult struct {
	RecordType string   `json:"recordType"`
	Total      int      `json:"total"`
	Imported   int      `json:"imported"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}
