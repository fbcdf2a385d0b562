package dto

import "errors"

// Custom errors
var (
	ErrNoFilesProvided  = errors.New("no files provided")
	ErrModelUnavailable = errors.New("document QA model is not available")
	ErrSummaryNotFound  = errors.New("generated summary document not found")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// TaxFilingResponse is the final response structure
type TaxFilingResponse struct {
	Message               string             `json:"message"`
	ProcessedFilesSummary []ExtractionResult `json:"processed_files_summary"`
	TaxSummary            TaxSummary         `json:"tax_summary"`
	Form1040DownloadLink  string             `json:"form_1040_download_link"`
	ProcessedAt           string             `json:"processed_at"`
}
