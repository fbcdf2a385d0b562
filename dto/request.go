package dto

import (
	"errors"
	"mime/multipart"
)

// TaxFilingRequest represents the incoming upload request
type TaxFilingRequest struct {
	Files         []*multipart.FileHeader `form:"files" binding:"required"`
	FilingStatus  string                  `form:"filing_status" binding:"required"`
	NumDependents int                     `form:"num_dependents"`
}

// Validate performs basic validation on the request
func (r *TaxFilingRequest) Validate() error {
	if len(r.Files) == 0 {
		return ErrNoFilesProvided
	}
	if r.FilingStatus == "" {
		return errors.New("filing status is required")
	}
	if r.NumDependents < 0 {
		return errors.New("number of dependents cannot be negative")
	}
	return nil
}
