package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/client"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/utils"
)

// TaxService orchestrates one upload request: save files, render
// pages, filter/classify/extract each page, aggregate totals, compute
// liability and render the draft summary document.
type TaxService struct {
	qaClient  client.DocQAClient
	renderer  PageRenderer
	extractor *FieldExtractor
	generator *FormGenerator
	uploadDir string
}

func NewTaxService(
	qaClient client.DocQAClient,
	renderer PageRenderer,
	extractor *FieldExtractor,
	generator *FormGenerator,
	uploadDir string,
) *TaxService {
	return &TaxService{
		qaClient:  qaClient,
		renderer:  renderer,
		extractor: extractor,
		generator: generator,
		uploadDir: uploadDir,
	}
}

// Ready reports whether the document-QA capability can serve requests.
func (s *TaxService) Ready(ctx context.Context) error {
	if err := s.qaClient.Ping(ctx); err != nil {
		log.Printf("Document QA model unavailable: %v", err)
		return dto.ErrModelUnavailable
	}
	return nil
}

// ProcessTaxDocuments runs the whole pipeline for one request. Any
// rendering or model failure aborts the request; there is no partial
// success. Temp files are removed on every exit path.
func (s *TaxService) ProcessTaxDocuments(ctx context.Context, req *dto.TaxFilingRequest) (*dto.TaxFilingResponse, error) {
	var tempPaths []string
	defer func() {
		for _, path := range tempPaths {
			if err := os.Remove(path); err == nil {
				log.Printf("Cleaned up temporary file: %s", path)
			}
		}
	}()

	var totals dto.TaxTotals
	var summaries []dto.ExtractionResult

	for _, fileHeader := range req.Files {
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
			log.Printf("Skipping non-PDF file: %s", fileHeader.Filename)
			continue
		}

		tempPath, err := s.saveTempFile(fileHeader)
		if err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", fileHeader.Filename, err)
		}
		tempPaths = append(tempPaths, tempPath)

		pages, err := s.renderer.RenderPages(tempPath)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", fileHeader.Filename, err)
		}

		for _, page := range pages {
			log.Printf("--- Processing page %d of %s ---", page.Number, fileHeader.Filename)

			if !utils.IsFormPage(page.Text) {
				log.Printf("Page %d of %s does not look like a tax form, skipping", page.Number, fileHeader.Filename)
				continue
			}

			formType := utils.ClassifyForm(page.Text)
			if formType == dto.FormTypeUnknown {
				log.Printf("Page %d of %s matched no known form type, skipping", page.Number, fileHeader.Filename)
				continue
			}
			log.Printf("Page %d of %s classified as %s", page.Number, fileHeader.Filename, formType)

			if len(page.Image) == 0 {
				return nil, fmt.Errorf("page %d of %s classified as %s but has no raster image", page.Number, fileHeader.Filename, formType)
			}

			fields, err := s.extractor.Extract(ctx, page.Image, formType)
			if err != nil {
				return nil, fmt.Errorf("extraction failed on page %d of %s: %w", page.Number, fileHeader.Filename, err)
			}

			result := dto.ExtractionResult{FormType: formType, Fields: fields}
			summaries = append(summaries, result)
			accumulate(&totals, result)
		}
	}

	status, recognized := utils.NormalizeFilingStatus(req.FilingStatus)
	if !recognized {
		log.Printf("Warning: invalid filing status %q, defaulting to %s", req.FilingStatus, status)
	}

	taxSummary := utils.CalculateTax(totals.GrossIncome, totals.FederalWithheld, status)

	reference, err := s.generator.GenerateForm1040(taxSummary, status, req.NumDependents)
	if err != nil {
		return nil, fmt.Errorf("failed to generate draft Form 1040: %w", err)
	}
	log.Printf("Generated draft Form 1040: %s", reference)

	return &dto.TaxFilingResponse{
		Message:               "Tax documents processed successfully",
		ProcessedFilesSummary: summaries,
		TaxSummary:            taxSummary,
		Form1040DownloadLink:  "/download-summary/" + reference,
		ProcessedAt:           time.Now().Format(time.RFC3339),
	}, nil
}

// SummaryPath resolves a download reference to a file under the upload
// dir, rejecting path traversal and unknown references.
func (s *TaxService) SummaryPath(reference string) (string, error) {
	if reference != filepath.Base(reference) || !strings.HasSuffix(reference, ".pdf") {
		return "", dto.ErrSummaryNotFound
	}
	path := filepath.Join(s.uploadDir, reference)
	if _, err := os.Stat(path); err != nil {
		return "", dto.ErrSummaryNotFound
	}
	return path, nil
}

// accumulate folds one page's extraction into the running totals.
// Absent fields count as zero. Order is irrelevant, only the final
// sums matter.
func accumulate(totals *dto.TaxTotals, result dto.ExtractionResult) {
	switch result.FormType {
	case dto.FormTypeW2:
		totals.GrossIncome += result.Fields["wages_tips_other_comp"]
		totals.FederalWithheld += result.Fields["federal_income_tax_withheld"]
	case dto.FormType1099NEC:
		totals.GrossIncome += result.Fields["nonemployee_compensation"]
	case dto.FormType1099INT:
		totals.GrossIncome += result.Fields["interest_income"]
	}
}

// saveTempFile copies an uploaded file into the upload dir.
func (s *TaxService) saveTempFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst, err := os.CreateTemp(s.uploadDir, "upload-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	log.Printf("Temporarily saved %s as %s", fileHeader.Filename, dst.Name())
	return dst.Name(), nil
}
