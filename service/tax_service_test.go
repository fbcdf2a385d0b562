package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate(t *testing.T) {
	var totals dto.TaxTotals

	accumulate(&totals, dto.ExtractionResult{
		FormType: dto.FormTypeW2,
		Fields: map[string]float64{
			"wages_tips_other_comp":       60000,
			"federal_income_tax_withheld": 8000,
		},
	})
	accumulate(&totals, dto.ExtractionResult{
		FormType: dto.FormType1099INT,
		Fields:   map[string]float64{"interest_income": 500},
	})

	assert.Equal(t, 60500.0, totals.GrossIncome)
	assert.Equal(t, 8000.0, totals.FederalWithheld)
}

func TestAccumulateMissingFieldsCountAsZero(t *testing.T) {
	var totals dto.TaxTotals

	// Withholding answer was rejected below threshold, so only wages
	// are present.
	accumulate(&totals, dto.ExtractionResult{
		FormType: dto.FormTypeW2,
		Fields:   map[string]float64{"wages_tips_other_comp": 42000},
	})
	accumulate(&totals, dto.ExtractionResult{
		FormType: dto.FormType1099NEC,
		Fields:   map[string]float64{"nonemployee_compensation": 3000},
	})

	assert.Equal(t, 45000.0, totals.GrossIncome)
	assert.Equal(t, 0.0, totals.FederalWithheld)
}

// buildUpload fabricates multipart file headers the way gin hands them
// to the service.
func buildUpload(t *testing.T, filename, content string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("files", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func TestProcessTaxDocumentsSkipsNonPDFAndRecoversBadStatus(t *testing.T) {
	dir := t.TempDir()
	svc := NewTaxService(
		&stubQAClient{},
		nil, // renderer never reached, the only file is skipped
		NewFieldExtractor(&stubQAClient{}, 0.1),
		NewFormGenerator(dir),
		dir,
	)

	req := &dto.TaxFilingRequest{
		Files:         buildUpload(t, "notes.txt", "not a pdf"),
		FilingStatus:  "Foo",
		NumDependents: 0,
	}

	response, err := svc.ProcessTaxDocuments(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, response.ProcessedFilesSummary)
	// Unrecognized status falls back to Single, not an error.
	assert.Equal(t, 14600.0, response.TaxSummary.StandardDeductionApplied)
	assert.Equal(t, 0.0, response.TaxSummary.TaxableIncome)
	assert.Contains(t, response.Form1040DownloadLink, "/download-summary/form1040-")

	// The generated document must be resolvable by reference.
	reference := response.Form1040DownloadLink[len("/download-summary/"):]
	path, err := svc.SummaryPath(reference)
	assert.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestSummaryPathRejectsTraversalAndUnknown(t *testing.T) {
	svc := NewTaxService(&stubQAClient{}, nil, nil, nil, t.TempDir())

	_, err := svc.SummaryPath("../../etc/passwd")
	assert.ErrorIs(t, err, dto.ErrSummaryNotFound)

	_, err = svc.SummaryPath("form1040-missing.pdf")
	assert.ErrorIs(t, err, dto.ErrSummaryNotFound)
}
