package service

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
)

// FormGenerator renders the draft Form 1040 summary PDF into the
// upload dir and returns the reference used by the download endpoint.
type FormGenerator struct {
	outputDir string
}

func NewFormGenerator(outputDir string) *FormGenerator {
	return &FormGenerator{
		outputDir: outputDir,
	}
}

// GenerateForm1040 writes a simplified draft of Form 1040 for one
// computed summary. The reference is unique per request so concurrent
// uploads never clobber each other's documents.
func (g *FormGenerator) GenerateForm1040(summary dto.TaxSummary, filingStatus string, numDependents int) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	reference := fmt.Sprintf("form1040-%s.pdf", uuid.NewString())
	outputPath := filepath.Join(g.outputDir, reference)

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 28, "Form 1040 - U.S. Individual Income Tax Return", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(200, 0, 0)
	doc.CellFormat(0, 20, "DRAFT - FOR REVIEW ONLY, NOT FOR FILING", "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 18, fmt.Sprintf("Filing Status: %s", filingStatus), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 18, fmt.Sprintf("Number of Dependents: %d", numDependents), "", 1, "L", false, 0, "")
	doc.Ln(8)

	doc.SetDrawColor(0, 0, 0)
	doc.Line(54, doc.GetY(), 558, doc.GetY())
	doc.Ln(10)

	lines := []struct {
		label  string
		amount float64
	}{
		{"Total Income (Line 9)", summary.GrossIncome},
		{"Standard Deduction (Line 12)", summary.StandardDeductionApplied},
		{"Taxable Income (Line 15)", summary.TaxableIncome},
		{"Tax (Line 16)", summary.CalculatedTax},
		{"Federal Income Tax Withheld (Line 25)", summary.TotalFederalWithheld},
	}
	for _, line := range lines {
		doc.CellFormat(340, 18, line.label, "", 0, "L", false, 0, "")
		doc.CellFormat(0, 18, fmt.Sprintf("$%.2f", line.amount), "", 1, "R", false, 0, "")
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "B", 12)
	if summary.TaxDueOrRefund < 0 {
		doc.CellFormat(340, 20, "Refund (Line 34)", "", 0, "L", false, 0, "")
		doc.CellFormat(0, 20, fmt.Sprintf("$%.2f", math.Abs(summary.TaxDueOrRefund)), "", 1, "R", false, 0, "")
	} else {
		doc.CellFormat(340, 20, "Amount You Owe (Line 37)", "", 0, "L", false, 0, "")
		doc.CellFormat(0, 20, fmt.Sprintf("$%.2f", summary.TaxDueOrRefund), "", 1, "R", false, 0, "")
	}

	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}

	return reference, nil
}
