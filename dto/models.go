package dto

type FormType string

const (
	FormTypeW2      FormType = "W-2"
	FormType1099NEC FormType = "1099-NEC"
	FormType1099INT FormType = "1099-INT"
	FormTypeUnknown FormType = "unknown"
)

// FieldQuestion pairs an output field name with the question posed to
// the document-QA model for it.
type FieldQuestion struct {
	Field    string
	Question string
}

// FormSpec describes one supported form type: the keyword that
// identifies it in page text and the ordered questions asked for it.
type FormSpec struct {
	Keyword   string
	Questions []FieldQuestion
}

// FormCatalog is the single registry of supported form types. Adding a
// new form means adding one entry here and one in FormPriority.
var FormCatalog = map[FormType]FormSpec{
	FormTypeW2: {
		Keyword: "Wage and Tax Statement",
		Questions: []FieldQuestion{
			{Field: "wages_tips_other_comp", Question: "What is the value for wages, tips, other compensation?"},
			{Field: "federal_income_tax_withheld", Question: "What is the federal income tax withheld?"},
		},
	},
	FormType1099NEC: {
		Keyword: "Nonemployee compensation",
		Questions: []FieldQuestion{
			{Field: "nonemployee_compensation", Question: "What is the nonemployee compensation amount?"},
		},
	},
	FormType1099INT: {
		Keyword: "Interest income",
		Questions: []FieldQuestion{
			{Field: "interest_income", Question: "What is the interest income?"},
		},
	},
}

// FormPriority fixes the order keywords are tried during classification.
var FormPriority = []FormType{FormTypeW2, FormType1099NEC, FormType1099INT}

// Page is one rendered page of an uploaded PDF: its plain text plus a
// raster image for the QA model. Image may be empty for vector pages
// that embed no scan.
type Page struct {
	Number int
	Text   string
	Image  []byte
}

// CandidateAnswer is one scored answer returned by the document-QA
// model for a single question.
type CandidateAnswer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// ExtractionResult holds the extracted fields for one qualifying page.
// Fields only contains entries whose answer passed the confidence
// threshold; a missing field counts as zero downstream.
type ExtractionResult struct {
	FormType FormType           `json:"form_type"`
	Fields   map[string]float64 `json:"fields"`
}

// TaxTotals accumulates income and withholding across all pages of one
// request. It is owned by a single request flow and never shared.
type TaxTotals struct {
	GrossIncome     float64 `json:"gross_income"`
	FederalWithheld float64 `json:"federal_withheld"`
}

// TaxSummary is the computed liability for one request. A negative
// TaxDueOrRefund means a refund.
type TaxSummary struct {
	GrossIncome              float64 `json:"gross_income"`
	StandardDeductionApplied float64 `json:"standard_deduction_applied"`
	TaxableIncome            float64 `json:"taxable_income"`
	CalculatedTax            float64 `json:"calculated_tax"`
	TotalFederalWithheld     float64 `json:"total_federal_withheld"`
	TaxDueOrRefund           float64 `json:"tax_due_or_refund"`
}
