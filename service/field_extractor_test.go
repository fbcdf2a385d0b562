package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
	"github.com/stretchr/testify/assert"
)

// stubQAClient returns canned candidates per question.
type stubQAClient struct {
	answers map[string][]dto.CandidateAnswer
	err     error
}

func (s *stubQAClient) Ask(ctx context.Context, image []byte, question string) ([]dto.CandidateAnswer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.answers[question], nil
}

func (s *stubQAClient) Ping(ctx context.Context) error {
	return s.err
}

func TestExtractAcceptsConfidentAnswer(t *testing.T) {
	stub := &stubQAClient{
		answers: map[string][]dto.CandidateAnswer{
			"What is the interest income?": {{Answer: "$500", Score: 0.9}},
		},
	}
	extractor := NewFieldExtractor(stub, 0.1)

	fields, err := extractor.Extract(context.Background(), []byte("png"), dto.FormType1099INT)

	assert.NoError(t, err)
	assert.Equal(t, 500.0, fields["interest_income"])
}

func TestExtractRejectsLowConfidenceAnswer(t *testing.T) {
	stub := &stubQAClient{
		answers: map[string][]dto.CandidateAnswer{
			"What is the interest income?": {{Answer: "$500", Score: 0.05}},
		},
	}
	extractor := NewFieldExtractor(stub, 0.1)

	fields, err := extractor.Extract(context.Background(), []byte("png"), dto.FormType1099INT)

	assert.NoError(t, err)
	assert.NotContains(t, fields, "interest_income")
}

func TestExtractSkipsFieldWithNoCandidates(t *testing.T) {
	stub := &stubQAClient{answers: map[string][]dto.CandidateAnswer{}}
	extractor := NewFieldExtractor(stub, 0.1)

	fields, err := extractor.Extract(context.Background(), []byte("png"), dto.FormType1099INT)

	assert.NoError(t, err)
	assert.Empty(t, fields)
}

func TestExtractPicksBestCandidateFirstWinsTies(t *testing.T) {
	stub := &stubQAClient{
		answers: map[string][]dto.CandidateAnswer{
			"What is the interest income?": {
				{Answer: "$250", Score: 0.4},
				{Answer: "$999", Score: 0.4},
				{Answer: "$100", Score: 0.2},
			},
		},
	}
	extractor := NewFieldExtractor(stub, 0.1)

	fields, err := extractor.Extract(context.Background(), []byte("png"), dto.FormType1099INT)

	assert.NoError(t, err)
	assert.Equal(t, 250.0, fields["interest_income"])
}

func TestExtractPropagatesModelError(t *testing.T) {
	stub := &stubQAClient{err: errors.New("model crashed")}
	extractor := NewFieldExtractor(stub, 0.1)

	_, err := extractor.Extract(context.Background(), []byte("png"), dto.FormTypeW2)

	assert.Error(t, err)
}

func TestExtractRejectsUnknownFormType(t *testing.T) {
	extractor := NewFieldExtractor(&stubQAClient{}, 0.1)

	_, err := extractor.Extract(context.Background(), []byte("png"), dto.FormTypeUnknown)

	assert.Error(t, err)
}

func TestExtractW2AsksBothQuestions(t *testing.T) {
	stub := &stubQAClient{
		answers: map[string][]dto.CandidateAnswer{
			"What is the value for wages, tips, other compensation?": {{Answer: "60,000.00", Score: 0.8}},
			"What is the federal income tax withheld?":               {{Answer: "8,000.00", Score: 0.7}},
		},
	}
	extractor := NewFieldExtractor(stub, 0.1)

	fields, err := extractor.Extract(context.Background(), []byte("png"), dto.FormTypeW2)

	assert.NoError(t, err)
	assert.Equal(t, 60000.0, fields["wages_tips_other_comp"])
	assert.Equal(t, 8000.0, fields["federal_income_tax_withheld"])
}
