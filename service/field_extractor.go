package service

import (
	"context"
	"fmt"
	"log"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/client"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
	"github.com/BrannonKLuong/ai-tax-agent-prototype/utils"
)

// FieldExtractor asks the document-QA model one question per expected
// field of a classified form and gates each answer on its confidence
// score.
type FieldExtractor struct {
	qaClient  client.DocQAClient
	threshold float64
}

func NewFieldExtractor(qaClient client.DocQAClient, threshold float64) *FieldExtractor {
	return &FieldExtractor{
		qaClient:  qaClient,
		threshold: threshold,
	}
}

// Extract runs every catalog question for formType against the page
// image. Fields whose best candidate scores below the threshold, or
// for which the model returns no candidate, are omitted from the
// result. A transport or model error aborts the whole page; partial
// per-page results are never returned alongside an error.
func (e *FieldExtractor) Extract(ctx context.Context, pageImage []byte, formType dto.FormType) (map[string]float64, error) {
	spec, ok := dto.FormCatalog[formType]
	if !ok {
		return nil, fmt.Errorf("no question set for form type %q", formType)
	}

	fields := make(map[string]float64)

	for _, fq := range spec.Questions {
		log.Printf("Asking model: %q", fq.Question)

		candidates, err := e.qaClient.Ask(ctx, pageImage, fq.Question)
		if err != nil {
			return nil, fmt.Errorf("question %q failed: %w", fq.Question, err)
		}

		if len(candidates) == 0 {
			log.Printf("No candidates for field %q, skipping", fq.Field)
			continue
		}

		best := bestCandidate(candidates)
		if best.Score < e.threshold {
			log.Printf("Rejected field %q: score %.3f below threshold %.3f (answer %q)",
				fq.Field, best.Score, e.threshold, best.Answer)
			continue
		}

		value := utils.CleanAmount(best.Answer)
		fields[fq.Field] = value
		log.Printf("Accepted field %q: answer %q (score %.3f) -> %.2f", fq.Field, best.Answer, best.Score, value)
	}

	return fields, nil
}

// bestCandidate picks the highest-scoring candidate; ties keep the
// first one the model returned.
func bestCandidate(candidates []dto.CandidateAnswer) dto.CandidateAnswer {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}
