package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
)

// DocQAClient is the narrow interface to the document question
// answering capability: one image, one question, scored candidates.
// It exists so tests can substitute a deterministic stub.
type DocQAClient interface {
	Ask(ctx context.Context, image []byte, question string) ([]dto.CandidateAnswer, error)
	Ping(ctx context.Context) error
}

// LayoutLMClient talks to a hosted LayoutLM document-QA service over
// HTTP. The model may still be downloading when this process starts,
// so availability is checked per request via Ping rather than once.
type LayoutLMClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewLayoutLMClient(baseURL string, timeout time.Duration) *LayoutLMClient {
	return &LayoutLMClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ask sends one question about one page image and returns the model's
// candidate answers, highest confidence first as the service orders them.
func (c *LayoutLMClient) Ask(ctx context.Context, image []byte, question string) ([]dto.CandidateAnswer, error) {
	payload := map[string]interface{}{
		"image":    base64.StdEncoding.EncodeToString(image),
		"question": question,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QA request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to build QA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call document QA service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("document QA service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Answers []dto.CandidateAnswer `json:"answers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode QA response: %w", err)
	}

	log.Printf("Document QA returned %d candidate(s) for question: %q", len(result.Answers), question)

	return result.Answers, nil
}

// Ping checks whether the model service is up and has its weights
// loaded. A non-200 or transport error means extraction requests must
// be answered with service-unavailable.
func (c *LayoutLMClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("document QA service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("document QA service unhealthy: status %d", resp.StatusCode)
	}

	return nil
}
