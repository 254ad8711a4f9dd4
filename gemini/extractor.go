// Package gemini implements the fallback extraction backend on the Gemini
// API using the official SDK.
package gemini

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"tablevoice/extract"
)

// Extractor asks a Gemini model for structured booking proposals.
type Extractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewExtractor creates and connects the Gemini client.
func NewExtractor(ctx context.Context, apiKey, model string, timeout time.Duration) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Extractor{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Extract implements extract.Extractor. Failures and unparseable responses
// degrade to zero proposals — the turn proceeds either way.
func (e *Extractor) Extract(ctx context.Context, utterance string) (extract.Proposals, bool) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(extract.PromptFor(utterance)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		log.Printf("⚠️ Gemini extraction failed: %v", err)
		return extract.Proposals{}, false
	}

	return extract.Parse(resp.Text())
}
