package client

import (
	"context"

	"google.golang.org/genai"
)

// GenerateRequest is one prompt sent to the remote model. Schema is declared
// as the expected response shape and Search enables web search grounding.
type GenerateRequest struct {
	Prompt string
	Schema *genai.Schema
	Search bool
}

// ModelClient returns the raw text of the model's answer. The text is
// untrusted and may wrap the JSON payload in prose or fences.
type ModelClient interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
