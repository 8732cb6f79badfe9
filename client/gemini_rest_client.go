package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"twscreener/middleware"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type restTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type restGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *genai.Schema `json:"responseSchema,omitempty"`
}

type restGenerateRequest struct {
	Contents         []restContent         `json:"contents"`
	Tools            []restTool            `json:"tools,omitempty"`
	GenerationConfig *restGenerationConfig `json:"generationConfig,omitempty"`
}

type restCandidate struct {
	Content      restContent `json:"content"`
	FinishReason string      `json:"finishReason"`
}

type restGenerateResponse struct {
	Candidates []restCandidate `json:"candidates"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiRestClient calls the generateContent REST endpoint directly.
type GeminiRestClient struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGeminiRestClient(baseURL, apiKey, model string, timeout time.Duration) *GeminiRestClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Encoding", "gzip, br")

	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &GeminiRestClient{client: c, apiKey: apiKey, model: model}
}

func (g *GeminiRestClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := restGenerateRequest{
		Contents: []restContent{{Role: genai.RoleUser, Parts: []restPart{{Text: req.Prompt}}}},
	}
	if req.Search {
		body.Tools = []restTool{{GoogleSearch: &struct{}{}}}
	}
	if req.Schema != nil {
		body.GenerationConfig = &restGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(body).
		Post("/models/" + g.model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini rest call failed: %w", err)
	}

	var parsed restGenerateResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("gemini rest decode error (status %d): %w", resp.StatusCode(), err)
	}

	if !resp.IsSuccess() {
		if parsed.Error != nil {
			return "", fmt.Errorf("gemini api error (status %d): %s", resp.StatusCode(), parsed.Error.Message)
		}
		return "", fmt.Errorf("gemini api error: %d", resp.StatusCode())
	}

	if len(parsed.Candidates) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from Gemini API (finish reason %s)", parsed.Candidates[0].FinishReason)
	}

	log.Debug().Str("model", g.model).Int("length", sb.Len()).Msg("Gemini REST response received")
	return sb.String(), nil
}
