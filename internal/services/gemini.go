package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	DefaultGeminiTemperature = 1.0
)

// GeminiService implements GenerationService against the Gemini
// generateContent REST API, requesting JSON output constrained by the
// caller's schema.
type GeminiService struct {
	apiKey     string
	baseURL    string
	modelName  string
	httpClient *http.Client
	retry      RetryPolicy
	logger     *slog.Logger
}

var _ GenerationService = (*GeminiService)(nil)

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      *float64               `json:"temperature,omitempty"`
	ResponseMIMEType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// NewGeminiService creates a Gemini-backed generation service.
func NewGeminiService(apiKey string, modelName string, logger *slog.Logger) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		baseURL:   geminiBaseURL,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		retry:  DefaultRetryPolicy(),
		logger: logger,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (g *GeminiService) SetBaseURL(url string) {
	g.baseURL = url
}

// SetRetryPolicy overrides the default backoff budget.
func (g *GeminiService) SetRetryPolicy(policy RetryPolicy) {
	g.retry = policy
}

// GenerateStructured performs one logical generation request, retrying
// internally on rate-limit errors per the configured policy.
func (g *GeminiService) GenerateStructured(ctx context.Context, req GenerationRequest) (string, error) {
	return WithRetry(ctx, g.retry, func(ctx context.Context) (string, error) {
		return g.generateContent(ctx, req)
	})
}

func (g *GeminiService) generateContent(ctx context.Context, req GenerationRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.modelName
	}

	temperature := req.Temperature
	if temperature == nil {
		t := DefaultGeminiTemperature
		temperature = &t
	}

	geminiReq := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature: temperature,
		},
	}
	if req.System != "" {
		geminiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}
	if req.Schema != nil {
		geminiReq.GenerationConfig.ResponseMIMEType = "application/json"
		geminiReq.GenerationConfig.ResponseSchema = req.Schema
	}

	reqBody, err := json.Marshal(geminiReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &APIError{
				StatusCode: resp.StatusCode,
				Message:    string(body),
			}
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || geminiResp.Error != nil {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if geminiResp.Error != nil {
			apiErr.Code = fmt.Sprintf("%d", geminiResp.Error.Code)
			apiErr.Status = geminiResp.Error.Status
			apiErr.Message = geminiResp.Error.Message
		} else {
			apiErr.Message = string(body)
		}
		g.logger.Warn("Gemini request failed",
			"status", resp.StatusCode,
			"code", apiErr.Code,
			"model", model)
		return "", apiErr
	}

	var text string
	if len(geminiResp.Candidates) > 0 {
		for _, part := range geminiResp.Candidates[0].Content.Parts {
			text += part.Text
		}
	}
	if text == "" {
		return "", ErrEmptyPayload
	}

	return text, nil
}
