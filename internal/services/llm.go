package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// GenerationRequest is one structured-output generation call: a prompt,
// an optional system instruction, and the JSON schema the response
// must satisfy.
type GenerationRequest struct {
	Model       string
	Prompt      string
	System      string
	Schema      map[string]interface{}
	Temperature *float64
}

// GenerationService is the narrow contract the engine depends on.
// Given a prompt and a schema, the provider returns either a textual
// payload expected to satisfy the schema, or an error.
type GenerationService interface {
	// GenerateStructured performs one logical generation request.
	// Rate-limit retries happen inside the implementation; callers
	// only observe total latency.
	GenerateStructured(ctx context.Context, req GenerationRequest) (string, error)
}

// ErrEmptyPayload is returned when the provider reports success but
// carries no textual content.
var ErrEmptyPayload = errors.New("provider returned empty payload")

// APIError is a provider transport error. Status, Code and Message
// mirror the three places providers report rate limiting: a numeric
// HTTP status, a machine-readable code string, and free text.
type APIError struct {
	StatusCode int
	Status     string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// IsRateLimited reports whether err signals provider overload. The
// check spans the error-shape conventions seen across providers:
// an HTTP 429 status, a RESOURCE_EXHAUSTED/429 code field, or a
// recognizable substring in the message.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return true
		}
		if apiErr.Status == "RESOURCE_EXHAUSTED" || apiErr.Code == "RESOURCE_EXHAUSTED" || apiErr.Code == "429" {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota")
}
