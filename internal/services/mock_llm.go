package services

import (
	"context"
	"sync"
)

// MockGenerationService is a mock implementation of GenerationService
// for testing.
type MockGenerationService struct {
	GenerateStructuredFunc func(ctx context.Context, req GenerationRequest) (string, error)

	// Track calls for testing
	GenerateStructuredCalls []GenerationRequest

	mu sync.Mutex // protects all fields above
}

// NewMockGenerationService creates a new mock generation service.
func NewMockGenerationService() *MockGenerationService {
	return &MockGenerationService{
		GenerateStructuredCalls: make([]GenerationRequest, 0),
	}
}

// GenerateStructured mocks a structured generation request.
func (m *MockGenerationService) GenerateStructured(ctx context.Context, req GenerationRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateStructuredCalls = append(m.GenerateStructuredCalls, req)

	if m.GenerateStructuredFunc != nil {
		return m.GenerateStructuredFunc(ctx, req)
	}

	return "{}", nil
}

// SetResponse sets up the mock to return a fixed payload.
func (m *MockGenerationService) SetResponse(payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateStructuredFunc = func(ctx context.Context, req GenerationRequest) (string, error) {
		return payload, nil
	}
}

// SetError sets up the mock to return an error.
func (m *MockGenerationService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateStructuredFunc = func(ctx context.Context, req GenerationRequest) (string, error) {
		return "", err
	}
}

// Reset clears call tracking and configured behavior.
func (m *MockGenerationService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateStructuredFunc = nil
	m.GenerateStructuredCalls = make([]GenerationRequest, 0)
}

// Calls returns a copy of the recorded requests.
func (m *MockGenerationService) Calls() []GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]GenerationRequest, len(m.GenerateStructuredCalls))
	copy(calls, m.GenerateStructuredCalls)
	return calls
}
