package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func immediatePolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
		Sleep:        func(ctx context.Context, d time.Duration) error { return nil },
	}
}

func geminiSuccessBody(text string) string {
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func newTestGemini(serverURL string) *GeminiService {
	g := NewGeminiService("test-key", "test-model", testLogger())
	g.SetBaseURL(serverURL)
	g.SetRetryPolicy(immediatePolicy())
	return g
}

func TestGeminiService_GenerateStructured(t *testing.T) {
	var gotRequest geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiSuccessBody(`{"title":"t"}`)))
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	schema := map[string]interface{}{"type": "object"}
	payload, err := g.GenerateStructured(context.Background(), GenerationRequest{
		Prompt: "기사 생성",
		Schema: schema,
	})

	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if payload != `{"title":"t"}` {
		t.Errorf("Expected payload passthrough, got %q", payload)
	}
	if gotRequest.GenerationConfig == nil {
		t.Fatal("Expected generation config in request")
	}
	if gotRequest.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Errorf("Expected JSON response MIME type, got %q", gotRequest.GenerationConfig.ResponseMIMEType)
	}
	if gotRequest.GenerationConfig.ResponseSchema == nil {
		t.Error("Expected response schema in request")
	}
	if len(gotRequest.Contents) != 1 || gotRequest.Contents[0].Parts[0].Text != "기사 생성" {
		t.Errorf("Expected prompt in request contents, got %+v", gotRequest.Contents)
	}
}

func TestGeminiService_RetriesOn429(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
			return
		}
		_, _ = w.Write([]byte(geminiSuccessBody("ok")))
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	payload, err := g.GenerateStructured(context.Background(), GenerationRequest{Prompt: "p"})

	if err != nil {
		t.Fatalf("Expected success after retries, got error: %v", err)
	}
	if payload != "ok" {
		t.Errorf("Expected 'ok', got %q", payload)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 requests, got %d", got)
	}
}

func TestGeminiService_NonRateLimitErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid schema","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	_, err := g.GenerateStructured(context.Background(), GenerationRequest{Prompt: "p"})

	if err == nil {
		t.Fatal("Expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Status != "INVALID_ARGUMENT" {
		t.Errorf("Expected mapped error fields, got %+v", apiErr)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected a single request, got %d", got)
	}
}

func TestGeminiService_EmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	_, err := g.GenerateStructured(context.Background(), GenerationRequest{Prompt: "p"})

	if err != ErrEmptyPayload {
		t.Errorf("Expected ErrEmptyPayload, got %v", err)
	}
}

func TestGeminiService_ModelOverride(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(geminiSuccessBody("ok")))
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	_, err := g.GenerateStructured(context.Background(), GenerationRequest{Model: "other-model", Prompt: "p"})
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if path != "/models/other-model:generateContent" {
		t.Errorf("Expected model override in path, got %q", path)
	}
}
