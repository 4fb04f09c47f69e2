package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/newsroom-engine/internal/services"
	"github.com/jwebster45206/newsroom-engine/internal/simulator"
	"github.com/jwebster45206/newsroom-engine/internal/storage"
	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func testSimulator(mock *services.MockGenerationService) *simulator.Simulator {
	return simulator.New(mock, "test-model", testLogger())
}

// analysisPayload is a minimal payload satisfying the analysis contract.
func analysisPayload(virality float64) string {
	return fmt.Sprintf(`{
		"virality_score": %f, "reliability_score": 50, "controversy_score": 50,
		"sentiment": "neutral", "editor_feedback": "f", "social_impact": "s",
		"expected_views": 1000, "expected_shares": 100,
		"stock_analysis": null, "extra_indices": null,
		"other_media_coverage": [], "comments": []
	}`, virality)
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		store := storage.NewMockHistoryStore()
		handler := NewHealthHandler(store, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "newsroom-engine", resp.Service)
		assert.Equal(t, "healthy", resp.Components["storage"])
	})

	t.Run("degraded when storage is down", func(t *testing.T) {
		store := storage.NewMockHistoryStore()
		store.PingFunc = func(ctx context.Context) error {
			return fmt.Errorf("connection refused")
		}
		handler := NewHealthHandler(store, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unhealthy", resp.Components["storage"])
	})
}

func TestRandomArticleHandler(t *testing.T) {
	mock := services.NewMockGenerationService()
	mock.SetResponse(`{"title":"속보","content":"내용","category":"SPORTS"}`)
	handler := NewRandomArticleHandler(testSimulator(mock), testLogger())

	t.Run("returns draft", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/articles/random", RandomArticleRequest{
			Article: article.Article{CrazyMode: true},
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var draft article.Draft
		require.NoError(t, json.NewDecoder(w.Body).Decode(&draft))
		assert.Equal(t, "속보", draft.Title)
		assert.Equal(t, article.CategorySports, draft.Category)
	})

	t.Run("generation failure still returns 200", func(t *testing.T) {
		failing := services.NewMockGenerationService()
		failing.SetError(services.ErrEmptyPayload)
		h := NewRandomArticleHandler(testSimulator(failing), testLogger())

		w := postJSON(t, h, "/v1/articles/random", RandomArticleRequest{})
		assert.Equal(t, http.StatusOK, w.Code)

		var draft article.Draft
		require.NoError(t, json.NewDecoder(w.Body).Decode(&draft))
		assert.Equal(t, simulation.FallbackArticleTitle, draft.Title)
	})

	t.Run("rejects GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/articles/random", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/articles/random", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSimulateHandler(t *testing.T) {
	newArticle := func() article.Article {
		return article.Article{
			Title:    "테스트 기사",
			Content:  "기사 본문",
			Category: article.CategorySociety,
		}
	}

	t.Run("happy path", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetResponse(analysisPayload(72))
		handler := NewSimulateHandler(testSimulator(mock), storage.NewMockHistoryStore(), testLogger())

		w := postJSON(t, handler, "/v1/simulate", SimulateRequest{Article: newArticle()})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp SimulateResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.NotNil(t, resp.Result)
		assert.Equal(t, 72.0, resp.Result.ViralityScore)
		assert.Nil(t, resp.SessionID)
	})

	t.Run("records session history", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetResponse(analysisPayload(64))
		store := storage.NewMockHistoryStore()
		handler := NewSimulateHandler(testSimulator(mock), store, testLogger())
		sessionID := uuid.New()

		w := postJSON(t, handler, "/v1/simulate", SimulateRequest{
			SessionID: &sessionID,
			Article:   newArticle(),
		})
		assert.Equal(t, http.StatusOK, w.Code)

		rec, err := store.LatestRecord(context.Background(), sessionID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "테스트 기사", rec.Title)
		assert.Equal(t, 64.0, rec.ViralityScore)
	})

	t.Run("backfills continuity from history", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetResponse(analysisPayload(50))
		store := storage.NewMockHistoryStore()
		handler := NewSimulateHandler(testSimulator(mock), store, testLogger())
		sessionID := uuid.New()

		prev := &storage.HistoryRecord{
			Title:         "이전 기사",
			Category:      article.CategoryEconomy,
			ViralityScore: 90,
		}
		require.NoError(t, store.SaveRecord(context.Background(), sessionID, prev))

		w := postJSON(t, handler, "/v1/simulate", SimulateRequest{
			SessionID: &sessionID,
			Article:   newArticle(),
		})
		assert.Equal(t, http.StatusOK, w.Code)

		calls := mock.Calls()
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].Prompt, "이전 기사")
	})

	t.Run("explicit context wins over history", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetResponse(analysisPayload(50))
		store := storage.NewMockHistoryStore()
		handler := NewSimulateHandler(testSimulator(mock), store, testLogger())
		sessionID := uuid.New()

		require.NoError(t, store.SaveRecord(context.Background(), sessionID,
			&storage.HistoryRecord{Title: "저장된 기사"}))

		a := newArticle()
		a.PreviousContext = "직접 지정한 맥락"
		w := postJSON(t, handler, "/v1/simulate", SimulateRequest{SessionID: &sessionID, Article: a})
		assert.Equal(t, http.StatusOK, w.Code)

		calls := mock.Calls()
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].Prompt, "직접 지정한 맥락")
		assert.NotContains(t, calls[0].Prompt, "저장된 기사")
	})

	t.Run("rejects article without title", func(t *testing.T) {
		handler := NewSimulateHandler(testSimulator(services.NewMockGenerationService()),
			storage.NewMockHistoryStore(), testLogger())

		a := newArticle()
		a.Title = ""
		w := postJSON(t, handler, "/v1/simulate", SimulateRequest{Article: a})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generation failure still returns 200 with fallback", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetError(&services.APIError{StatusCode: 503, Message: "unavailable"})
		handler := NewSimulateHandler(testSimulator(mock), storage.NewMockHistoryStore(), testLogger())

		w := postJSON(t, handler, "/v1/simulate", SimulateRequest{Article: newArticle()})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp SimulateResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.NotNil(t, resp.Result)
		assert.Equal(t, simulation.FallbackFeedback, resp.Result.EditorFeedback)
	})
}

func TestReactionHandler(t *testing.T) {
	newRequest := func() ReactionRequest {
		return ReactionRequest{
			Article: article.Article{Title: "기사"},
			Comment: simulation.Comment{Platform: "유튜브", Username: "u", Content: "댓글"},
			Reply:   "기자의 답글",
		}
	}

	t.Run("returns replies", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetResponse(`[{"username":"u1","content":"응원합니다","likes":3}]`)
		handler := NewReactionHandler(testSimulator(mock), testLogger())

		w := postJSON(t, handler, "/v1/reactions", newRequest())
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ReactionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Replies, 1)
		assert.Equal(t, "u1", resp.Replies[0].Username)
	})

	t.Run("rejects empty reply", func(t *testing.T) {
		handler := NewReactionHandler(testSimulator(services.NewMockGenerationService()), testLogger())

		req := newRequest()
		req.Reply = ""
		w := postJSON(t, handler, "/v1/reactions", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure yields empty replies, not null", func(t *testing.T) {
		mock := services.NewMockGenerationService()
		mock.SetError(services.ErrEmptyPayload)
		handler := NewReactionHandler(testSimulator(mock), testLogger())

		w := postJSON(t, handler, "/v1/reactions", newRequest())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"replies":[]`)
	})
}
