package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/newsroom-engine/internal/simulator"
	"github.com/jwebster45206/newsroom-engine/internal/storage"
	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

// SimulateRequest asks for the full reaction simulation of an article.
// SessionID is optional; when set, the engine backfills continuity
// context from the session's history and records this article after
// analysis.
type SimulateRequest struct {
	SessionID *uuid.UUID      `json:"session_id,omitempty"`
	Article   article.Article `json:"article"`
}

// SimulateResponse wraps the result with the session it was recorded
// under.
type SimulateResponse struct {
	SessionID *uuid.UUID         `json:"session_id,omitempty"`
	Result    *simulation.Result `json:"result"`
}

// SimulateHandler serves POST /v1/simulate.
type SimulateHandler struct {
	sim    *simulator.Simulator
	store  storage.HistoryStore
	logger *slog.Logger
}

func NewSimulateHandler(sim *simulator.Simulator, store storage.HistoryStore, logger *slog.Logger) *SimulateHandler {
	return &SimulateHandler{
		sim:    sim,
		store:  store,
		logger: logger,
	}
}

func (h *SimulateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var request SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'article' field.")
		return
	}

	if err := request.Article.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	// Work on a copy: the caller's snapshot stays untouched.
	a := request.Article

	if request.SessionID != nil && a.PreviousContext == "" {
		prev, err := h.store.LatestRecord(r.Context(), *request.SessionID)
		if err != nil {
			h.logger.Warn("Failed to load session history", "session_id", request.SessionID, "error", err)
		} else if prev != nil {
			a.PreviousContext = prev.ContextSummary()
		}
	}

	// The simulator guarantees a well-formed result even when
	// generation fails, so this is always a 200.
	result := h.sim.AnalyzeArticle(r.Context(), &a)

	if request.SessionID != nil {
		rec := &storage.HistoryRecord{
			Title:         a.Title,
			Category:      a.Category,
			ViralityScore: result.ViralityScore,
		}
		if err := h.store.SaveRecord(r.Context(), *request.SessionID, rec); err != nil {
			h.logger.Warn("Failed to record session history", "session_id", request.SessionID, "error", err)
		}
	}

	writeJSON(w, h.logger, http.StatusOK, SimulateResponse{
		SessionID: request.SessionID,
		Result:    result,
	})
}
