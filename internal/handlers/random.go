package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/newsroom-engine/internal/simulator"
	"github.com/jwebster45206/newsroom-engine/pkg/article"
)

// RandomArticleRequest carries the current article snapshot. Only the
// mode flags and time-machine settings are read.
type RandomArticleRequest struct {
	Article article.Article `json:"article"`
}

// RandomArticleHandler serves POST /v1/articles/random.
type RandomArticleHandler struct {
	sim    *simulator.Simulator
	logger *slog.Logger
}

func NewRandomArticleHandler(sim *simulator.Simulator, logger *slog.Logger) *RandomArticleHandler {
	return &RandomArticleHandler{
		sim:    sim,
		logger: logger,
	}
}

func (h *RandomArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var request RandomArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'article' field.")
		return
	}

	// The simulator guarantees a well-formed draft even when
	// generation fails, so this is always a 200.
	draft := h.sim.GenerateRandomArticle(r.Context(), &request.Article)
	writeJSON(w, h.logger, http.StatusOK, draft)
}
