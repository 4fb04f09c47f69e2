package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/newsroom-engine/internal/simulator"
	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

// ReactionRequest asks for reactions to the reporter's reply under an
// existing comment.
type ReactionRequest struct {
	Article article.Article    `json:"article"`
	Comment simulation.Comment `json:"comment"`
	Reply   string             `json:"reply"`
}

// ReactionResponse carries the generated reactions; Replies is always
// present, possibly empty.
type ReactionResponse struct {
	Replies []simulation.Reply `json:"replies"`
}

// ReactionHandler serves POST /v1/reactions.
type ReactionHandler struct {
	sim    *simulator.Simulator
	logger *slog.Logger
}

func NewReactionHandler(sim *simulator.Simulator, logger *slog.Logger) *ReactionHandler {
	return &ReactionHandler{
		sim:    sim,
		logger: logger,
	}
}

func (h *ReactionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var request ReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'article', 'comment' and 'reply' fields.")
		return
	}

	if request.Reply == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Reply cannot be empty.")
		return
	}

	replies := h.sim.GenerateReplyReaction(r.Context(), &request.Article, &request.Comment, request.Reply)
	writeJSON(w, h.logger, http.StatusOK, ReactionResponse{Replies: replies})
}
