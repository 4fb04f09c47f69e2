package simulator

import (
	"context"
	"log/slog"
	"time"

	"github.com/jwebster45206/newsroom-engine/internal/services"
	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/prompts"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
	"github.com/jwebster45206/newsroom-engine/pkg/textfilter"
)

// Simulator runs the three generation flows of the game: random
// article drafting, full reaction analysis, and reply reactions. Each
// call is single-shot: build prompt and schema, request, validate, and
// on any failure return a fixed degraded result instead of an error.
// Calls share no mutable state and are safe to run concurrently.
type Simulator struct {
	llm       services.GenerationService
	filter    *textfilter.MaskFilter
	logger    *slog.Logger
	modelName string
	now       func() time.Time
}

// New creates a simulator backed by the given generation service.
func New(llm services.GenerationService, modelName string, logger *slog.Logger) *Simulator {
	return &Simulator{
		llm:       llm,
		filter:    textfilter.NewMaskFilter(prompts.MaskMarker),
		logger:    logger,
		modelName: modelName,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Used by era-band tests.
func (s *Simulator) SetClock(now func() time.Time) {
	s.now = now
}

// GenerateRandomArticle asks the model for a fresh article draft using
// the snapshot's mode flags for tone. Never returns an error: on any
// failure the caller gets the fixed placeholder draft.
func (s *Simulator) GenerateRandomArticle(ctx context.Context, a *article.Article) *article.Draft {
	prompt, schema := prompts.BuildRandomArticle(a, s.now())

	payload, err := s.llm.GenerateStructured(ctx, services.GenerationRequest{
		Model:  s.modelName,
		Prompt: prompt,
		Schema: schema,
	})
	if err != nil {
		s.logger.Error("Random article generation failed", "error", err)
		return simulation.FallbackDraft()
	}

	draft, err := parseDraft(payload)
	if err != nil {
		s.logger.Error("Random article payload invalid", "error", err)
		return simulation.FallbackDraft()
	}
	return draft
}

// AnalyzeArticle simulates the full public reaction to the article.
// Never returns an error: on any failure the caller gets the degraded
// fallback result with fixed error text and empty collections.
func (s *Simulator) AnalyzeArticle(ctx context.Context, a *article.Article) *simulation.Result {
	prompt, schema := prompts.BuildAnalysis(a, s.now())

	payload, err := s.llm.GenerateStructured(ctx, services.GenerationRequest{
		Model:  s.modelName,
		Prompt: prompt,
		Schema: schema,
	})
	if err != nil {
		s.logger.Error("Article analysis failed", "error", err, "title", a.Title)
		return simulation.FallbackResult()
	}

	result, err := s.parseResult(payload)
	if err != nil {
		s.logger.Error("Analysis payload invalid", "error", err, "title", a.Title)
		return simulation.FallbackResult()
	}
	return result
}

// GenerateReplyReaction simulates 1-2 reactions to the reporter's own
// reply under a comment. Never returns an error; failures yield an
// empty slice.
func (s *Simulator) GenerateReplyReaction(ctx context.Context, a *article.Article, c *simulation.Comment, replyText string) []simulation.Reply {
	prompt, schema := prompts.BuildReplyReaction(a, c, replyText, s.now())

	payload, err := s.llm.GenerateStructured(ctx, services.GenerationRequest{
		Model:  s.modelName,
		Prompt: prompt,
		Schema: schema,
	})
	if err != nil {
		s.logger.Error("Reply reaction generation failed", "error", err)
		return []simulation.Reply{}
	}

	replies, err := s.parseReplies(payload)
	if err != nil {
		s.logger.Error("Reply reaction payload invalid", "error", err)
		return []simulation.Reply{}
	}
	return replies
}
