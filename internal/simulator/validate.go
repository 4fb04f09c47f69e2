package simulator

import (
	"encoding/json"
	"fmt"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

// The schema is the primary shape contract, but the provider can
// technically deviate, so parsing fails closed: a missing required
// field rejects the whole payload rather than trusting it partially.

// placeholderReply fills in for comments the model returned without a
// reply, keeping the every-comment-has-a-reply invariant structural
// instead of prompt-only.
var placeholderReply = simulation.Reply{
	Username: "익명",
	Content:  "...",
	Likes:    0,
}

type rawDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// parseDraft validates a random-article payload. An unknown category
// is coerced to the default, never rejected.
func parseDraft(payload string) (*article.Draft, error) {
	var raw rawDraft
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse draft payload: %w", err)
	}
	if raw.Title == "" {
		return nil, fmt.Errorf("draft payload missing title")
	}
	if raw.Content == "" {
		return nil, fmt.Errorf("draft payload missing content")
	}

	return &article.Draft{
		Title:    raw.Title,
		Content:  raw.Content,
		Category: article.ParseCategory(raw.Category),
	}, nil
}

// requiredResultFields mirrors the required list of the analysis
// schema.
var requiredResultFields = []string{
	"virality_score", "reliability_score", "controversy_score",
	"sentiment", "editor_feedback", "social_impact",
	"expected_views", "expected_shares",
	"stock_analysis", "extra_indices",
	"other_media_coverage", "comments",
}

// parseResult validates an analysis payload. Top-level required fields
// are checked explicitly; nested data is taken verbatim apart from the
// reply repair and the profanity mask safety net.
func (s *Simulator) parseResult(payload string) (*simulation.Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse analysis payload: %w", err)
	}
	for _, name := range requiredResultFields {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("analysis payload missing required field %q", name)
		}
	}

	var result simulation.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis payload: %w", err)
	}

	if result.Comments == nil {
		result.Comments = []simulation.Comment{}
	}
	if result.OtherMediaCoverage == nil {
		result.OtherMediaCoverage = []simulation.MediaCoverage{}
	}

	for i := range result.Comments {
		c := &result.Comments[i]
		c.Content = s.filter.Mask(c.Content)
		if len(c.Replies) == 0 {
			c.Replies = []simulation.Reply{placeholderReply}
		}
		for j := range c.Replies {
			c.Replies[j].Content = s.filter.Mask(c.Replies[j].Content)
		}
	}

	return &result, nil
}

// parseReplies validates a reply-reaction payload. A null or empty
// array is a valid empty sequence, never nil.
func (s *Simulator) parseReplies(payload string) ([]simulation.Reply, error) {
	var replies []simulation.Reply
	if err := json.Unmarshal([]byte(payload), &replies); err != nil {
		return nil, fmt.Errorf("failed to parse reply payload: %w", err)
	}
	if replies == nil {
		replies = []simulation.Reply{}
	}
	for i := range replies {
		replies[i].Content = s.filter.Mask(replies[i].Content)
	}
	return replies, nil
}
