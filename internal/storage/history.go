package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
)

// HistoryRecord is one analyzed article in a play session. The latest
// record's summary feeds the continuity context of the next analysis
// prompt.
type HistoryRecord struct {
	SessionID     uuid.UUID        `json:"session_id"`
	Title         string           `json:"title"`
	Category      article.Category `json:"category"`
	ViralityScore float64          `json:"virality_score"`
	Summary       string           `json:"summary,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ContextSummary renders the record as the one-line continuity string
// embedded in the analysis prompt.
func (r *HistoryRecord) ContextSummary() string {
	if r.Summary != "" {
		return r.Summary
	}
	return fmt.Sprintf("\"%s\" (분류 %s, 화제성 %.0f점)", r.Title, r.Category, r.ViralityScore)
}

// HistoryStore persists per-session article history.
type HistoryStore interface {
	// Ping tests the store connection
	Ping(ctx context.Context) error

	// SaveRecord appends a record to the session's history
	SaveRecord(ctx context.Context, sessionID uuid.UUID, rec *HistoryRecord) error

	// LatestRecord returns the most recent record, or nil when the
	// session has no history
	LatestRecord(ctx context.Context, sessionID uuid.UUID) (*HistoryRecord, error)

	// ListRecords returns up to limit records, newest first
	ListRecords(ctx context.Context, sessionID uuid.UUID, limit int) ([]HistoryRecord, error)

	// Close closes the store connection
	Close() error
}
