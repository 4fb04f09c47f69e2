package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	historyKeyPattern = "newsroom:session:%s:history"

	// historyCap bounds how many records a session keeps.
	historyCap = 20

	// historyTTL expires idle sessions.
	historyTTL = 24 * time.Hour
)

// RedisHistoryStore implements HistoryStore using a Redis list per
// session, newest record first.
type RedisHistoryStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ HistoryStore = (*RedisHistoryStore)(nil)

// NewRedisHistoryStore creates a Redis-backed history store.
func NewRedisHistoryStore(redisURL string, logger *slog.Logger) *RedisHistoryStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisHistoryStore{
		client: rdb,
		logger: logger,
	}
}

func historyKey(sessionID uuid.UUID) string {
	return fmt.Sprintf(historyKeyPattern, sessionID)
}

func (r *RedisHistoryStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisHistoryStore) SaveRecord(ctx context.Context, sessionID uuid.UUID, rec *HistoryRecord) error {
	rec.SessionID = sessionID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	key := historyKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, historyCap-1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to save history record", "session_id", sessionID, "error", err)
		return fmt.Errorf("redis pipeline failed: %w", err)
	}

	r.logger.Debug("History record saved", "session_id", sessionID, "title", rec.Title)
	return nil
}

func (r *RedisHistoryStore) LatestRecord(ctx context.Context, sessionID uuid.UUID) (*HistoryRecord, error) {
	data, err := r.client.LIndex(ctx, historyKey(sessionID), 0).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis lindex failed: %w", err)
	}

	var rec HistoryRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history record: %w", err)
	}
	return &rec, nil
}

func (r *RedisHistoryStore) ListRecords(ctx context.Context, sessionID uuid.UUID, limit int) ([]HistoryRecord, error) {
	if limit <= 0 || limit > historyCap {
		limit = historyCap
	}

	items, err := r.client.LRange(ctx, historyKey(sessionID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange failed: %w", err)
	}

	records := make([]HistoryRecord, 0, len(items))
	for _, item := range items {
		var rec HistoryRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			r.logger.Warn("Skipping malformed history record", "session_id", sessionID, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *RedisHistoryStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}
