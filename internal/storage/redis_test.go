package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
)

func setupTestStore(t *testing.T) *RedisHistoryStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	store := NewRedisHistoryStore(mr.Addr(), logger)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisHistoryStore_Ping(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestRedisHistoryStore_SaveAndLatest(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	sessionID := uuid.New()

	latest, err := store.LatestRecord(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, latest, "empty session must yield nil, not an error")

	first := &HistoryRecord{Title: "첫 번째 기사", Category: article.CategoryPolitics, ViralityScore: 40}
	require.NoError(t, store.SaveRecord(ctx, sessionID, first))

	second := &HistoryRecord{Title: "두 번째 기사", Category: article.CategoryEconomy, ViralityScore: 75}
	require.NoError(t, store.SaveRecord(ctx, sessionID, second))

	latest, err = store.LatestRecord(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "두 번째 기사", latest.Title)
	assert.Equal(t, sessionID, latest.SessionID)
	assert.False(t, latest.CreatedAt.IsZero())
}

func TestRedisHistoryStore_ListRecords(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	sessionID := uuid.New()

	for i := 0; i < 5; i++ {
		rec := &HistoryRecord{Title: fmt.Sprintf("기사 %d", i), Category: article.CategorySociety}
		require.NoError(t, store.SaveRecord(ctx, sessionID, rec))
	}

	records, err := store.ListRecords(ctx, sessionID, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "기사 4", records[0].Title, "newest first")
	assert.Equal(t, "기사 2", records[2].Title)

	all, err := store.ListRecords(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRedisHistoryStore_CapsHistory(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	sessionID := uuid.New()

	for i := 0; i < historyCap+5; i++ {
		rec := &HistoryRecord{Title: fmt.Sprintf("기사 %d", i)}
		require.NoError(t, store.SaveRecord(ctx, sessionID, rec))
	}

	records, err := store.ListRecords(ctx, sessionID, historyCap)
	require.NoError(t, err)
	assert.Len(t, records, historyCap)
	assert.Equal(t, fmt.Sprintf("기사 %d", historyCap+4), records[0].Title)
}

func TestRedisHistoryStore_SessionsIsolated(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, store.SaveRecord(ctx, a, &HistoryRecord{Title: "A의 기사"}))

	latest, err := store.LatestRecord(ctx, b)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestHistoryRecord_ContextSummary(t *testing.T) {
	rec := &HistoryRecord{Title: "대형 사고", Category: article.CategorySociety, ViralityScore: 87}
	assert.Equal(t, `"대형 사고" (분류 SOCIETY, 화제성 87점)`, rec.ContextSummary())

	rec.Summary = "미리 계산된 요약"
	assert.Equal(t, "미리 계산된 요약", rec.ContextSummary())
}
