package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockHistoryStore is an in-memory HistoryStore for testing.
type MockHistoryStore struct {
	PingFunc func(ctx context.Context) error

	records map[uuid.UUID][]HistoryRecord
	mu      sync.Mutex
}

var _ HistoryStore = (*MockHistoryStore)(nil)

// NewMockHistoryStore creates an empty in-memory store.
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{
		records: make(map[uuid.UUID][]HistoryRecord),
	}
}

func (m *MockHistoryStore) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockHistoryStore) SaveRecord(ctx context.Context, sessionID uuid.UUID, rec *HistoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.SessionID = sessionID
	// newest first, as the Redis implementation stores them
	m.records[sessionID] = append([]HistoryRecord{*rec}, m.records[sessionID]...)
	return nil
}

func (m *MockHistoryStore) LatestRecord(ctx context.Context, sessionID uuid.UUID) (*HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.records[sessionID]
	if len(recs) == 0 {
		return nil, nil
	}
	rec := recs[0]
	return &rec, nil
}

func (m *MockHistoryStore) ListRecords(ctx context.Context, sessionID uuid.UUID, limit int) ([]HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.records[sessionID]
	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}
	out := make([]HistoryRecord, len(recs))
	copy(out, recs)
	return out, nil
}

func (m *MockHistoryStore) Close() error {
	return nil
}
