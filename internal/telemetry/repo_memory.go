package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores run events.
type Repository interface {
	RecordEvent(runID string, eventType EventType, metadata EventMetadata) error
	GetEvents(runID string) ([]Event, error)
	Clear() error
}

// MemoryRepository stores events in memory. One process holds one run
// at a time, but events are keyed by run ID so a retry starts clean
// without clearing history.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events: make([]Event, 0),
		nextID: 1,
	}
}

func (r *MemoryRepository) RecordEvent(runID string, eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.events = append(r.events, Event{
		ID:        r.nextID,
		RunID:     runID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	})
	r.nextID++

	return nil
}

func (r *MemoryRepository) GetEvents(runID string) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Event, 0)
	for _, event := range r.events {
		if runID != "" && event.RunID != runID {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1

	return nil
}
