package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fusion-site/internal/status"
	"fusion-site/models"
)

// EventStore is the read side the API needs plus the internal create path.
type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (models.Event, error)
	Create(ctx context.Context, event models.Event) (models.Event, error)
}

// MemoryEventStore keeps events in display order so reads never sort.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events []models.Event
	byID   map[string]int
}

// NewMemoryEventStore builds a store holding seed, ordered by Order with
// ties kept in seed order.
func NewMemoryEventStore(seed []models.Event) *MemoryEventStore {
	events := make([]models.Event, 0, len(seed))
	for _, e := range seed {
		events = append(events, e.Clone())
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Order < events[j].Order
	})

	s := &MemoryEventStore{
		events: events,
		byID:   make(map[string]int, len(events)),
	}
	for i, e := range events {
		s.byID[e.ID] = i
	}
	return s
}

func (s *MemoryEventStore) List(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *MemoryEventStore) GetByID(ctx context.Context, id string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Event{}, status.ErrEventNotFound
	}
	return s.events[i].Clone(), nil
}

// Create appends event with the next order value. Any Order set by the
// caller is ignored.
func (s *MemoryEventStore) Create(ctx context.Context, event models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[event.ID]; ok {
		return models.Event{}, fmt.Errorf("create %q: %w", event.ID, status.ErrEventExists)
	}

	stored := event.Clone()
	stored.Order = len(s.events) + 1
	if n := len(s.events); n > 0 && s.events[n-1].Order >= stored.Order {
		stored.Order = s.events[n-1].Order + 1
	}

	s.byID[stored.ID] = len(s.events)
	s.events = append(s.events, stored)
	return stored.Clone(), nil
}
