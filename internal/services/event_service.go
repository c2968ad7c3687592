package services

import (
	"context"
	"fmt"

	"fusion-site/internal/gallery"
	"fusion-site/internal/storage"
	"fusion-site/models"
)

type EventService struct {
	Store storage.EventStore
}

func NewEventService(store storage.EventStore) *EventService {
	return &EventService{Store: store}
}

// ListEvents returns events in display order, narrowed to tag when set.
func (s *EventService) ListEvents(ctx context.Context, tag string) ([]models.Event, error) {
	events, err := s.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return gallery.FilterByTag(events, tag), nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (models.Event, error) {
	event, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("get event %q: %w", id, err)
	}
	return event, nil
}

// Tags lists the distinct tags across all events, in display order.
func (s *EventService) Tags(ctx context.Context) ([]string, error) {
	events, err := s.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return gallery.AllTags(events), nil
}
