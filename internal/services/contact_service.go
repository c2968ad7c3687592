package services

import (
	"context"
	"fmt"
	"log/slog"

	"fusion-site/internal/notify"
	"fusion-site/internal/storage"
	"fusion-site/models"
	"fusion-site/monitoring"
)

// ContactTracker counts submissions by outcome.
type ContactTracker interface {
	TrackContact(result string)
}

type ContactService struct {
	Store      storage.ContactStore
	dispatcher *notify.Dispatcher
	tracker    ContactTracker
}

func NewContactService(store storage.ContactStore, dispatcher *notify.Dispatcher, tracker ContactTracker) *ContactService {
	return &ContactService{
		Store:      store,
		dispatcher: dispatcher,
		tracker:    tracker,
	}
}

// Submit validates and stores req, then notifies staff in the background.
// A validation failure is returned as is (a validation.Errors) and nothing
// is stored.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (models.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		s.track(monitoring.ContactInvalid)
		return models.ContactMessage{}, err
	}

	msg, err := s.Store.Create(ctx, req)
	if err != nil {
		s.track(monitoring.ContactFailed)
		return models.ContactMessage{}, fmt.Errorf("store contact message: %w", err)
	}

	s.track(monitoring.ContactCreated)
	slog.Info("contact message received", "contactID", msg.ID, "subject", msg.Subject)

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(msg)
	}
	return msg, nil
}

func (s *ContactService) track(result string) {
	if s.tracker != nil {
		s.tracker.TrackContact(result)
	}
}
