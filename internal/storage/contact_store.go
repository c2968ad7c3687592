package storage

import (
	"context"
	"sync"

	"fusion-site/models"

	"github.com/google/uuid"
)

// ContactStore collects contact form submissions.
type ContactStore interface {
	Create(ctx context.Context, req models.ContactRequest) (models.ContactMessage, error)
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
}

// MemoryContactStore holds submissions for the lifetime of the process.
type MemoryContactStore struct {
	mu       sync.RWMutex
	messages map[string]models.ContactMessage
	newID    func() string
}

func NewMemoryContactStore() *MemoryContactStore {
	return &MemoryContactStore{
		messages: make(map[string]models.ContactMessage),
		newID:    uuid.NewString,
	}
}

// Create stores req under a fresh identifier. Identical bodies are kept as
// separate messages.
func (s *MemoryContactStore) Create(ctx context.Context, req models.ContactRequest) (models.ContactMessage, error) {
	msg := models.ContactMessage{
		ID:      s.newID(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	s.mu.Lock()
	s.messages[msg.ID] = msg
	s.mu.Unlock()

	return msg, nil
}

// ListAll returns every message in no particular order.
func (s *MemoryContactStore) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	return out, nil
}
