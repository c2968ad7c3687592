package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fusion-site/internal/notify"
	"fusion-site/internal/status"
	"fusion-site/internal/storage"
	"fusion-site/models"
	"fusion-site/monitoring"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTracker struct {
	results []string
}

func (c *countingTracker) TrackContact(result string) {
	c.results = append(c.results, result)
}

type failingContactStore struct{}

func (failingContactStore) Create(context.Context, models.ContactRequest) (models.ContactMessage, error) {
	return models.ContactMessage{}, errors.New("disk on fire")
}

func (failingContactStore) ListAll(context.Context) ([]models.ContactMessage, error) {
	return nil, errors.New("disk on fire")
}

type channelNotifier struct {
	got chan models.ContactMessage
}

func (c *channelNotifier) Name() string { return "channel" }

func (c *channelNotifier) NotifyContact(_ context.Context, msg models.ContactMessage) error {
	c.got <- msg
	return nil
}

var validRequest = models.ContactRequest{
	Name:    "Ada",
	Email:   "ada@example.org",
	Subject: "Summer school",
	Message: "When does registration open?",
}

func TestEventService_ListEvents(t *testing.T) {
	svc := NewEventService(storage.NewMemoryEventStore(storage.SeedEvents()))
	ctx := context.Background()

	all, err := svc.ListEvents(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	schools, err := svc.ListEvents(ctx, "School")
	require.NoError(t, err)
	require.Len(t, schools, 2)
	for _, e := range schools {
		assert.True(t, e.HasTag("School"))
	}
	assert.Equal(t, "fusion-summer-school-2024", schools[0].ID)
	assert.Equal(t, "reactor-engineering-school-2023", schools[1].ID)

	none, err := svc.ListEvents(ctx, "Astrophysics")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventService_GetEvent(t *testing.T) {
	svc := NewEventService(storage.NewMemoryEventStore(storage.SeedEvents()))

	event, err := svc.GetEvent(context.Background(), "plasma-diagnostics-workshop-2024")
	require.NoError(t, err)
	assert.Equal(t, "Plasma Diagnostics Workshop", event.Title)

	_, err = svc.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, status.ErrEventNotFound)
}

func TestEventService_Tags(t *testing.T) {
	svc := NewEventService(storage.NewMemoryEventStore(storage.SeedEvents()))

	tags, err := svc.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"School", "Training", "Fusion", "Workshop", "Research",
		"Conference", "International", "Engineering", "Collaboration",
	}, tags)
}

func TestContactService_Submit(t *testing.T) {
	store := storage.NewMemoryContactStore()
	tracker := &countingTracker{}
	notifier := &channelNotifier{got: make(chan models.ContactMessage, 1)}
	dispatcher := notify.NewDispatcher(time.Second, nil, notifier)
	svc := NewContactService(store, dispatcher, tracker)

	msg, err := svc.Submit(context.Background(), validRequest)
	require.NoError(t, err)
	dispatcher.Wait()

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, validRequest.Email, msg.Email)
	assert.Equal(t, msg, <-notifier.got)
	assert.Equal(t, []string{monitoring.ContactCreated}, tracker.results)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.ContactMessage{msg}, all)
}

func TestContactService_SubmitInvalid(t *testing.T) {
	store := storage.NewMemoryContactStore()
	tracker := &countingTracker{}
	svc := NewContactService(store, nil, tracker)

	req := validRequest
	req.Email = ""

	_, err := svc.Submit(context.Background(), req)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "email")
	assert.Equal(t, []string{monitoring.ContactInvalid}, tracker.results)

	all, _ := store.ListAll(context.Background())
	assert.Empty(t, all)
}

func TestContactService_SubmitStoreFailure(t *testing.T) {
	tracker := &countingTracker{}
	svc := NewContactService(failingContactStore{}, nil, tracker)

	_, err := svc.Submit(context.Background(), validRequest)

	assert.ErrorContains(t, err, "disk on fire")
	assert.Equal(t, []string{monitoring.ContactFailed}, tracker.results)
}
