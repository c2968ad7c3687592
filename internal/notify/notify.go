// Package notify fans contact form submissions out to staff channels.
// Delivery is best effort: failures are logged and counted, never returned
// to the visitor.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fusion-site/models"

	"github.com/sony/gobreaker/v2"
)

// ContactNotifier delivers one contact message somewhere.
type ContactNotifier interface {
	Name() string
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

// Tracker records delivery outcomes.
type Tracker interface {
	TrackNotification(notifier string, err error)
}

// Envelope is the payload published for each contact message.
type Envelope struct {
	Type    string                `json:"type"`
	Message models.ContactMessage `json:"message"`
}

func newEnvelope(msg models.ContactMessage) Envelope {
	return Envelope{Type: "contact_message", Message: msg}
}

// Breaker settings shared by the notifiers: trip after consecutive failures,
// probe again after the cool-down.
const (
	breakerMaxFailures = 5
	breakerTimeout     = 30 * time.Second
)

func newBreaker(name string) *gobreaker.CircuitBreaker[any] {
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    name,
		Timeout: breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("notifier circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// Dispatcher sends each message to every notifier in the background.
type Dispatcher struct {
	notifiers []ContactNotifier
	timeout   time.Duration
	tracker   Tracker
	wg        sync.WaitGroup
}

func NewDispatcher(timeout time.Duration, tracker Tracker, notifiers ...ContactNotifier) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		notifiers: notifiers,
		timeout:   timeout,
		tracker:   tracker,
	}
}

func (d *Dispatcher) Len() int { return len(d.notifiers) }

// Dispatch returns immediately. Each notifier gets its own timeout, detached
// from the request that produced msg.
func (d *Dispatcher) Dispatch(msg models.ContactMessage) {
	for _, n := range d.notifiers {
		d.wg.Add(1)
		go func(n ContactNotifier) {
			defer d.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()

			err := n.NotifyContact(ctx, msg)
			if d.tracker != nil {
				d.tracker.TrackNotification(n.Name(), err)
			}
			if err != nil {
				slog.Warn("contact notification failed", "notifier", n.Name(), "contactID", msg.ID, "error", err)
				return
			}
			slog.Info("contact notification sent", "notifier", n.Name(), "contactID", msg.ID)
		}(n)
	}
}

// Wait blocks until every in-flight delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
