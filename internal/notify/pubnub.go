package notify

import (
	"context"
	"fmt"

	"fusion-site/models"

	pubnub "github.com/pubnub/go"
	"github.com/sony/gobreaker/v2"
)

// PubNubNotifier pushes contact messages to a PubNub channel for live staff
// alerts.
type PubNubNotifier struct {
	channel string
	publish func(channel string, message any) error
	breaker *gobreaker.CircuitBreaker[any]
}

func NewPubNubNotifier(pn *pubnub.PubNub, channel string) *PubNubNotifier {
	return &PubNubNotifier{
		channel: channel,
		publish: func(channel string, message any) error {
			_, status, err := pn.Publish().
				Channel(channel).
				Message(message).
				Execute()
			if err != nil {
				return err
			}
			return status.Error
		},
		breaker: newBreaker("pubnub-notify"),
	}
}

// NewPubNubClient builds a client from the site's keys.
func NewPubNubClient(publishKey, subscribeKey, secretKey string) *pubnub.PubNub {
	pnConfig := pubnub.NewConfig()
	pnConfig.PublishKey = publishKey
	pnConfig.SubscribeKey = subscribeKey
	pnConfig.SecretKey = secretKey

	return pubnub.NewPubNub(pnConfig)
}

func (n *PubNubNotifier) Name() string { return "pubnub" }

func (n *PubNubNotifier) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := n.breaker.Execute(func() (any, error) {
		return nil, n.publish(n.channel, newEnvelope(msg))
	})
	if err != nil {
		return fmt.Errorf("pubnub publish to %s: %w", n.channel, err)
	}
	return nil
}
