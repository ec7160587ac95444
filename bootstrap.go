package relay

import (
	"context"
)

// Provisioner is the interface that wraps the broker topic and subscription administration.
type Provisioner interface {
	TopicExists(ctx context.Context, topic string) (bool, error)
	CreateTopic(ctx context.Context, topic string) error
	SubscriptionExists(ctx context.Context, sub string) (bool, error)
	CreateSubscription(ctx context.Context, topic, sub string) error
}

// Bootstrap ensures the topic and the subscription exist, creating the missing ones.
// It is safe to run on every start. Any failure is returned as a *ProvisioningError.
func Bootstrap(ctx context.Context, p Provisioner, topic, sub string) error {
	exists, err := p.TopicExists(ctx, topic)
	if err != nil {
		return &ProvisioningError{Resource: "topic", Name: topic, Err: err}
	}
	if !exists {
		if err := p.CreateTopic(ctx, topic); err != nil {
			return &ProvisioningError{Resource: "topic", Name: topic, Err: err}
		}
	}

	exists, err = p.SubscriptionExists(ctx, sub)
	if err != nil {
		return &ProvisioningError{Resource: "subscription", Name: sub, Err: err}
	}
	if !exists {
		if err := p.CreateSubscription(ctx, topic, sub); err != nil {
			return &ProvisioningError{Resource: "subscription", Name: sub, Err: err}
		}
	}

	return nil
}
