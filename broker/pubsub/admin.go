package pubsub

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub/v2"
	vkit "cloud.google.com/go/pubsub/v2/apiv1"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/x4b1/relay"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ relay.Provisioner = &Admin{}

// NewAdmin returns an Admin over the client admin APIs.
func NewAdmin(client *pubsub.Client) *Admin {
	return &Admin{
		project: client.Project(),
		topics:  client.TopicAdminClient,
		subs:    client.SubscriptionAdminClient,
	}
}

// Admin checks and creates topics and subscriptions.
// Names can be plain ids or fully qualified resource names.
type Admin struct {
	project string
	topics  *vkit.TopicAdminClient
	subs    *vkit.SubscriptionAdminClient
}

// TopicExists reports whether the topic exists.
func (a *Admin) TopicExists(ctx context.Context, topic string) (bool, error) {
	_, err := a.topics.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName(a.project, topic)})

	return exists(err)
}

// CreateTopic creates the topic. A topic created concurrently by someone else is not an error.
func (a *Admin) CreateTopic(ctx context.Context, topic string) error {
	_, err := a.topics.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName(a.project, topic)})

	return created(err)
}

// SubscriptionExists reports whether the subscription exists.
func (a *Admin) SubscriptionExists(ctx context.Context, sub string) (bool, error) {
	_, err := a.subs.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: subscriptionName(a.project, sub),
	})

	return exists(err)
}

// CreateSubscription creates a pull subscription attached to the topic.
func (a *Admin) CreateSubscription(ctx context.Context, topic, sub string) error {
	_, err := a.subs.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  subscriptionName(a.project, sub),
		Topic: topicName(a.project, topic),
	})

	return created(err)
}

func exists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case status.Code(err) == codes.NotFound:
		return false, nil
	default:
		return false, err
	}
}

func created(err error) error {
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return err
	}

	return nil
}

func topicName(project, topic string) string {
	if strings.HasPrefix(topic, "projects/") {
		return topic
	}

	return fmt.Sprintf("projects/%s/topics/%s", project, topic)
}

func subscriptionName(project, sub string) string {
	if strings.HasPrefix(sub, "projects/") {
		return sub
	}

	return fmt.Sprintf("projects/%s/subscriptions/%s", project, sub)
}
