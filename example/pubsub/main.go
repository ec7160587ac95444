// Command pubsub runs a relay against an in-memory Pub/Sub server, publishes a few
// messages and prints what a connected client receives.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/pstest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/x4b1/relay"
	pubsubx "github.com/x4b1/relay/broker/pubsub"
)

const (
	project        = "project"
	psTopic        = "topic"
	psSubscription = "subscription"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv := pstest.NewServer()
	defer srv.Close()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Could not connect to gRPC server: %s", err)
	}
	defer conn.Close()

	client, err := pubsub.NewClient(ctx, project, option.WithGRPCConn(conn))
	if err != nil {
		log.Fatalf("Could not create pubsub client: %s", err)
	}
	defer client.Close()

	if err := relay.Bootstrap(ctx, pubsubx.NewAdmin(client), psTopic, psSubscription); err != nil {
		log.Fatal(err)
	}

	r := relay.New(relay.WithMaxMessages(10), relay.WithBroadcastMode(relay.BroadcastDelta))
	defer r.Close()

	go func() {
		if err := pubsubx.OpenSubscriber(client, psSubscription, r).Listen(ctx); err != nil {
			log.Print(err)
		}
	}()

	stream, err := r.OpenStream(ctx)
	if err != nil {
		log.Fatal(err)
	}

	publisher := pubsubx.OpenPublisher(client, psTopic)
	defer publisher.Stop()

	for i := range 3 {
		msg, err := relay.NewMessage(fmt.Sprintf("example-%d", i), fmt.Appendf(nil, `{"n":%d}`, i), time.Now())
		if err != nil {
			log.Fatal(err)
		}
		if err := publisher.Publish(ctx, msg); err != nil {
			log.Fatal(err)
		}
	}

	// snapshot plus one delta per published message
	for range 4 {
		select {
		case data := <-stream.Events():
			fmt.Printf("event: %s\n", data)
		case <-ctx.Done():
			log.Fatal(ctx.Err())
		}
	}
}
