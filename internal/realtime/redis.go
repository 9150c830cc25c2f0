package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/logger"

	"github.com/redis/go-redis/v9"
)

// RedisRelay distributes events across service instances via Redis pub/sub.
type RedisRelay struct {
	client *redis.Client
	log    *logger.Logger

	mu      sync.Mutex
	pubsubs []*redis.PubSub
	closed  bool
}

// NewRedisRelay creates a relay backed by the given Redis client
func NewRedisRelay(client *redis.Client) *RedisRelay {
	return &RedisRelay{
		client: client,
		log:    logger.New().WithField("component", "realtime"),
	}
}

// Publish serializes the event and publishes it on its topic channel
func (r *RedisRelay) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := r.client.Publish(ctx, event.Topic, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", event.Topic, err)
	}
	return nil
}

// Subscribe opens a Redis subscription on the topic and pumps messages to
// the handler until the returned unsubscribe handle is called.
func (r *RedisRelay) Subscribe(topic string, handler Handler) (func(), error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, fmt.Errorf("relay is closed")
	}
	pubsub := r.client.Subscribe(context.Background(), topic)
	r.pubsubs = append(r.pubsubs, pubsub)
	r.mu.Unlock()

	// Confirm the subscription before returning so no event published
	// afterwards is missed.
	if _, err := pubsub.Receive(context.Background()); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", topic, err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.log.WithError(err).WithField("topic", topic).Warn("dropping malformed event")
				continue
			}
			handler(event)
		}
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			r.log.WithError(err).WithField("topic", topic).Warn("failed to close subscription")
		}
	}, nil
}

// Close tears down every open subscription and the Redis client
func (r *RedisRelay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for _, ps := range r.pubsubs {
		_ = ps.Close()
	}
	r.pubsubs = nil
	return r.client.Close()
}
