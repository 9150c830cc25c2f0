// Package realtime carries row-change notifications between the service
// layer and interested consumers. Events name the affected group or team
// only; consumers refetch state, so duplicate or out-of-order delivery is
// harmless.
package realtime

import (
	"context"

	"github.com/google/uuid"
)

// Topics, one logical channel per concern
const (
	TopicGroupMessages = "group.messages"
	TopicTeamSlots     = "team.slots"
)

// Event is a row-change notification
type Event struct {
	Topic   string    `json:"topic"`
	GroupID uuid.UUID `json:"group_id"`
	TeamID  uuid.UUID `json:"team_id,omitempty"`
}

// Handler consumes events for one topic
type Handler func(event Event)

// Publisher pushes events into the relay
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber registers handlers for a topic. Subscribe returns an
// unsubscribe handle; callers hold at most one handle per topic and must
// release it on teardown.
type Subscriber interface {
	Subscribe(topic string, handler Handler) (func(), error)
}

// Relay is the full change-relay contract
type Relay interface {
	Publisher
	Subscriber
	Close() error
}
