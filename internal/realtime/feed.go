package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// FeedHooks are the refetch callbacks a client session wires into a
// GroupFeed. All hooks must be idempotent: the feed may invoke them for
// duplicate or out-of-order events and never applies changes incrementally.
type FeedHooks struct {
	// RefreshMessages reloads the message history of a group
	RefreshMessages func(groupID uuid.UUID)
	// RefreshUnread recomputes the session user's unread counters
	RefreshUnread func()
	// MarkRead records the group as read; called only for the open group
	MarkRead func(groupID uuid.UUID)
	// RefreshSlots reloads a team's slot list
	RefreshSlots func(groupID, teamID uuid.UUID)
}

// GroupFeed reacts to relay events on behalf of one client session. It
// holds at most one subscription per topic and releases both on Stop.
type GroupFeed struct {
	sub   Subscriber
	hooks FeedHooks

	mu        sync.Mutex
	openGroup *uuid.UUID
	cancels   []func()
	started   bool
}

// NewGroupFeed creates a feed bound to the given subscriber and hooks
func NewGroupFeed(sub Subscriber, hooks FeedHooks) *GroupFeed {
	return &GroupFeed{sub: sub, hooks: hooks}
}

// Start subscribes to the message and slot topics. Calling Start on a
// running feed is a no-op.
func (f *GroupFeed) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started {
		return nil
	}

	cancelMessages, err := f.sub.Subscribe(TopicGroupMessages, f.onMessage)
	if err != nil {
		return err
	}
	cancelSlots, err := f.sub.Subscribe(TopicTeamSlots, f.onSlot)
	if err != nil {
		cancelMessages()
		return err
	}

	f.cancels = []func(){cancelMessages, cancelSlots}
	f.started = true
	return nil
}

// Stop releases both subscriptions. Safe to call more than once.
func (f *GroupFeed) Stop() {
	f.mu.Lock()
	cancels := f.cancels
	f.cancels = nil
	f.started = false
	f.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// SetOpenGroup marks a group as the one the user is currently viewing.
// Incoming messages for that group are marked read immediately.
func (f *GroupFeed) SetOpenGroup(groupID uuid.UUID) {
	f.mu.Lock()
	f.openGroup = &groupID
	f.mu.Unlock()
}

// ClearOpenGroup marks no group as open
func (f *GroupFeed) ClearOpenGroup() {
	f.mu.Lock()
	f.openGroup = nil
	f.mu.Unlock()
}

func (f *GroupFeed) onMessage(event Event) {
	f.mu.Lock()
	open := f.openGroup != nil && *f.openGroup == event.GroupID
	f.mu.Unlock()

	if f.hooks.RefreshMessages != nil {
		f.hooks.RefreshMessages(event.GroupID)
	}
	if open && f.hooks.MarkRead != nil {
		f.hooks.MarkRead(event.GroupID)
	}
	if f.hooks.RefreshUnread != nil {
		f.hooks.RefreshUnread()
	}
}

func (f *GroupFeed) onSlot(event Event) {
	if f.hooks.RefreshSlots != nil {
		f.hooks.RefreshSlots(event.GroupID, event.TeamID)
	}
}
