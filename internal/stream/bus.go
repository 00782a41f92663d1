package stream

import (
	"sync"
	"sync/atomic"

	aqm "github.com/appetiteclub/apt"
	"github.com/google/uuid"
)

// Event is a change notification pushed to display subscribers. It is a hint
// to refetch, never the payload itself: displays always fetch full state.
type Event struct {
	Type     string `json:"type"`
	ScreenID string `json:"screenId,omitempty"`
	GroupID  string `json:"groupId,omitempty"`
	ThemeID  string `json:"themeId,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Event types delivered over the subscription stream.
const (
	EventConnected   = "connected"
	EventMenuUpdated = "menuUpdated"
)

const subscriberBuffer = 16

// Subscription is one registered display connection on a channel.
type Subscription struct {
	ID        string
	ChannelID string
	ch        chan Event
}

// Events returns the receive side of the subscription.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Bus is the process-wide registry of display subscribers, keyed by screen
// channel. It is constructed once at startup and injected into every handler
// that publishes or subscribes. There is no replay and no delivery guarantee:
// a subscriber that connects after a broadcast observes the resulting state
// on its next full fetch instead.
type Bus struct {
	mu       sync.RWMutex
	channels map[string]map[string]*Subscription
	logger   aqm.Logger

	delivered atomic.Int64
	dropped   atomic.Int64
}

// NewBus creates an empty bus.
func NewBus(logger aqm.Logger) *Bus {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &Bus{
		channels: make(map[string]map[string]*Subscription),
		logger:   logger,
	}
}

// Subscribe registers a new long-lived consumer on a channel.
func (b *Bus) Subscribe(channelID string) *Subscription {
	sub := &Subscription{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		ch:        make(chan Event, subscriberBuffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.channels[channelID]
	if subs == nil {
		subs = make(map[string]*Subscription)
		b.channels[channelID] = subs
	}
	subs[sub.ID] = sub

	b.logger.Info("subscriber registered", "channel", channelID, "subscriber_id", sub.ID, "channel_subscribers", len(subs))
	return sub
}

// Unsubscribe removes the entry and closes its channel. Safe to call more
// than once and safe when the underlying connection is already gone; stale
// registrations left behind would grow without bound otherwise.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.channels[sub.ChannelID]
	if subs == nil {
		return
	}
	if _, ok := subs[sub.ID]; !ok {
		return
	}
	close(sub.ch)
	delete(subs, sub.ID)
	if len(subs) == 0 {
		delete(b.channels, sub.ChannelID)
	}
	b.logger.Info("subscriber removed", "channel", sub.ChannelID, "subscriber_id", sub.ID)
}

// Broadcast delivers an event to every current subscriber of a channel.
// A slow or broken subscriber never blocks delivery to the rest: the send is
// non-blocking and a full buffer drops the event for that subscriber only.
func (b *Bus) Broadcast(channelID string, evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	b.deliverLocked(b.channels[channelID], evt)
}

// BroadcastAll fans an event out to every channel's subscriber set. Used for
// changes not scoped to one screen, like menu-wide edits.
func (b *Bus) BroadcastAll(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, subs := range b.channels {
		b.deliverLocked(subs, evt)
	}
}

// deliverLocked must be called with b.mu held (read lock is enough: channel
// closes only happen under the write lock, so sends cannot race a close).
func (b *Bus) deliverLocked(subs map[string]*Subscription, evt Event) {
	for id, sub := range subs {
		select {
		case sub.ch <- evt:
			b.delivered.Add(1)
		default:
			b.dropped.Add(1)
			b.logger.Info("subscriber buffer full, dropping event", "subscriber_id", id, "channel", sub.ChannelID, "event", evt.Type)
		}
	}
}

// SubscriberCount returns the number of subscribers on one channel.
func (b *Bus) SubscriberCount(channelID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.channels[channelID])
}

// TotalSubscribers returns the subscriber count across all channels.
func (b *Bus) TotalSubscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, subs := range b.channels {
		n += len(subs)
	}
	return n
}

// Stats reports delivered and dropped event counts since startup.
func (b *Bus) Stats() (delivered, dropped int64) {
	return b.delivered.Load(), b.dropped.Load()
}
