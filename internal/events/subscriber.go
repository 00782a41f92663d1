package events

import (
	"context"
	"encoding/json"
	"fmt"

	aqm "github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/glenwooddrivein/menuboard/internal/board"
	"github.com/glenwooddrivein/menuboard/internal/stream"
	"github.com/glenwooddrivein/menuboard/pkg/event"
)

// UpdateRelay forwards menu update notices from other processes into the
// local display bus. Saves made on a peer instance thus reach displays
// connected to this one.
type UpdateRelay struct {
	subscriber events.Subscriber
	bus        *stream.Bus
	logger     aqm.Logger
}

func NewUpdateRelay(subscriber events.Subscriber, bus *stream.Bus, logger aqm.Logger) *UpdateRelay {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &UpdateRelay{
		subscriber: subscriber,
		bus:        bus,
		logger:     logger,
	}
}

func (r *UpdateRelay) Start(ctx context.Context) error {
	r.logger.Info("Starting UpdateRelay for topic: " + event.MenuUpdatesTopic)

	if err := r.subscriber.Subscribe(ctx, event.MenuUpdatesTopic, r.handleEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", event.MenuUpdatesTopic, err)
	}

	r.logger.Info("UpdateRelay started successfully")
	return nil
}

func (r *UpdateRelay) handleEvent(ctx context.Context, msg []byte) error {
	var evt event.MenuUpdatedEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		r.logger.Errorf("Failed to unmarshal event: %v", err)
		return nil
	}

	switch evt.EventType {
	case event.EventMenuSaved:
		r.bus.BroadcastAll(stream.Event{Type: stream.EventMenuUpdated})
	case event.EventThemeApplied:
		out := stream.Event{
			Type:    stream.EventMenuUpdated,
			GroupID: evt.GroupID,
			ThemeID: evt.ThemeID,
			Reason:  "themeChanged",
		}
		screens := board.ScreensForGroup(evt.GroupID)
		if len(screens) == 0 {
			r.bus.BroadcastAll(out)
			return nil
		}
		for _, s := range screens {
			r.bus.Broadcast(s.ID, out)
		}
	default:
		r.logger.Infof("Unknown event type: %s", evt.EventType)
	}

	return nil
}
