package board

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	aqm "github.com/appetiteclub/apt"
	aqmevents "github.com/appetiteclub/apt/events"
	"github.com/glenwooddrivein/menuboard/internal/stream"
	"github.com/glenwooddrivein/menuboard/pkg/event"
)

// ItemState is one persisted item as seen by the admin UI. The stable code
// is exposed as id, matching the save payload shape.
type ItemState struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Price  string `json:"price"`
	Active bool   `json:"active"`
}

// MenuState is the persisted section-to-items mapping returned to admins.
type MenuState map[string][]ItemState

// AdminFlow applies validated admin edits and fans out change notifications.
// Write failures surface precisely to the admin; only the read side of the
// system degrades silently.
type AdminFlow struct {
	sections  SectionRepo
	groups    GroupRepo
	bus       *stream.Bus
	publisher aqmevents.Publisher
	logger    aqm.Logger
}

// NewAdminFlow creates the admin mutation flow. publisher may be nil when
// cross-process relaying is not configured.
func NewAdminFlow(sections SectionRepo, groups GroupRepo, bus *stream.Bus, publisher aqmevents.Publisher, logger aqm.Logger) *AdminFlow {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &AdminFlow{
		sections:  sections,
		groups:    groups,
		bus:       bus,
		publisher: publisher,
		logger:    logger,
	}
}

// SaveMenu persists a full save payload. Each section is replaced by diff:
// items in the payload are upserted by (section, code), items absent from it
// are deleted. Omission means deletion, not an additive merge. On success
// every display channel is notified and the freshly re-read state returned.
func (f *AdminFlow) SaveMenu(ctx context.Context, input SaveMenuInput) (MenuState, error) {
	for key, items := range input {
		section, err := f.sections.UpsertSection(ctx, key, TitleForKey(key))
		if err != nil {
			return nil, fmt.Errorf("cannot upsert section %s: %w", key, err)
		}

		keep := make([]string, 0, len(items))
		for index, in := range items {
			code := strings.TrimSpace(in.ID)
			if code == "" {
				code = fmt.Sprintf("%s-%d", strings.ToLower(key), index)
			}
			keep = append(keep, code)

			item := &MenuItem{
				SectionID: section.ID,
				Code:      code,
				Label:     in.Label,
				Price:     in.Price,
				Active:    in.IsActive(),
				SortOrder: index,
			}
			if err := f.sections.UpsertItem(ctx, item); err != nil {
				return nil, fmt.Errorf("cannot upsert item %s/%s: %w", key, code, err)
			}
		}

		if err := f.sections.DeleteItemsExcept(ctx, section.ID, keep); err != nil {
			return nil, fmt.Errorf("cannot prune items of section %s: %w", key, err)
		}
	}

	// A save may touch any section and any screen may reference any
	// section, so notify every channel.
	f.bus.BroadcastAll(stream.Event{Type: stream.EventMenuUpdated})
	f.publish(ctx, event.MenuUpdatedEvent{
		EventType:  event.EventMenuSaved,
		OccurredAt: time.Now().UTC(),
	})

	return f.ReadMenu(ctx)
}

// ReadMenu returns the persisted menu in the admin shape, items ordered by
// sort order with case-insensitive label tie-break.
func (f *AdminFlow) ReadMenu(ctx context.Context) (MenuState, error) {
	sections, err := f.sections.ListSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list sections: %w", err)
	}

	state := make(MenuState, len(sections))
	for _, s := range sections {
		items := make([]MenuItem, len(s.Items))
		copy(items, s.Items)
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].SortOrder != items[j].SortOrder {
				return items[i].SortOrder < items[j].SortOrder
			}
			return strings.ToLower(items[i].Label) < strings.ToLower(items[j].Label)
		})

		out := make([]ItemState, 0, len(items))
		for _, it := range items {
			out = append(out, ItemState{
				ID:     it.Code,
				Label:  it.Label,
				Price:  it.Price,
				Active: it.Active,
			})
		}
		state[s.Key] = out
	}
	return state, nil
}

// ApplyTheme assigns a base theme to a group, creating the group when it is
// referenced for the first time, and notifies the group's screens.
func (f *AdminFlow) ApplyTheme(ctx context.Context, groupID, themeID string) (*Group, error) {
	if _, ok := ThemeByID(themeID); !ok {
		return nil, fmt.Errorf("unknown theme %q", themeID)
	}

	group, err := f.groups.UpsertGroupTheme(ctx, groupID, themeID)
	if err != nil {
		return nil, fmt.Errorf("cannot apply theme %s to group %s: %w", themeID, groupID, err)
	}

	evt := stream.Event{
		Type:    stream.EventMenuUpdated,
		GroupID: groupID,
		ThemeID: themeID,
		Reason:  "themeChanged",
	}
	screens := ScreensForGroup(groupID)
	if len(screens) == 0 {
		// Unknown group membership: over-broadcasting is fine, displays
		// just refetch and compare.
		f.bus.BroadcastAll(evt)
	} else {
		for _, s := range screens {
			f.bus.Broadcast(s.ID, evt)
		}
	}

	f.publish(ctx, event.MenuUpdatedEvent{
		EventType:  event.EventThemeApplied,
		OccurredAt: time.Now().UTC(),
		GroupID:    groupID,
		ThemeID:    themeID,
	})

	return group, nil
}

// publish forwards the change notice to other processes. Failures are
// logged and swallowed: the local broadcast already happened and the admin
// write itself succeeded.
func (f *AdminFlow) publish(ctx context.Context, evt event.MenuUpdatedEvent) {
	if f.publisher == nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		f.logger.Error("cannot marshal update event", "error", err)
		return
	}
	if err := f.publisher.Publish(ctx, event.MenuUpdatesTopic, data); err != nil {
		f.logger.Error("cannot publish update event", "topic", event.MenuUpdatesTopic, "error", err)
	}
}
