package event

import "time"

// MenuUpdatesTopic carries change notices between processes when NATS is
// configured. A single process deployment never publishes or consumes it.
const MenuUpdatesTopic = "menuboard.updates"

// Event types on MenuUpdatesTopic.
const (
	EventMenuSaved    = "menu.saved"
	EventThemeApplied = "menu.theme_applied"
)

// MenuUpdatedEvent is the cross-process change notice. Like the in-process
// bus events it carries no menu data: consumers refetch full state.
type MenuUpdatedEvent struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	GroupID    string    `json:"group_id,omitempty"`
	ThemeID    string    `json:"theme_id,omitempty"`
}
