package board

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrScreenNotFound is returned for unrecognized screen identifiers.
var ErrScreenNotFound = errors.New("screen not found")

// SectionRepo is the durable store contract for sections and their items.
type SectionRepo interface {
	// ListSections returns all sections with their items. Item ordering is
	// left to the caller; implementations need not sort.
	ListSections(ctx context.Context) ([]MenuSection, error)
	GetSectionByKey(ctx context.Context, key string) (*MenuSection, error)
	// UpsertSection creates the section on first reference and is a no-op
	// update of identity fields when it already exists.
	UpsertSection(ctx context.Context, key, title string) (*MenuSection, error)
	// UpsertItem matches on (section, code): updates label/price/active/sort
	// order when the pair exists, creates otherwise.
	UpsertItem(ctx context.Context, item *MenuItem) error
	// DeleteItemsExcept removes every item of the section whose code is not
	// in keep. An empty keep set removes all items of the section.
	DeleteItemsExcept(ctx context.Context, sectionID uuid.UUID, keep []string) error
}

// GroupRepo is the durable store contract for screen groups.
type GroupRepo interface {
	ListGroups(ctx context.Context) ([]Group, error)
	// GetGroup returns nil without error when the group does not exist.
	GetGroup(ctx context.Context, id string) (*Group, error)
	// UpsertGroupTheme assigns the theme, creating the group when it is
	// referenced for the first time.
	UpsertGroupTheme(ctx context.Context, id, themeID string) (*Group, error)
}
