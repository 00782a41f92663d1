package board

import (
	"context"
	"fmt"
	"sort"
	"strings"

	aqm "github.com/appetiteclub/apt"
)

// Snapshot is the full display-ready state for one screen at one point in
// time. It is safe to serialize verbatim to a display client.
type Snapshot struct {
	ScreenID string            `json:"screenId"`
	GroupID  string            `json:"groupId"`
	ThemeID  string            `json:"themeId"`
	Theme    Theme             `json:"theme"`
	Screen   Screen            `json:"screen"`
	Sections []SnapshotSection `json:"sections"`
}

// SnapshotSection is a section with its items in display order.
type SnapshotSection struct {
	ID    string         `json:"id"`
	Key   string         `json:"key"`
	Title string         `json:"title"`
	Items []SnapshotItem `json:"items"`
}

// SnapshotItem is one board row.
type SnapshotItem struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Label     string `json:"label"`
	Price     string `json:"price"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sortOrder"`
}

// SnapshotBuilder composes display payloads from the section store, the
// group store, the theme catalog and the seasonal resolver. It owns no state
// and building is side-effect free: repeated calls with unchanged inputs
// yield unchanged output, theme boundary crossings aside.
type SnapshotBuilder struct {
	sections SectionRepo
	groups   GroupRepo
	logger   aqm.Logger
}

// NewSnapshotBuilder creates a builder over the given stores.
func NewSnapshotBuilder(sections SectionRepo, groups GroupRepo, logger aqm.Logger) *SnapshotBuilder {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &SnapshotBuilder{sections: sections, groups: groups, logger: logger}
}

// Build assembles the snapshot for a screen. Unknown screens fail with
// ErrScreenNotFound; an unreachable section store degrades to an empty
// section list so the boundary can still serve a response.
func (b *SnapshotBuilder) Build(ctx context.Context, screenID string, today MonthDay) (*Snapshot, error) {
	screen, ok := ScreenByID(screenID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScreenNotFound, screenID)
	}

	baseThemeID := DefaultThemeID
	group, err := b.groups.GetGroup(ctx, screen.GroupID)
	if err != nil {
		b.logger.Error("cannot read group, using default theme", "group_id", screen.GroupID, "error", err)
	} else if group != nil && group.ThemeID != "" {
		baseThemeID = group.ThemeID
	}

	themeID := ResolveActiveTheme(baseThemeID, today)
	theme, ok := ThemeByID(themeID)
	if !ok {
		// Rules only reference catalog entries, so this should not occur.
		theme, _ = ThemeByID(DefaultThemeID)
		themeID = DefaultThemeID
	}

	snapshot := &Snapshot{
		ScreenID: screenID,
		GroupID:  screen.GroupID,
		ThemeID:  themeID,
		Theme:    theme,
		Screen:   screen,
		Sections: []SnapshotSection{},
	}

	rows, err := b.sections.ListSections(ctx)
	if err != nil {
		b.logger.Error("cannot load menu sections, serving empty list", "screen_id", screenID, "error", err)
		return snapshot, nil
	}

	sort.Slice(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Title) < strings.ToLower(rows[j].Title)
	})

	for _, s := range rows {
		snapshot.Sections = append(snapshot.Sections, toSnapshotSection(s))
	}
	return snapshot, nil
}

func toSnapshotSection(s MenuSection) SnapshotSection {
	items := make([]SnapshotItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SnapshotItem{
			ID:        it.ID.String(),
			Code:      it.Code,
			Label:     it.Label,
			Price:     it.Price,
			Active:    it.Active,
			SortOrder: it.SortOrder,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return strings.ToLower(items[i].Label) < strings.ToLower(items[j].Label)
	})
	return SnapshotSection{
		ID:    s.ID.String(),
		Key:   s.Key,
		Title: s.Title,
		Items: items,
	}
}
