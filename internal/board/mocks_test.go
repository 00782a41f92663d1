package board

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MockSectionRepo is a test mock for SectionRepo
type MockSectionRepo struct {
	sections map[string]*MenuSection
	items    map[uuid.UUID][]MenuItem

	ListSectionsFunc      func(ctx context.Context) ([]MenuSection, error)
	GetSectionByKeyFunc   func(ctx context.Context, key string) (*MenuSection, error)
	UpsertSectionFunc     func(ctx context.Context, key, title string) (*MenuSection, error)
	UpsertItemFunc        func(ctx context.Context, item *MenuItem) error
	DeleteItemsExceptFunc func(ctx context.Context, sectionID uuid.UUID, keep []string) error
}

func NewMockSectionRepo() *MockSectionRepo {
	return &MockSectionRepo{
		sections: make(map[string]*MenuSection),
		items:    make(map[uuid.UUID][]MenuItem),
	}
}

func (m *MockSectionRepo) ListSections(ctx context.Context) ([]MenuSection, error) {
	if m.ListSectionsFunc != nil {
		return m.ListSectionsFunc(ctx)
	}
	keys := make([]string, 0, len(m.sections))
	for k := range m.sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]MenuSection, 0, len(keys))
	for _, k := range keys {
		s := *m.sections[k]
		s.Items = append([]MenuItem(nil), m.items[s.ID]...)
		result = append(result, s)
	}
	return result, nil
}

func (m *MockSectionRepo) GetSectionByKey(ctx context.Context, key string) (*MenuSection, error) {
	if m.GetSectionByKeyFunc != nil {
		return m.GetSectionByKeyFunc(ctx, key)
	}
	s, exists := m.sections[key]
	if !exists {
		return nil, nil
	}
	out := *s
	out.Items = append([]MenuItem(nil), m.items[s.ID]...)
	return &out, nil
}

func (m *MockSectionRepo) UpsertSection(ctx context.Context, key, title string) (*MenuSection, error) {
	if m.UpsertSectionFunc != nil {
		return m.UpsertSectionFunc(ctx, key, title)
	}
	if s, exists := m.sections[key]; exists {
		s.Title = title
		out := *s
		return &out, nil
	}
	s := &MenuSection{ID: uuid.New(), Key: key, Title: title}
	m.sections[key] = s
	out := *s
	return &out, nil
}

func (m *MockSectionRepo) UpsertItem(ctx context.Context, item *MenuItem) error {
	if m.UpsertItemFunc != nil {
		return m.UpsertItemFunc(ctx, item)
	}
	items := m.items[item.SectionID]
	for i := range items {
		if items[i].Code == item.Code {
			items[i].Label = item.Label
			items[i].Price = item.Price
			items[i].Active = item.Active
			items[i].SortOrder = item.SortOrder
			return nil
		}
	}
	stored := *item
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	m.items[item.SectionID] = append(items, stored)
	return nil
}

func (m *MockSectionRepo) DeleteItemsExcept(ctx context.Context, sectionID uuid.UUID, keep []string) error {
	if m.DeleteItemsExceptFunc != nil {
		return m.DeleteItemsExceptFunc(ctx, sectionID, keep)
	}
	keepSet := make(map[string]bool, len(keep))
	for _, code := range keep {
		keepSet[code] = true
	}
	kept := make([]MenuItem, 0, len(keep))
	for _, it := range m.items[sectionID] {
		if keepSet[it.Code] {
			kept = append(kept, it)
		}
	}
	m.items[sectionID] = kept
	return nil
}

// AddSection is a helper to seed the mock repository
func (m *MockSectionRepo) AddSection(key, title string, items ...MenuItem) *MenuSection {
	s := &MenuSection{ID: uuid.New(), Key: key, Title: title}
	m.sections[key] = s
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].SectionID = s.ID
	}
	m.items[s.ID] = items
	return s
}

// ItemCodes returns the codes stored for a section, sorted for assertions
func (m *MockSectionRepo) ItemCodes(sectionID uuid.UUID) []string {
	codes := make([]string, 0, len(m.items[sectionID]))
	for _, it := range m.items[sectionID] {
		codes = append(codes, it.Code)
	}
	sort.Strings(codes)
	return codes
}

// MockGroupRepo is a test mock for GroupRepo
type MockGroupRepo struct {
	groups map[string]*Group

	ListGroupsFunc       func(ctx context.Context) ([]Group, error)
	GetGroupFunc         func(ctx context.Context, id string) (*Group, error)
	UpsertGroupThemeFunc func(ctx context.Context, id, themeID string) (*Group, error)
}

func NewMockGroupRepo() *MockGroupRepo {
	return &MockGroupRepo{groups: make(map[string]*Group)}
}

func (m *MockGroupRepo) ListGroups(ctx context.Context) ([]Group, error) {
	if m.ListGroupsFunc != nil {
		return m.ListGroupsFunc(ctx)
	}
	ids := make([]string, 0, len(m.groups))
	for id := range m.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]Group, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.groups[id])
	}
	return result, nil
}

func (m *MockGroupRepo) GetGroup(ctx context.Context, id string) (*Group, error) {
	if m.GetGroupFunc != nil {
		return m.GetGroupFunc(ctx, id)
	}
	g, exists := m.groups[id]
	if !exists {
		return nil, nil
	}
	out := *g
	return &out, nil
}

func (m *MockGroupRepo) UpsertGroupTheme(ctx context.Context, id, themeID string) (*Group, error) {
	if m.UpsertGroupThemeFunc != nil {
		return m.UpsertGroupThemeFunc(ctx, id, themeID)
	}
	g, exists := m.groups[id]
	if !exists {
		g = &Group{ID: id}
		m.groups[id] = g
	}
	g.ThemeID = themeID
	out := *g
	return &out, nil
}

// AddGroup is a helper to seed the mock repository
func (m *MockGroupRepo) AddGroup(id, themeID string) {
	m.groups[id] = &Group{ID: id, ThemeID: themeID}
}

// MockPublisher is a test mock for events.Publisher
type MockPublisher struct {
	PublishedEvents []PublishedEvent
	PublishFunc     func(ctx context.Context, topic string, data []byte) error
}

type PublishedEvent struct {
	Topic string
	Data  []byte
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		PublishedEvents: make([]PublishedEvent, 0),
	}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, data []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, data)
	}
	m.PublishedEvents = append(m.PublishedEvents, PublishedEvent{Topic: topic, Data: data})
	return nil
}

// TopicsContaining returns published topics whose payload contains sub
func (m *MockPublisher) TopicsContaining(sub string) []string {
	topics := make([]string, 0)
	for _, e := range m.PublishedEvents {
		if strings.Contains(string(e.Data), sub) {
			topics = append(topics, e.Topic)
		}
	}
	return topics
}
