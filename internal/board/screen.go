package board

// ScreenColumn is one column of a board layout: either a menu section
// reference or a static notice block. Layout is presentational; the
// screen-to-group relationship is what theme resolution depends on.
type ScreenColumn struct {
	SectionKey string       `json:"sectionKey,omitempty"`
	Notice     *NoticeBlock `json:"notice,omitempty"`
}

// NoticeBlock is static content rendered inside a column, like the food
// safety notice required by the state health code.
type NoticeBlock struct {
	Title string   `json:"title,omitempty"`
	Lines []string `json:"lines"`
}

// Screen is one physical display: its owning group plus a declarative
// column layout interpreted by a generic renderer.
type Screen struct {
	ID      string         `json:"id"`
	GroupID string         `json:"groupId"`
	Columns []ScreenColumn `json:"columns"`
}

var foodSafetyNotice = &NoticeBlock{
	Lines: []string{
		"* THOROUGHLY COOKING MEATS, POULTRY,",
		"SEAFOOD, SHELLFISH, OR EGGS REDUCES",
		"THE RISK OF FOODBORNE ILLNESS.",
		"CONNECTICUT PUBLIC HEALTH CODE SECTION 19-13-B42(M)(1)(F)",
	},
}

var toppingsNotice = &NoticeBlock{
	Title: "TOPPINGS",
	Lines: []string{"LETTUCE", "TOMATO", "ONION", "PICKLES", "MAYO"},
}

// screenRegistry mirrors the physical board wall: two rows of four displays,
// the second row repeating the food boards for the far lanes plus a promo
// board fed by the slideshow listing.
var screenRegistry = []Screen{
	{ID: "screen-1", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "HOT_DOGS"},
		{SectionKey: "BURGERS", Notice: foodSafetyNotice},
	}},
	{ID: "screen-2", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "SANDWICHES"},
		{SectionKey: "SEAFOOD_ORDERS"},
	}},
	{ID: "screen-3", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "SIDES_LEFT"},
		{SectionKey: "SIDES_RIGHT"},
	}},
	{ID: "screen-4", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "BEVERAGES"},
		{Notice: toppingsNotice},
	}},
	{ID: "screen-5", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "HOT_DOGS"},
		{SectionKey: "BURGERS", Notice: foodSafetyNotice},
	}},
	{ID: "screen-6", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "SIDES_LEFT"},
		{SectionKey: "SIDES_RIGHT"},
	}},
	{ID: "screen-7", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{SectionKey: "SANDWICHES"},
		{SectionKey: "SEAFOOD_ORDERS"},
	}},
	{ID: "screen-8", GroupID: DefaultGroupID, Columns: []ScreenColumn{
		{Notice: &NoticeBlock{Title: "ORDER AHEAD", Lines: []string{"FIND US ON DOORDASH"}}},
	}},
}

var screensByID = func() map[string]Screen {
	m := make(map[string]Screen, len(screenRegistry))
	for _, s := range screenRegistry {
		m[s.ID] = s
	}
	return m
}()

// ScreenByID looks up a screen definition.
func ScreenByID(id string) (Screen, bool) {
	s, ok := screensByID[id]
	return s, ok
}

// Screens returns every registered screen in wall order.
func Screens() []Screen {
	out := make([]Screen, len(screenRegistry))
	copy(out, screenRegistry)
	return out
}

// ScreensForGroup returns the screens owned by a group, in wall order.
func ScreensForGroup(groupID string) []Screen {
	var out []Screen
	for _, s := range screenRegistry {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out
}
