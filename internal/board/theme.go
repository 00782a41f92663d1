package board

// DefaultThemeID is used whenever a group has no theme assigned or a
// resolved theme identifier is missing from the catalog.
const DefaultThemeID = "classic-blue"

// Theme is a fixed set of color-role tokens for rendering a price board.
// Themes are static configuration, never user-edited.
type Theme struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Background   string `json:"background"`
	HeaderBg     string `json:"headerBg"`
	HeaderText   string `json:"headerText"`
	HeaderBorder string `json:"headerBorder"`
	RowText      string `json:"rowText"`
	PriceText    string `json:"priceText"`
	Accent       string `json:"accent"`
	NoticeBg     string `json:"noticeBg"`
	NoticeText   string `json:"noticeText"`
}

// ThemeRef is the id/label pair exposed by the theme listing endpoint.
type ThemeRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var themeCatalog = []Theme{
	{
		ID:           "classic-blue",
		Label:        "Classic Blue",
		Background:   "#007bff",
		HeaderBg:     "#00cb31",
		HeaderText:   "#ffffff",
		HeaderBorder: "#003b7a",
		RowText:      "#ffffff",
		PriceText:    "#ffffff",
		Accent:       "#005fcc",
		NoticeBg:     "#003b7a",
		NoticeText:   "#ffffff",
	},
	{
		ID:           "coke-red",
		Label:        "Coca-Cola Red",
		Background:   "#b80000",
		HeaderBg:     "#ff0000",
		HeaderText:   "#ffffff",
		HeaderBorder: "#7a0000",
		RowText:      "#ffffff",
		PriceText:    "#ffe08a",
		Accent:       "#330000",
		NoticeBg:     "#ffffff",
		NoticeText:   "#b80000",
	},
	{
		ID:           "breast-cancer-pink",
		Label:        "Breast Cancer Awareness",
		Background:   "#ffb3d9",
		HeaderBg:     "#ff4d94",
		HeaderText:   "#ffffff",
		HeaderBorder: "#7a0033",
		RowText:      "#3a0019",
		PriceText:    "#3a0019",
		Accent:       "#ffe6f2",
		NoticeBg:     "#7a0033",
		NoticeText:   "#ffe6f2",
	},
	{
		ID:           "christmas-classic",
		Label:        "Christmas Classic",
		Background:   "#0b3d0b",
		HeaderBg:     "#c8102e",
		HeaderText:   "#ffffff",
		HeaderBorder: "#f5d547",
		RowText:      "#ffffff",
		PriceText:    "#f5d547",
		Accent:       "#145214",
		NoticeBg:     "#f5d547",
		NoticeText:   "#3a0a0a",
	},
	{
		ID:           "valentines-pink",
		Label:        "Valentine's Day",
		Background:   "#ffccdd",
		HeaderBg:     "#ff3366",
		HeaderText:   "#ffffff",
		HeaderBorder: "#990033",
		RowText:      "#661122",
		PriceText:    "#661122",
		Accent:       "#ffe6f0",
		NoticeBg:     "#990033",
		NoticeText:   "#ffe6f0",
	},
	{
		ID:           "st-patricks-green",
		Label:        "St. Patrick's Day",
		Background:   "#005f2f",
		HeaderBg:     "#00a652",
		HeaderText:   "#ffffff",
		HeaderBorder: "#f2c94c",
		RowText:      "#ffffff",
		PriceText:    "#f2c94c",
		Accent:       "#0b8545",
		NoticeBg:     "#f2c94c",
		NoticeText:   "#004220",
	},
	{
		ID:           "easter-spring",
		Label:        "Easter Spring",
		Background:   "#e6b3ff",
		HeaderBg:     "#9966ff",
		HeaderText:   "#ffffff",
		HeaderBorder: "#ffeb99",
		RowText:      "#4d2673",
		PriceText:    "#4d2673",
		Accent:       "#f2e6ff",
		NoticeBg:     "#ffeb99",
		NoticeText:   "#4d2673",
	},
	{
		ID:           "independence-day",
		Label:        "Independence Day",
		Background:   "#002868",
		HeaderBg:     "#bf0a30",
		HeaderText:   "#ffffff",
		HeaderBorder: "#ffffff",
		RowText:      "#ffffff",
		PriceText:    "#ffffff",
		Accent:       "#003d99",
		NoticeBg:     "#ffffff",
		NoticeText:   "#bf0a30",
	},
	{
		ID:           "halloween-spooky",
		Label:        "Halloween",
		Background:   "#1a0a00",
		HeaderBg:     "#ff6600",
		HeaderText:   "#1a0a00",
		HeaderBorder: "#9933ff",
		RowText:      "#ff6600",
		PriceText:    "#ffcc00",
		Accent:       "#331400",
		NoticeBg:     "#9933ff",
		NoticeText:   "#ffcc00",
	},
	{
		ID:           "thanksgiving-harvest",
		Label:        "Thanksgiving",
		Background:   "#8b4513",
		HeaderBg:     "#ff8c00",
		HeaderText:   "#3d1f00",
		HeaderBorder: "#d4a017",
		RowText:      "#fff8dc",
		PriceText:    "#ffd700",
		Accent:       "#a0522d",
		NoticeBg:     "#3d1f00",
		NoticeText:   "#ffd700",
	},
	{
		ID:           "new-years-gold",
		Label:        "New Year's Eve",
		Background:   "#0a0a1f",
		HeaderBg:     "#1a1a3d",
		HeaderText:   "#ffd700",
		HeaderBorder: "#ffd700",
		RowText:      "#ffffff",
		PriceText:    "#ffd700",
		Accent:       "#14142e",
		NoticeBg:     "#ffd700",
		NoticeText:   "#0a0a1f",
	},
	{
		ID:           "memorial-day",
		Label:        "Memorial Day",
		Background:   "#1c2a3d",
		HeaderBg:     "#b22234",
		HeaderText:   "#ffffff",
		HeaderBorder: "#3c3b6e",
		RowText:      "#ffffff",
		PriceText:    "#f0f0f0",
		Accent:       "#2d4259",
		NoticeBg:     "#3c3b6e",
		NoticeText:   "#ffffff",
	},
	{
		ID:           "labor-day",
		Label:        "Labor Day",
		Background:   "#1f3a5f",
		HeaderBg:     "#4472c4",
		HeaderText:   "#ffffff",
		HeaderBorder: "#c55a11",
		RowText:      "#ffffff",
		PriceText:    "#ffd966",
		Accent:       "#2c5282",
		NoticeBg:     "#c55a11",
		NoticeText:   "#ffffff",
	},
	{
		ID:           "mothers-day",
		Label:        "Mother's Day",
		Background:   "#ffd6e8",
		HeaderBg:     "#ff69b4",
		HeaderText:   "#ffffff",
		HeaderBorder: "#8b4789",
		RowText:      "#5c2a5c",
		PriceText:    "#5c2a5c",
		Accent:       "#ffe6f2",
		NoticeBg:     "#8b4789",
		NoticeText:   "#ffffff",
	},
	{
		ID:           "fathers-day",
		Label:        "Father's Day",
		Background:   "#1c3d5a",
		HeaderBg:     "#4a7ba7",
		HeaderText:   "#ffffff",
		HeaderBorder: "#6b4423",
		RowText:      "#ffffff",
		PriceText:    "#d4a574",
		Accent:       "#2b5273",
		NoticeBg:     "#6b4423",
		NoticeText:   "#ffffff",
	},
}

var themesByID = func() map[string]Theme {
	m := make(map[string]Theme, len(themeCatalog))
	for _, t := range themeCatalog {
		m[t.ID] = t
	}
	return m
}()

// ThemeByID looks up a theme in the catalog.
func ThemeByID(id string) (Theme, bool) {
	t, ok := themesByID[id]
	return t, ok
}

// Themes returns the full catalog in declaration order.
func Themes() []Theme {
	out := make([]Theme, len(themeCatalog))
	copy(out, themeCatalog)
	return out
}

// ThemeRefs returns the id/label pairs for the admin theme picker.
func ThemeRefs() []ThemeRef {
	out := make([]ThemeRef, 0, len(themeCatalog))
	for _, t := range themeCatalog {
		out = append(out, ThemeRef{ID: t.ID, Label: t.Label})
	}
	return out
}
