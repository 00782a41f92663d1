package board

import "time"

// MonthDay is a year-periodic calendar position encoded as month*100+day,
// so "12-27" becomes 1227 and ranges compare numerically.
type MonthDay int

// NewMonthDay builds a MonthDay from a month (1-12) and day (1-31).
func NewMonthDay(month time.Month, day int) MonthDay {
	return MonthDay(int(month)*100 + day)
}

// MonthDayOf extracts the MonthDay of a point in time.
func MonthDayOf(t time.Time) MonthDay {
	return NewMonthDay(t.Month(), t.Day())
}

// SeasonalRule maps a date window to a theme. Rules are evaluated in
// declaration order and the first match wins, which lets a later-starting
// campaign deliberately take priority inside an overlapping window.
type SeasonalRule struct {
	ThemeID string
	Start   MonthDay
	End     MonthDay
}

// Seasonal windows in priority order. Halloween overlaps the tail of the
// awareness window on purpose; New Year's wraps across the year boundary.
var seasonalRules = []SeasonalRule{
	{ThemeID: "new-years-gold", Start: 1227, End: 102},
	{ThemeID: "valentines-pink", Start: 207, End: 215},
	{ThemeID: "st-patricks-green", Start: 310, End: 318},
	{ThemeID: "easter-spring", Start: 325, End: 407},
	{ThemeID: "mothers-day", Start: 505, End: 515},
	{ThemeID: "memorial-day", Start: 520, End: 531},
	{ThemeID: "fathers-day", Start: 610, End: 620},
	{ThemeID: "independence-day", Start: 701, End: 707},
	{ThemeID: "labor-day", Start: 901, End: 910},
	{ThemeID: "breast-cancer-pink", Start: 1001, End: 1020},
	{ThemeID: "halloween-spooky", Start: 1021, End: 1031},
	{ThemeID: "thanksgiving-harvest", Start: 1120, End: 1128},
	{ThemeID: "christmas-classic", Start: 1201, End: 1226},
}

// SeasonalRules returns the active rule set in priority order.
func SeasonalRules() []SeasonalRule {
	out := make([]SeasonalRule, len(seasonalRules))
	copy(out, seasonalRules)
	return out
}

// inRange reports whether today falls inside [start, end], both ends
// inclusive. A start greater than end is a wraparound window crossing the
// year boundary (e.g. Dec 27 through Jan 2).
func inRange(today, start, end MonthDay) bool {
	if start <= end {
		return today >= start && today <= end
	}
	return today >= start || today <= end
}

// ResolveActiveTheme returns the theme for today: the target of the first
// seasonal rule whose window contains today, else the base theme unchanged.
// Seasonal windows override the base even when it was applied manually.
func ResolveActiveTheme(baseThemeID string, today MonthDay) string {
	return resolveWithRules(baseThemeID, today, seasonalRules)
}

func resolveWithRules(baseThemeID string, today MonthDay, rules []SeasonalRule) string {
	for _, r := range rules {
		if inRange(today, r.Start, r.End) {
			return r.ThemeID
		}
	}
	return baseThemeID
}
