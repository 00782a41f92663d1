package board

import (
	"testing"
	"time"
)

func TestResolveActiveTheme(t *testing.T) {
	tests := []struct {
		name string
		base string
		day  MonthDay
		want string
	}{
		{
			name: "noWindowKeepsBase",
			base: "classic-blue",
			day:  NewMonthDay(time.August, 15),
			want: "classic-blue",
		},
		{
			name: "manualThemeKeptOutsideWindows",
			base: "coke-red",
			day:  NewMonthDay(time.January, 20),
			want: "coke-red",
		},
		{
			name: "manualThemeOverriddenInsideWindow",
			base: "coke-red",
			day:  NewMonthDay(time.December, 10),
			want: "christmas-classic",
		},
		{
			name: "startBoundaryInclusive",
			base: "classic-blue",
			day:  NewMonthDay(time.February, 7),
			want: "valentines-pink",
		},
		{
			name: "endBoundaryInclusive",
			base: "classic-blue",
			day:  NewMonthDay(time.February, 15),
			want: "valentines-pink",
		},
		{
			name: "dayBeforeWindowKeepsBase",
			base: "classic-blue",
			day:  NewMonthDay(time.February, 6),
			want: "classic-blue",
		},
		{
			name: "dayAfterWindowKeepsBase",
			base: "classic-blue",
			day:  NewMonthDay(time.February, 16),
			want: "classic-blue",
		},
		{
			name: "wraparoundBeforeYearEnd",
			base: "classic-blue",
			day:  NewMonthDay(time.December, 31),
			want: "new-years-gold",
		},
		{
			name: "wraparoundOnNewYear",
			base: "classic-blue",
			day:  NewMonthDay(time.January, 1),
			want: "new-years-gold",
		},
		{
			name: "wraparoundLastDay",
			base: "classic-blue",
			day:  NewMonthDay(time.January, 2),
			want: "new-years-gold",
		},
		{
			name: "dayAfterWraparoundKeepsBase",
			base: "classic-blue",
			day:  NewMonthDay(time.January, 3),
			want: "classic-blue",
		},
		{
			name: "christmasEndsBeforeWraparoundStarts",
			base: "classic-blue",
			day:  NewMonthDay(time.December, 26),
			want: "christmas-classic",
		},
		{
			name: "halloweenTakesOverFromAwareness",
			base: "classic-blue",
			day:  NewMonthDay(time.October, 21),
			want: "halloween-spooky",
		},
		{
			name: "awarenessBeforeHalloween",
			base: "classic-blue",
			day:  NewMonthDay(time.October, 20),
			want: "breast-cancer-pink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveActiveTheme(tt.base, tt.day)
			if got != tt.want {
				t.Errorf("ResolveActiveTheme(%q, %d) = %q, want %q", tt.base, tt.day, got, tt.want)
			}
		})
	}
}

func TestResolveActiveThemeFirstMatchWins(t *testing.T) {
	rules := []SeasonalRule{
		{ThemeID: "first", Start: 601, End: 630},
		{ThemeID: "second", Start: 610, End: 620},
	}

	got := resolveWithRules("base", NewMonthDay(time.June, 15), rules)
	if got != "first" {
		t.Errorf("overlapping rules resolved to %q, want %q", got, "first")
	}
}

func TestSeasonalRulesTargetKnownThemes(t *testing.T) {
	for _, r := range SeasonalRules() {
		if _, ok := ThemeByID(r.ThemeID); !ok {
			t.Errorf("rule %d-%d targets unknown theme %q", r.Start, r.End, r.ThemeID)
		}
	}
}

func TestMonthDayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want MonthDay
	}{
		{
			name: "midYear",
			in:   time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC),
			want: 615,
		},
		{
			name: "yearEnd",
			in:   time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: 1231,
		},
		{
			name: "yearStart",
			in:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 101,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthDayOf(tt.in); got != tt.want {
				t.Errorf("MonthDayOf(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
