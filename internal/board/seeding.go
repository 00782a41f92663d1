package board

import (
	"context"
	"fmt"

	aqm "github.com/appetiteclub/apt"
)

type seedItem struct {
	code  string
	label string
	price string
}

// seedMenu is the opening-day menu. Sections already present in the store
// are left untouched so operator edits survive restarts.
var seedMenu = []struct {
	key   string
	items []seedItem
}{
	{"HOT_DOGS", []seedItem{
		{"hotdog", "HOT DOG", "6.25"},
		{"red-hotdog", "RED HOT DOG", "6.75"},
		{"cheese-dog", "CHEESE DOG", "7.25"},
		{"chili-dog", "CHILI DOG", "7.25"},
		{"chili-cheese", "CHILI/CHEESE DOG", "7.95"},
		{"add-bacon", "ADD BACON", "1.65"},
		{"grilled-onions", "GRILLED ONIONS", "1.65"},
	}},
	{"BURGERS", []seedItem{
		{"hamburger", "HAMBURGER", "10.35"},
		{"cheeseburger", "CHEESEBURGER", "7.85"},
		{"big-boy", "BIG BOY BURGER (2 PATTIES)", "11.00"},
		{"big-boy-cheese", "BIG BOY CHEESEBURGER", "11.75"},
	}},
	{"SIDES_LEFT", []seedItem{
		{"fries", "FRENCH FRIES", "4.60"},
		{"cheese-fries", "CHEESE FRIES", "6.35"},
		{"chili-cheese-fries", "CHILI CHEESE FRIES", "8.00"},
		{"sweet-potato", "SWEET POTATO FRIES", "7.00"},
		{"rings", "ONION RINGS", "8.50"},
		{"frings", "FRINGS (1/2 FRIES, 1/2 RINGS)", "8.75"},
	}},
	{"SIDES_RIGHT", []seedItem{
		{"bites", "BUFFALO CHICKEN BITES", "9.00"},
		{"coleslaw", "COLESLAW", "6.00"},
		{"mozz-sticks", "MOZZARELLA STICKS", "8.50"},
		{"zucchini", "ZUCCHINI", "5.50"},
		{"add-cheese", "ADD CHEESE", "1.50"},
		{"add-bacon-or-onion", "ADD BACON OR GRILLED ONION", "1.65"},
	}},
	{"SANDWICHES", []seedItem{
		{"grilled-cheese", "GRILLED CHEESE", "4.65"},
		{"blt", "BLT", "8.00"},
		{"fried-chicken", "FRIED CHICKEN", "7.75"},
		{"grilled-chicken", "GRILLED CHICKEN", "8.25"},
		{"tuna", "TUNA", "8.00"},
		{"fish", "FISH", "12.00"},
		{"chicken-fingers", "CHICKEN FINGER ORDER", "9.75"},
		{"chicken-plate", "CHICKEN FINGER PLATE", "14.00"},
	}},
	{"SEAFOOD_ORDERS", []seedItem{
		{"clam-strip", "CLAM STRIP", "19.50"},
		{"whole-clams", "WHOLE CLAMS", "27.00"},
		{"scallops", "SCALLOPS", "24.00"},
		{"shrimp", "SHRIMP", "16.00"},
		{"lobster-roll", "LOBSTER ROLL", "26.50"},
		{"fish-plate", "FISH PLATE", "23.00"},
		{"soft-shell", "SOFT SHELL CRAB (SEASONAL)", "M/P"},
	}},
	{"BEVERAGES", []seedItem{
		{"soda", "SODA", "2.75"},
		{"bottle-soda", "BOTTLED SODA (20OZ)", "2.60"},
		{"bottle-water", "BOTTLED WATER (20OZ)", "2.35"},
		{"ice-tea", "ICE TEA", "2.65"},
		{"powerade", "POWERADE", "2.50"},
	}},
}

// Seed loads the opening-day menu and the default group into an empty
// store. It is idempotent: existing sections and groups are skipped, never
// overwritten.
func Seed(ctx context.Context, sections SectionRepo, groups GroupRepo, logger aqm.Logger) error {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}

	for _, s := range seedMenu {
		existing, err := sections.GetSectionByKey(ctx, s.key)
		if err != nil {
			return fmt.Errorf("cannot check section %s: %w", s.key, err)
		}
		if existing != nil {
			continue
		}

		section, err := sections.UpsertSection(ctx, s.key, TitleForKey(s.key))
		if err != nil {
			return fmt.Errorf("cannot seed section %s: %w", s.key, err)
		}
		for index, it := range s.items {
			item := &MenuItem{
				SectionID: section.ID,
				Code:      it.code,
				Label:     it.label,
				Price:     it.price,
				Active:    true,
				SortOrder: index,
			}
			if err := sections.UpsertItem(ctx, item); err != nil {
				return fmt.Errorf("cannot seed item %s/%s: %w", s.key, it.code, err)
			}
		}
		logger.Info("seeded menu section", "key", s.key, "items", len(s.items))
	}

	group, err := groups.GetGroup(ctx, DefaultGroupID)
	if err != nil {
		return fmt.Errorf("cannot check default group: %w", err)
	}
	if group == nil {
		if _, err := groups.UpsertGroupTheme(ctx, DefaultGroupID, DefaultThemeID); err != nil {
			return fmt.Errorf("cannot seed default group: %w", err)
		}
		logger.Info("seeded default group", "theme", DefaultThemeID)
	}

	return nil
}
