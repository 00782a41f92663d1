package board

import (
	"context"
	"testing"

	aqm "github.com/appetiteclub/apt"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("populatesEmptyStore", func(t *testing.T) {
		sections := NewMockSectionRepo()
		groups := NewMockGroupRepo()

		if err := Seed(ctx, sections, groups, aqm.NewNoopLogger()); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}

		stored, err := sections.ListSections(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(stored) != 7 {
			t.Errorf("got %d sections, want 7", len(stored))
		}

		hotDogs, _ := sections.GetSectionByKey(ctx, "HOT_DOGS")
		if hotDogs == nil {
			t.Fatal("HOT_DOGS not seeded")
		}
		if len(hotDogs.Items) != 7 {
			t.Errorf("HOT_DOGS has %d items, want 7", len(hotDogs.Items))
		}

		group, _ := groups.GetGroup(ctx, DefaultGroupID)
		if group == nil {
			t.Fatal("default group not seeded")
		}
		if group.ThemeID != DefaultThemeID {
			t.Errorf("default group theme = %q, want %q", group.ThemeID, DefaultThemeID)
		}
	})

	t.Run("skipsExistingSections", func(t *testing.T) {
		sections := NewMockSectionRepo()
		sections.AddSection("HOT_DOGS", "HOT DOGS",
			MenuItem{Code: "custom-dog", Label: "CUSTOM DOG", Price: "9.99", Active: true},
		)
		groups := NewMockGroupRepo()

		if err := Seed(ctx, sections, groups, aqm.NewNoopLogger()); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}

		hotDogs, _ := sections.GetSectionByKey(ctx, "HOT_DOGS")
		if len(hotDogs.Items) != 1 || hotDogs.Items[0].Code != "custom-dog" {
			t.Errorf("operator edits were overwritten: %+v", hotDogs.Items)
		}
	})

	t.Run("keepsExistingGroupTheme", func(t *testing.T) {
		sections := NewMockSectionRepo()
		groups := NewMockGroupRepo()
		groups.AddGroup(DefaultGroupID, "coke-red")

		if err := Seed(ctx, sections, groups, aqm.NewNoopLogger()); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}

		group, _ := groups.GetGroup(ctx, DefaultGroupID)
		if group.ThemeID != "coke-red" {
			t.Errorf("group theme = %q, want coke-red preserved", group.ThemeID)
		}
	})

	t.Run("secondRunIsNoop", func(t *testing.T) {
		sections := NewMockSectionRepo()
		groups := NewMockGroupRepo()

		if err := Seed(ctx, sections, groups, aqm.NewNoopLogger()); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}
		if err := Seed(ctx, sections, groups, aqm.NewNoopLogger()); err != nil {
			t.Fatalf("second Seed() error = %v", err)
		}

		stored, _ := sections.ListSections(ctx)
		if len(stored) != 7 {
			t.Errorf("got %d sections after reseed, want 7", len(stored))
		}
		for _, s := range stored {
			if len(s.Items) == 0 {
				t.Errorf("section %s lost its items on reseed", s.Key)
			}
		}
	})

	t.Run("screenSectionsAllSeeded", func(t *testing.T) {
		sections := NewMockSectionRepo()
		groups := NewMockGroupRepo()
		if err := Seed(ctx, sections, groups, aqm.NewNoopLogger()); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}

		for _, screen := range Screens() {
			for _, col := range screen.Columns {
				if col.SectionKey == "" {
					continue
				}
				s, err := sections.GetSectionByKey(ctx, col.SectionKey)
				if err != nil {
					t.Fatal(err)
				}
				if s == nil {
					t.Errorf("screen %s references unseeded section %s", screen.ID, col.SectionKey)
				}
			}
		}
	})
}
