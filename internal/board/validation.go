package board

import (
	"fmt"
	"strings"
)

// ValidationError describes one rejected field of an admin payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ItemInput is one item row of an admin save payload. A nil Active means
// active; only an explicit false deactivates, matching the admin form.
type ItemInput struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Price  string `json:"price"`
	Active *bool  `json:"active,omitempty"`
}

// IsActive resolves the tri-state active flag.
func (i ItemInput) IsActive() bool {
	return i.Active == nil || *i.Active
}

// SaveMenuInput is the full section-to-items mapping of an admin save.
// Items absent from a section's list are deleted on save.
type SaveMenuInput map[string][]ItemInput

// ValidateSaveMenu checks the structural shape of a save payload.
func ValidateSaveMenu(input SaveMenuInput) []ValidationError {
	var errs []ValidationError

	if input == nil {
		return append(errs, ValidationError{
			Field:   "menuSections",
			Message: "menuSections missing in body",
		})
	}

	for key, items := range input {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, ValidationError{
				Field:   "menuSections",
				Message: "section key cannot be empty",
			})
			continue
		}
		for i, item := range items {
			if strings.TrimSpace(item.Label) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("menuSections.%s[%d].label", key, i),
					Message: "label is required",
				})
			}
		}
	}

	return errs
}

// ValidateApplyTheme checks a theme assignment against the catalog.
func ValidateApplyTheme(themeID string) []ValidationError {
	if strings.TrimSpace(themeID) == "" {
		return []ValidationError{{
			Field:   "themeId",
			Message: "themeId is required",
		}}
	}
	if _, ok := ThemeByID(themeID); !ok {
		return []ValidationError{{
			Field:   "themeId",
			Message: fmt.Sprintf("unknown theme %q", themeID),
		}}
	}
	return nil
}
