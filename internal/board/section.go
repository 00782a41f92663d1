package board

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuSection is a named group of menu items owned exclusively by the
// section. Sections are created on first reference: an admin save or a seed
// that mentions an unknown key creates it with a title derived from the key.
type MenuSection struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Key       string     `json:"key" gorm:"uniqueIndex;not null"`
	Title     string     `json:"title" gorm:"not null"`
	Items     []MenuItem `json:"items" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MenuItem is one priced row on a board. Price is free text: it may carry
// "M/P" (market price) or light formatting, so it is never parsed as a number.
type MenuItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SectionID uuid.UUID `json:"section_id" gorm:"type:uuid;not null;uniqueIndex:ux_menu_items_section_code"`
	Code      string    `json:"code" gorm:"not null;uniqueIndex:ux_menu_items_section_code"`
	Label     string    `json:"label" gorm:"not null"`
	Price     string    `json:"price" gorm:"not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is an independently themed cluster of screens. ThemeID empty means
// no theme assigned yet; readers fall back to DefaultThemeID.
type Group struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ThemeID   string    `json:"themeId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultGroupID is the single group of the minimal deployment.
const DefaultGroupID = "default"

// BeforeCreate assigns an identifier when the caller did not.
func (s *MenuSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// BeforeCreate assigns an identifier when the caller did not.
func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TitleForKey derives a human section title from a machine key,
// e.g. "HOT_DOGS" becomes "HOT DOGS".
func TitleForKey(key string) string {
	out := []rune(key)
	for i, r := range out {
		if r == '_' {
			out[i] = ' '
		}
	}
	return string(out)
}
