package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/glenwooddrivein/menuboard/internal/board"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SectionRepo implements the board.SectionRepo interface using PostgreSQL.
type SectionRepo struct {
	store *Store
}

// NewSectionRepo creates a new PostgreSQL section repository.
func NewSectionRepo(store *Store) *SectionRepo {
	return &SectionRepo{store: store}
}

// ListSections returns all sections with their items preloaded, ordered by
// key.
func (r *SectionRepo) ListSections(ctx context.Context) ([]board.MenuSection, error) {
	var sections []board.MenuSection
	err := r.store.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, label")
		}).
		Order("key").
		Find(&sections).Error
	if err != nil {
		return nil, fmt.Errorf("cannot list sections: %w", err)
	}
	return sections, nil
}

// GetSectionByKey returns the section with the given key, or nil when it
// does not exist.
func (r *SectionRepo) GetSectionByKey(ctx context.Context, key string) (*board.MenuSection, error) {
	var section board.MenuSection
	err := r.store.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, label")
		}).
		Where("key = ?", key).
		First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot get section %s: %w", key, err)
	}
	return &section, nil
}

// UpsertSection creates the section or refreshes its title, returning the
// stored row.
func (r *SectionRepo) UpsertSection(ctx context.Context, key, title string) (*board.MenuSection, error) {
	section := board.MenuSection{Key: key, Title: title}
	err := r.store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
		}).
		Create(&section).Error
	if err != nil {
		return nil, fmt.Errorf("cannot upsert section %s: %w", key, err)
	}

	// The conflict path keeps the existing id, so re-read the row.
	var stored board.MenuSection
	if err := r.store.db.WithContext(ctx).Where("key = ?", key).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("cannot read back section %s: %w", key, err)
	}
	return &stored, nil
}

// UpsertItem creates or replaces the item identified by (section, code).
func (r *SectionRepo) UpsertItem(ctx context.Context, item *board.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item cannot be nil")
	}

	err := r.store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section_id"}, {Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "price", "active", "sort_order", "updated_at"}),
		}).
		Create(item).Error
	if err != nil {
		return fmt.Errorf("cannot upsert item %s: %w", item.Code, err)
	}
	return nil
}

// DeleteItemsExcept removes every item of the section whose code is not in
// keep. An empty keep list clears the section.
func (r *SectionRepo) DeleteItemsExcept(ctx context.Context, sectionID uuid.UUID, keep []string) error {
	db := r.store.db.WithContext(ctx).Where("section_id = ?", sectionID)
	if len(keep) > 0 {
		db = db.Where("code NOT IN ?", keep)
	}
	if err := db.Delete(&board.MenuItem{}).Error; err != nil {
		return fmt.Errorf("cannot delete items of section %s: %w", sectionID, err)
	}
	return nil
}
