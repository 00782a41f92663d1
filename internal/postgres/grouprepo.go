package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/glenwooddrivein/menuboard/internal/board"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepo implements the board.GroupRepo interface using PostgreSQL.
type GroupRepo struct {
	store *Store
}

// NewGroupRepo creates a new PostgreSQL group repository.
func NewGroupRepo(store *Store) *GroupRepo {
	return &GroupRepo{store: store}
}

// ListGroups returns all groups ordered by id.
func (r *GroupRepo) ListGroups(ctx context.Context) ([]board.Group, error) {
	var groups []board.Group
	if err := r.store.db.WithContext(ctx).Order("id").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("cannot list groups: %w", err)
	}
	return groups, nil
}

// GetGroup returns the group with the given id, or nil when it does not
// exist.
func (r *GroupRepo) GetGroup(ctx context.Context, id string) (*board.Group, error) {
	var group board.Group
	err := r.store.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot get group %s: %w", id, err)
	}
	return &group, nil
}

// UpsertGroupTheme assigns themeID to the group, creating the group when it
// is first referenced.
func (r *GroupRepo) UpsertGroupTheme(ctx context.Context, id, themeID string) (*board.Group, error) {
	group := board.Group{ID: id, ThemeID: themeID}
	err := r.store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"theme_id", "updated_at"}),
		}).
		Create(&group).Error
	if err != nil {
		return nil, fmt.Errorf("cannot upsert group %s: %w", id, err)
	}

	var stored board.Group
	if err := r.store.db.WithContext(ctx).First(&stored, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("cannot read back group %s: %w", id, err)
	}
	return &stored, nil
}
