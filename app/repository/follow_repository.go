package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/janmeier/inkwell/app/models"
)

// followRepository implements the FollowRepository interface
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository instance
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create adds a follow edge. Self-follows are suppressed and duplicates are
// absorbed by the unique pair index, so the call is idempotent even under
// concurrent identical requests.
func (r *followRepository) Create(userID, authorID uint) error {
	if userID == authorID {
		return nil
	}
	f := &models.Follow{UserID: userID, AuthorID: authorID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

// Delete removes a follow edge; deleting a missing edge is a no-op.
func (r *followRepository) Delete(userID, authorID uint) error {
	return r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

// Exists reports whether the user already follows the author
func (r *followRepository) Exists(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFollowers returns how many users follow the given author
func (r *followRepository) CountFollowers(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CountFollowing returns how many authors the given user follows
func (r *followRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
