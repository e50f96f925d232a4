package repository

import (
	"github.com/janmeier/inkwell/app/models"
	"gorm.io/gorm"
)

// postListOrder is the default ordering for every post listing: newest first,
// id as tiebreak for posts published in the same instant.
const postListOrder = "published_at DESC, id DESC"

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post in the database
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by its ID with author and group preloaded
func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update persists the mutable fields of a post. Author and publication
// timestamp are set once at creation and never written again.
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Model(&models.Post{}).Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"text":       post.Text,
			"group_id":   post.GroupID,
			"image_path": post.ImagePath,
		}).Error
}

// Delete removes a post and all its comments in one transaction.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// List retrieves a page of all posts
func (r *postRepository) List(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Group").
		Order(postListOrder).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListByGroup retrieves a page of posts filed under a group
func (r *postRepository) ListByGroup(groupID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Group").Where("group_id = ?", groupID).
		Order(postListOrder).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListByUser retrieves a page of posts written by a user
func (r *postRepository) ListByUser(userID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Group").Where("user_id = ?", userID).
		Order(postListOrder).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// ListFeed retrieves a page of posts written by the authors the given user
// follows. A user who follows nobody gets an empty slice.
func (r *postRepository) ListFeed(userID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Group").
		Where("user_id IN (?)", r.followedAuthors(userID)).
		Order(postListOrder).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// Count returns the total number of posts
func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// CountByGroup returns the number of posts filed under a group
func (r *postRepository) CountByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// CountByUser returns the number of posts written by a user
func (r *postRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFeed returns the number of posts in the user's follow feed
func (r *postRepository) CountFeed(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("user_id IN (?)", r.followedAuthors(userID)).Count(&count).Error
	return count, err
}

func (r *postRepository) followedAuthors(userID uint) *gorm.DB {
	return r.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
}
