package repository

import (
	"github.com/janmeier/inkwell/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByName(name string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Count() (int64, error)
}

// GroupRepository defines the interface for group-related database operations
type GroupRepository interface {
	Create(group *models.Group) error
	GetByID(id uint) (*models.Group, error)
	GetBySlug(slug string) (*models.Group, error)
	GetAll() ([]models.Group, error)
	SlugExists(slug string) (bool, error)
	Delete(id uint) error
}

// PostRepository defines the interface for post-related database operations.
// Every listing is ordered by publication timestamp descending.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Post, error)
	ListByGroup(groupID uint, offset, limit int) ([]models.Post, error)
	ListByUser(userID uint, offset, limit int) ([]models.Post, error)
	ListFeed(userID uint, offset, limit int) ([]models.Post, error)
	Count() (int64, error)
	CountByGroup(groupID uint) (int64, error)
	CountByUser(userID uint) (int64, error)
	CountFeed(userID uint) (int64, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID uint) ([]models.Comment, error)
	CountByPost(postID uint) (int64, error)
}

// FollowRepository defines the interface for follow-edge operations. Create
// and Delete are idempotent.
type FollowRepository interface {
	Create(userID, authorID uint) error
	Delete(userID, authorID uint) error
	Exists(userID, authorID uint) (bool, error)
	CountFollowers(authorID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	Group   GroupRepository
	Post    PostRepository
	Comment CommentRepository
	Follow  FollowRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Group:   NewGroupRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
	}
}
