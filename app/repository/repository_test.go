package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/janmeier/inkwell/app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user, err := models.CreateUser(name, name+"@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, text string, publishedAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{Text: text, UserID: userID, PublishedAt: publishedAt}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestRepositoryFactoryReturnsSameInstance(t *testing.T) {
	db := setupTestDB(t)
	InitializeFactory(db)

	first := GetGlobalRepositories()
	second := GetGlobalRepositories()
	require.Same(t, first, second)
	require.NotNil(t, first.Post)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "alice")

	byName, err := repo.GetByName("alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByName("nobody")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroupDeleteKeepsPostsWithoutGroup(t *testing.T) {
	db := setupTestDB(t)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	group := &models.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, groups.Create(group))

	post := &models.Post{Text: "meow", UserID: alice.ID, GroupID: &group.ID}
	require.NoError(t, posts.Create(post))

	require.NoError(t, groups.Delete(group.ID))

	_, err := groups.GetBySlug("cats")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	survivor, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	require.Nil(t, survivor.GroupID)
	require.Equal(t, "meow", survivor.Text)
}
