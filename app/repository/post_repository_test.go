package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/janmeier/inkwell/app/models"
)

func TestPostListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, alice.ID, "oldest", base)
	createTestPost(t, db, alice.ID, "middle", base.Add(time.Hour))
	createTestPost(t, db, alice.ID, "newest", base.Add(2*time.Hour))

	posts, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Text)
	assert.Equal(t, "middle", posts[1].Text)
	assert.Equal(t, "oldest", posts[2].Text)
	assert.Equal(t, "alice", posts[0].User.Name)
}

func TestPostListPaginationOffsets(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		createTestPost(t, db, alice.ID, fmt.Sprintf("post %02d", i), base.Add(time.Duration(i)*time.Minute))
	}

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)

	first, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, "post 12", first[0].Text)

	second, err := repo.List(10, 10)
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, "post 02", second[0].Text)
	assert.Equal(t, "post 00", second[2].Text)
}

func TestPostListByGroupAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	groups := NewGroupRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	cats := &models.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, groups.Create(cats))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	grouped := &models.Post{Text: "in group", UserID: alice.ID, GroupID: &cats.ID, PublishedAt: base}
	require.NoError(t, repo.Create(grouped))
	createTestPost(t, db, alice.ID, "no group", base.Add(time.Minute))
	createTestPost(t, db, bob.ID, "by bob", base.Add(2*time.Minute))

	byGroup, err := repo.ListByGroup(cats.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, byGroup, 1)
	assert.Equal(t, "in group", byGroup[0].Text)
	require.NotNil(t, byGroup[0].Group)
	assert.Equal(t, "cats", byGroup[0].Group.Slug)

	count, err := repo.CountByGroup(cats.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	byUser, err := repo.ListByUser(bob.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "by bob", byUser[0].Text)

	userCount, err := repo.CountByUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), userCount)
}

func TestPostUpdateTouchesOnlyMutableFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := createTestPost(t, db, alice.ID, "before", base)

	post.Text = "after"
	require.NoError(t, repo.Update(post))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Equal(t, alice.ID, got.UserID)
	assert.True(t, got.PublishedAt.Equal(base))
}

func TestPostDeleteRemovesComments(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "soon gone", time.Now())

	require.NoError(t, comments.Create(&models.Comment{Text: "first", UserID: bob.ID, PostID: post.ID}))
	require.NoError(t, comments.Create(&models.Comment{Text: "second", UserID: alice.ID, PostID: post.ID}))

	require.NoError(t, posts.Delete(post.ID))

	_, err := posts.GetByID(post.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	left, err := comments.CountByPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)
}

func TestPostFeedCoversFollowedAuthorsOnly(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	follows := NewFollowRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, alice.ID, "from alice", base)
	createTestPost(t, db, bob.ID, "from bob", base.Add(time.Minute))
	createTestPost(t, db, carol.ID, "from carol", base.Add(2*time.Minute))

	require.NoError(t, follows.Create(carol.ID, alice.ID))
	require.NoError(t, follows.Create(carol.ID, bob.ID))

	feed, err := posts.ListFeed(carol.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "from bob", feed[0].Text)
	assert.Equal(t, "from alice", feed[1].Text)

	count, err := posts.CountFeed(carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	empty, err := posts.ListFeed(alice.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "discuss", time.Now())

	require.NoError(t, comments.Create(&models.Comment{Text: "first", UserID: alice.ID, PostID: post.ID}))
	require.NoError(t, comments.Create(&models.Comment{Text: "second", UserID: alice.ID, PostID: post.ID}))

	list, err := comments.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
	assert.Equal(t, "alice", list[0].User.Name)
}
