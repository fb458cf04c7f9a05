package repository

import (
	"testing"
	"time"

	"connectly/internal/access"
	"connectly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGetByID(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "postauthor")

	post := &models.Post{Content: "first", Privacy: models.PrivacyPublic, UserID: author.ID}
	require.NoError(t, repo.Create(ctx(), post))
	require.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
	assert.Equal(t, "postauthor", got.User.Username)
	assert.Zero(t, got.LikesCount)
	assert.Zero(t, got.CommentsCount)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(ctx(), 42)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestPostRepository_CountsExcludeDeletedComments(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "counted")
	post := seedPost(t, db, author.ID, "counted post", models.PrivacyPublic)

	require.NoError(t, db.Create(&models.Like{UserID: author.ID, PostID: post.ID}).Error)
	keep := &models.Comment{Content: "keep", UserID: author.ID, PostID: post.ID}
	drop := &models.Comment{Content: "drop", UserID: author.ID, PostID: post.ID}
	require.NoError(t, db.Create(keep).Error)
	require.NoError(t, db.Create(drop).Error)
	require.NoError(t, db.Delete(drop).Error)

	got, err := repo.GetByID(ctx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
	assert.Equal(t, 1, got.CommentsCount)
}

func TestPostRepository_List_OrderAndScope(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "feedauthor")
	reader := seedUser(t, db, "feedreader")

	older := seedPost(t, db, author.ID, "older", models.PrivacyPublic)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := seedPost(t, db, author.ID, "newer", models.PrivacyPublic)
	seedPost(t, db, author.ID, "hidden", models.PrivacyPrivate)

	posts, err := repo.List(ctx(), viewerFor(reader), 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestPostRepository_List_Pagination(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "paged")

	for i := 0; i < 5; i++ {
		seedPost(t, db, author.ID, "post", models.PrivacyPublic)
	}

	first, err := repo.List(ctx(), access.Anonymous(), 2, 0)
	require.NoError(t, err)
	second, err := repo.List(ctx(), access.Anonymous(), 2, 2)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	// Identical timestamps fall back to id DESC, keeping pages stable.
	assert.Greater(t, first[0].ID, first[1].ID)
	assert.Greater(t, first[1].ID, second[0].ID)
}

func TestPostRepository_GetByUserID_AppliesViewerScope(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "profileauthor")
	followerUser := seedUser(t, db, "profilefollower")
	require.NoError(t, db.Create(&models.Follow{FollowerID: followerUser.ID, FollowingID: author.ID}).Error)

	seedPost(t, db, author.ID, "pub", models.PrivacyPublic)
	seedPost(t, db, author.ID, "fol", models.PrivacyFollowers)
	seedPost(t, db, author.ID, "priv", models.PrivacyPrivate)

	anon, err := repo.GetByUserID(ctx(), author.ID, access.Anonymous(), 20, 0)
	require.NoError(t, err)
	assert.Len(t, anon, 1)

	followed, err := repo.GetByUserID(ctx(), author.ID, viewerFor(followerUser), 20, 0)
	require.NoError(t, err)
	assert.Len(t, followed, 2)

	own, err := repo.GetByUserID(ctx(), author.ID, viewerFor(author), 20, 0)
	require.NoError(t, err)
	assert.Len(t, own, 3)
}

func TestPostRepository_Delete_SoftDeletes(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "deleter")
	post := seedPost(t, db, author.ID, "doomed", models.PrivacyPublic)

	require.NoError(t, repo.Delete(ctx(), post.ID))

	_, err := repo.GetByID(ctx(), post.ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	// The row itself survives with deleted_at set.
	var raw models.Post
	require.NoError(t, db.Unscoped().First(&raw, post.ID).Error)
	assert.True(t, raw.DeletedAt.Valid)
}

func TestPostRepository_Update(t *testing.T) {
	t.Parallel()
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "updater")
	post := seedPost(t, db, author.ID, "before", models.PrivacyPublic)

	post.Content = "after"
	post.Privacy = models.PrivacyFollowers
	require.NoError(t, repo.Update(ctx(), post))

	got, err := repo.GetByID(ctx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Content)
	assert.Equal(t, models.PrivacyFollowers, got.Privacy)
}
