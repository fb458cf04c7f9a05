package service

import (
	"context"
	"strings"
	"testing"

	"connectly/internal/access"
	"connectly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(comment *commentRepoStub, post *postRepoStub, follow *followRepoStub) *CommentService {
	if comment == nil {
		comment = noopCommentRepo()
	}
	if post == nil {
		post = noopPostRepo()
	}
	if follow == nil {
		follow = noopFollowRepo()
	}
	return NewCommentService(comment, post, follow)
}

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()

	t.Run("creates comment on visible post", func(t *testing.T) {
		t.Parallel()
		var created *models.Comment
		repo := noopCommentRepo()
		repo.createFn = func(_ context.Context, comment *models.Comment) error {
			comment.ID = 4
			created = comment
			return nil
		}
		svc := newCommentService(repo, nil, nil)
		_, err := svc.CreateComment(context.Background(), CreateCommentInput{
			Viewer:  authedViewer(2),
			PostID:  9,
			Content: "nice post",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(2), created.UserID)
		assert.Equal(t, uint(9), created.PostID)
	})

	t.Run("hidden post reported as not found", func(t *testing.T) {
		t.Parallel()
		post := noopPostRepo()
		post.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 10, Privacy: models.PrivacyPrivate}, nil
		}
		svc := newCommentService(nil, post, nil)
		_, err := svc.CreateComment(context.Background(), CreateCommentInput{
			Viewer:  authedViewer(2),
			PostID:  9,
			Content: "nice post",
		})
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()
		svc := newCommentService(nil, nil, nil)
		_, err := svc.CreateComment(context.Background(), CreateCommentInput{Viewer: authedViewer(2), PostID: 9})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("content too long rejected", func(t *testing.T) {
		t.Parallel()
		svc := newCommentService(nil, nil, nil)
		_, err := svc.CreateComment(context.Background(), CreateCommentInput{
			Viewer:  authedViewer(2),
			PostID:  9,
			Content: strings.Repeat("x", 10001),
		})
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		t.Parallel()
		svc := newCommentService(nil, nil, nil)
		_, err := svc.CreateComment(context.Background(), CreateCommentInput{Viewer: access.Anonymous(), PostID: 9, Content: "hi"})
		assertCode(t, err, models.CodeUnauthorized)
	})
}

func TestCommentService_UpdateComment_Ownership(t *testing.T) {
	t.Parallel()

	ownedBy := func(ownerID uint) func(context.Context, uint) (*models.Comment, error) {
		return func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: ownerID, Content: "old"}, nil
		}
	}

	t.Run("owner can update", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = ownedBy(1)
		svc := newCommentService(repo, nil, nil)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{Viewer: authedViewer(1), CommentID: 3, Content: "new"})
		assert.NoError(t, err)
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = ownedBy(10)
		svc := newCommentService(repo, nil, nil)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{Viewer: authedViewer(1), CommentID: 3, Content: "new"})
		assertCode(t, err, models.CodeUnauthorized)
	})

	t.Run("moderator can update", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = ownedBy(10)
		svc := newCommentService(repo, nil, nil)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{Viewer: moderatorViewer(1), CommentID: 3, Content: "new"})
		assert.NoError(t, err)
	})
}

func TestCommentService_DeleteComment_Ownership(t *testing.T) {
	t.Parallel()

	ownedBy := func(ownerID uint) func(context.Context, uint) (*models.Comment, error) {
		return func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: ownerID}, nil
		}
	}

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = ownedBy(1)
		svc := newCommentService(repo, nil, nil)
		_, err := svc.DeleteComment(context.Background(), authedViewer(1), 3)
		assert.NoError(t, err)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = ownedBy(10)
		svc := newCommentService(repo, nil, nil)
		_, err := svc.DeleteComment(context.Background(), authedViewer(1), 3)
		assertCode(t, err, models.CodeUnauthorized)
	})

	t.Run("admin can delete", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = ownedBy(10)
		svc := newCommentService(repo, nil, nil)
		admin := access.Viewer{ID: 1, Role: models.RoleAdmin, Authenticated: true}
		_, err := svc.DeleteComment(context.Background(), admin, 3)
		assert.NoError(t, err)
	})
}
