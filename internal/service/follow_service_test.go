package service

import (
	"context"
	"testing"

	"connectly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowService(follow *followRepoStub, user *userRepoStub) *FollowService {
	if follow == nil {
		follow = noopFollowRepo()
	}
	if user == nil {
		user = noopUserRepo()
	}
	return NewFollowService(follow, user)
}

func TestFollowService_FollowUser(t *testing.T) {
	t.Parallel()

	t.Run("creates follow edge", func(t *testing.T) {
		t.Parallel()
		var created *models.Follow
		repo := noopFollowRepo()
		repo.createFn = func(_ context.Context, follow *models.Follow) error {
			follow.ID = 1
			created = follow
			return nil
		}
		svc := newFollowService(repo, nil)
		_, err := svc.FollowUser(context.Background(), 1, 2)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(1), created.FollowerID)
		assert.Equal(t, uint(2), created.FollowingID)
	})

	t.Run("self-follow rejected", func(t *testing.T) {
		t.Parallel()
		svc := newFollowService(nil, nil)
		_, err := svc.FollowUser(context.Background(), 1, 1)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("unknown target reported as not found", func(t *testing.T) {
		t.Parallel()
		user := noopUserRepo()
		user.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := newFollowService(nil, user)
		_, err := svc.FollowUser(context.Background(), 1, 99)
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("duplicate follow fails", func(t *testing.T) {
		t.Parallel()
		repo := noopFollowRepo()
		repo.createFn = func(_ context.Context, _ *models.Follow) error {
			return models.NewDuplicateError("You are already following this user")
		}
		svc := newFollowService(repo, nil)
		_, err := svc.FollowUser(context.Background(), 1, 2)
		assertCode(t, err, models.CodeDuplicate)
	})
}

func TestFollowService_UnfollowUser(t *testing.T) {
	t.Parallel()

	t.Run("removes edge", func(t *testing.T) {
		t.Parallel()
		removed := false
		repo := noopFollowRepo()
		repo.removeFn = func(_ context.Context, followerID, followingID uint) error {
			removed = followerID == 1 && followingID == 2
			return nil
		}
		svc := newFollowService(repo, nil)
		require.NoError(t, svc.UnfollowUser(context.Background(), 1, 2))
		assert.True(t, removed)
	})

	t.Run("not following reported as not found", func(t *testing.T) {
		t.Parallel()
		repo := noopFollowRepo()
		repo.removeFn = func(_ context.Context, _, followingID uint) error {
			return models.NewNotFoundError("Follow", followingID)
		}
		svc := newFollowService(repo, nil)
		err := svc.UnfollowUser(context.Background(), 1, 2)
		assertCode(t, err, models.CodeNotFound)
	})
}

func TestFollowService_IsFollowing(t *testing.T) {
	t.Parallel()

	repo := noopFollowRepo()
	repo.existsFn = func(_ context.Context, followerID, followingID uint) (bool, error) {
		return followerID == 1 && followingID == 2, nil
	}
	svc := newFollowService(repo, nil)

	following, err := svc.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.IsFollowing(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.False(t, following)
}
