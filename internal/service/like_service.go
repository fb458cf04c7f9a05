package service

import (
	"context"

	"connectly/internal/access"
	"connectly/internal/models"
	"connectly/internal/repository"
)

// LikeService manages likes. Liking twice is a hard failure, not a toggle:
// the second attempt surfaces the duplicate error from the unique index.
type LikeService struct {
	likeRepo   repository.LikeRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *LikeService {
	return &LikeService{
		likeRepo:   likeRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (s *LikeService) LikePost(ctx context.Context, viewer access.Viewer, postID uint) (*models.Like, error) {
	if !viewer.Authenticated {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if _, err := visiblePost(ctx, s.postRepo, s.followRepo, viewer, postID, "like_create"); err != nil {
		return nil, err
	}

	like := &models.Like{
		UserID: viewer.ID,
		PostID: postID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

func (s *LikeService) UnlikePost(ctx context.Context, viewer access.Viewer, postID uint) error {
	if !viewer.Authenticated {
		return models.NewUnauthorizedError("Authentication required")
	}
	return s.likeRepo.Remove(ctx, viewer.ID, postID)
}

// HasLiked reports whether the viewer has liked the post.
func (s *LikeService) HasLiked(ctx context.Context, viewer access.Viewer, postID uint) (bool, error) {
	if !viewer.Authenticated {
		return false, nil
	}
	return s.likeRepo.Exists(ctx, viewer.ID, postID)
}

// ListLikes returns likes on posts the viewer may see.
func (s *LikeService) ListLikes(ctx context.Context, viewer access.Viewer, postID *uint, limit, offset int) ([]*models.Like, error) {
	return s.likeRepo.ListVisible(ctx, viewer, postID, limit, offset)
}
