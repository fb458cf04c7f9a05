package service

import (
	"context"

	"connectly/internal/models"
	"connectly/internal/repository"
)

// FollowService provides follow-graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// FollowUser creates a follow edge from the user to the target. Following
// yourself is rejected before the database check constraint ever fires.
func (s *FollowService) FollowUser(ctx context.Context, userID, targetID uint) (*models.Follow, error) {
	if userID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	follow := &models.Follow{
		FollowerID:  userID,
		FollowingID: targetID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// UnfollowUser removes the follow edge. Unfollowing someone you do not follow
// is reported as not found.
func (s *FollowService) UnfollowUser(ctx context.Context, userID, targetID uint) error {
	return s.followRepo.Remove(ctx, userID, targetID)
}

// GetFollowing returns the users this user follows.
func (s *FollowService) GetFollowing(ctx context.Context, userID uint) ([]*models.Follow, error) {
	return s.followRepo.ListByFollower(ctx, userID)
}

// IsFollowing reports whether follower follows target.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, targetID)
}
