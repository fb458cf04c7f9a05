package service

import (
	"context"

	"connectly/internal/access"
	"connectly/internal/models"
	"connectly/internal/repository"
)

type PostService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type CreatePostInput struct {
	Viewer  access.Viewer
	Content string
	Privacy models.Privacy
}

type UpdatePostInput struct {
	Viewer  access.Viewer
	PostID  uint
	Content string
	Privacy models.Privacy
}

type ListPostsInput struct {
	Viewer access.Viewer
	Limit  int
	Offset int
}

func NewPostService(
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

const maxPostContentLen = 50000

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if !in.Viewer.Authenticated {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	privacy := in.Privacy
	if privacy == "" {
		privacy = models.PrivacyPublic
	}
	if !privacy.Valid() {
		return nil, models.NewValidationError("Invalid privacy setting")
	}

	post := &models.Post{
		Content: in.Content,
		Privacy: privacy,
		UserID:  in.Viewer.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns the post if the viewer may see it, not-found otherwise.
func (s *PostService) GetPost(ctx context.Context, viewer access.Viewer, id uint) (*models.Post, error) {
	return visiblePost(ctx, s.postRepo, s.followRepo, viewer, id, "post_get")
}

// ListPosts returns the feed restricted to what the viewer may see, newest
// first with id as the tie-break.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, in.Viewer, in.Limit, in.Offset)
}

// GetUserPosts returns the author's posts restricted to the viewer's
// visibility. The author must exist; their hidden posts are simply absent.
func (s *PostService) GetUserPosts(ctx context.Context, viewer access.Viewer, authorID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByUserID(ctx, authorID, viewer, limit, offset)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(in.Viewer, post.UserID) {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Content != "" {
		if len(in.Content) > maxPostContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		post.Content = in.Content
	}
	if in.Privacy != "" {
		if !in.Privacy.Valid() {
			return nil, models.NewValidationError("Invalid privacy setting")
		}
		post.Privacy = in.Privacy
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, viewer access.Viewer, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !access.CanMutate(viewer, post.UserID) {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, postID)
}
