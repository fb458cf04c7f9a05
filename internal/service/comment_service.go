package service

import (
	"context"

	"connectly/internal/access"
	"connectly/internal/models"
	"connectly/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
}

type CreateCommentInput struct {
	Viewer  access.Viewer
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	Viewer    access.Viewer
	CommentID uint
	Content   string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		followRepo:  followRepo,
	}
}

const maxCommentLen = 10000

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if !in.Viewer.Authenticated {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if _, err := visiblePost(ctx, s.postRepo, s.followRepo, in.Viewer, in.PostID, "comment_create"); err != nil {
		return nil, err
	}

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.Viewer.ID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns comments on posts the viewer may see. Filtering by a
// post the viewer cannot see yields an empty list, not an error.
func (s *CommentService) ListComments(ctx context.Context, viewer access.Viewer, postID *uint, limit, offset int) ([]*models.Comment, error) {
	return s.commentRepo.ListVisible(ctx, viewer, postID, limit, offset)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(in.Viewer, comment.UserID) {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, viewer access.Viewer, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if !access.CanMutate(viewer, comment.UserID) {
		return nil, models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	return comment, nil
}
