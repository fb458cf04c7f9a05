package repository

import (
	"context"

	"connectly/internal/access"
	"connectly/internal/cache"
	"connectly/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	ListVisible(ctx context.Context, viewer access.Viewer, postID *uint, limit, offset int) ([]*models.Like, error)
	Remove(ctx context.Context, userID, postID uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like, relying on the (user_id, post_id) unique index to
// reject duplicates atomically. The loser of a concurrent race gets the same
// duplicate error as a sequential second like.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewDuplicateError("You have already liked this post")
		}
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(like.PostID))
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListVisible returns likes on posts currently visible to the viewer.
func (r *likeRepository) ListVisible(ctx context.Context, viewer access.Viewer, postID *uint, limit, offset int) ([]*models.Like, error) {
	var likes []*models.Like
	q := r.db.WithContext(ctx).
		Preload("User").
		Scopes(access.VisiblePostScope(viewer))
	if postID != nil {
		q = q.Where("post_id = ?", *postID)
	}
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

// Remove hard-deletes the user's like on the post. Returns not-found when no
// like exists so unliking is not silently idempotent.
func (r *likeRepository) Remove(ctx context.Context, userID, postID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Like", postID)
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return nil
}
