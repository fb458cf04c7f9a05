// Package service implements business logic on top of the repository layer.
// Every read takes an access.Viewer so visibility rules are applied in one
// place; handlers only translate HTTP into viewer + input structs.
package service

import (
	"context"

	"connectly/internal/access"
	"connectly/internal/middleware"
	"connectly/internal/models"
	"connectly/internal/observability"
	"connectly/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// visiblePost loads the post and verifies the viewer may see it. A post the
// viewer cannot see is reported as not found, never as forbidden, so the
// response does not reveal that the post exists.
func visiblePost(
	ctx context.Context,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	viewer access.Viewer,
	postID uint,
	operation string,
) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "access.visible_post")
	defer span.End()
	span.AddAttributes(
		attribute.String("access.operation", operation),
		attribute.Int("post.id", int(postID)),
	)

	post, err := postRepo.GetByID(ctx, postID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	followsAuthor := false
	if post.Privacy == models.PrivacyFollowers &&
		viewer.Authenticated && !viewer.Elevated() && post.UserID != viewer.ID {
		followsAuthor, err = followRepo.Exists(ctx, viewer.ID, post.UserID)
		if err != nil {
			span.SetError(err)
			return nil, err
		}
	}

	if !access.CanView(viewer, post, followsAuthor) {
		middleware.VisibilityDenials.WithLabelValues(operation).Inc()
		span.AddAttributes(attribute.Bool("access.denied", true))
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}
