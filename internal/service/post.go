package service

import (
	"context"
	"errors"

	"alaayoubi/content-api/internal/model"
	"alaayoubi/content-api/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PostService owns the post lifecycle. Mutations check that the post
// exists before checking who owns it, so a non-owner learns the post
// exists but gets ErrPostForbidden instead of ErrPostNotFound.
type PostService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) Create(ctx context.Context, userID, title, content string) (*model.Post, error) {
	id, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:      id,
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListForUser returns the caller's own posts. This is a query filter, not
// an authorization decision.
func (s *PostService) ListForUser(ctx context.Context, userID string) ([]model.Post, error) {
	return s.posts.FindByUser(ctx, userID)
}

func (s *PostService) Update(ctx context.Context, userID, postID, title, content string) (*model.Post, error) {
	post, err := s.authorize(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	if _, err := s.authorize(ctx, userID, postID); err != nil {
		return err
	}

	return s.posts.Delete(ctx, postID)
}

func (s *PostService) authorize(ctx context.Context, userID, postID string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, err
	}

	if post.UserID != userID {
		return nil, ErrPostForbidden
	}

	return post, nil
}
