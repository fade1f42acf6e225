package repository

import (
	"context"
	"errors"

	"alaayoubi/content-api/internal/model"

	"gorm.io/gorm"
)

// PostRepository abstracts persistence of posts.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindByUser(ctx context.Context, userID string) ([]model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
}

type gormPostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *gormPostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&post).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &post, nil
}

func (r *gormPostRepository) FindByUser(ctx context.Context, userID string) ([]model.Post, error) {
	var posts []model.Post

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *gormPostRepository) Update(ctx context.Context, post *model.Post) error {
	res := r.db.WithContext(ctx).
		Model(model.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *gormPostRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(model.Post{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
