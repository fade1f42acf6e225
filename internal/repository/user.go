// Package repository contains the store adapters the services talk to.
// Every method reports a missing record as ErrNotFound so callers never
// have to know which database errors mean what.
package repository

import (
	"context"
	"errors"
	"time"

	"alaayoubi/content-api/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// UserRepository abstracts persistence of user records and their pending
// reset-token state.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)

	// MarkVerified flips the verification flag. Flipping an already
	// verified user is a no-op at this layer.
	MarkVerified(ctx context.Context, id string) error

	// SetResetToken stores a pending reset token and its expiry on the
	// user, overwriting any previous one.
	SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error

	// ConsumeResetToken writes the new password hash and clears the
	// reset-token fields in a single conditional update keyed on the
	// token still matching and not being expired. ErrNotFound means no
	// user holds that token anymore, so concurrent consumers can never
	// both succeed.
	ConsumeResetToken(ctx context.Context, token string, now time.Time, newHash string) error

	// ClearExpiredResetTokens drops pending reset tokens whose expiry
	// has passed and reports how many users were touched.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (r *gormUserRepository) MarkVerified(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("id = ?", id).
		Update("verified", true)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *gormUserRepository) SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token":      token,
			"reset_expires_at": expiresAt,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *gormUserRepository) ConsumeResetToken(ctx context.Context, token string, now time.Time, newHash string) error {
	res := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("reset_token = ? AND reset_expires_at >= ?", token, now).
		Updates(map[string]any{
			"password_hash":    newHash,
			"reset_token":      nil,
			"reset_expires_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *gormUserRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(model.User{}).
		Where("reset_token IS NOT NULL AND reset_expires_at < ?", now).
		Updates(map[string]any{
			"reset_token":      nil,
			"reset_expires_at": nil,
		})

	return res.RowsAffected, res.Error
}
