package service

import (
	"context"
	"errors"
	"time"

	"alaayoubi/content-api/internal/mailer"
	"alaayoubi/content-api/internal/model"
	"alaayoubi/content-api/internal/repository"
	"alaayoubi/content-api/pkg/security"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AuthService orchestrates the credential and token lifecycle: register,
// login, account verification and the password reset round trip.
type AuthService struct {
	users    repository.UserRepository
	argon    *security.ArgonHash
	tokens   *security.TokenManager
	mail     mailer.Mailer
	resetTTL time.Duration
}

func NewAuthService(
	users repository.UserRepository,
	argon *security.ArgonHash,
	tokens *security.TokenManager,
	mail mailer.Mailer,
	resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:    users,
		argon:    argon,
		tokens:   tokens,
		mail:     mail,
		resetTTL: resetTTL,
	}
}

// Register creates an unverified account and dispatches a verification
// mail. The returned user never carries the password hash to the boundary,
// handlers only expose ID and email.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}

	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.argon.GenerateFromPassword(password)
	if err != nil {
		return nil, err
	}

	id, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	verifToken, err := s.tokens.IssueVerification(email)
	if err != nil {
		return nil, err
	}

	if err := s.mail.SendVerification(email, verifToken); err != nil {
		zap.L().Warn("Failed to send verification email",
			zap.Error(err), zap.String("userID", user.ID))
	}

	return user, nil
}

// Login checks the credentials and returns a signed access token. A
// missing user and a wrong password both come back as
// ErrInvalidCredentials so callers can't probe which one it was. An
// unverified account is rejected before the password is even compared.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if !user.Verified {
		return "", ErrUserNotVerified
	}

	ok, err := s.argon.VerifyPasswd(password, user.PasswordHash)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", ErrInvalidCredentials
	}

	return s.tokens.IssueAccess(user.ID, user.Verified)
}

// VerifyAccount flips the user named by the token to verified. Verifying
// an already verified account succeeds without touching the store.
func (s *AuthService) VerifyAccount(ctx context.Context, token string) error {
	claims, err := s.tokens.VerifyVerification(token)
	if err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}

		return err
	}

	if user.Verified {
		return nil
	}

	return s.users.MarkVerified(ctx, user.ID)
}

// GetUser returns the account behind an authenticated principal.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// ForgotPassword stores a fresh single-use reset token on the user,
// replacing any pending one, and dispatches it by mail.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}

		return err
	}

	token, expiresAt, err := security.NewResetToken(s.resetTTL)
	if err != nil {
		return err
	}

	if err := s.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return err
	}

	if err := s.mail.SendPasswordReset(email, token); err != nil {
		zap.L().Warn("Failed to send password reset email",
			zap.Error(err), zap.String("userID", user.ID))
	}

	return nil
}

// ResetPassword consumes the reset token and replaces the password hash.
// The consume and the hash write are one conditional store update, so a
// token can authorize exactly one password change.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := s.argon.GenerateFromPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.users.ConsumeResetToken(ctx, token, time.Now(), hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrResetTokenNotFound
		}

		return err
	}

	return nil
}
