package service

import (
	"context"
	"sync"
	"time"

	"alaayoubi/content-api/internal/model"
	"alaayoubi/content-api/internal/repository"
)

// fakeUserRepo mirrors the gorm adapter's contract, including the
// single-operation consume-and-clear for reset tokens.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	u.Verified = true
	return nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, id, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	u.ResetToken = &token
	u.ResetExpiresAt = &expiresAt
	return nil
}

func (r *fakeUserRepo) ConsumeResetToken(_ context.Context, token string, now time.Time, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ResetToken == nil || *u.ResetToken != token {
			continue
		}

		if u.ResetExpiresAt == nil || u.ResetExpiresAt.Before(now) {
			continue
		}

		u.PasswordHash = newHash
		u.ResetToken = nil
		u.ResetExpiresAt = nil
		return nil
	}

	return repository.ErrNotFound
}

func (r *fakeUserRepo) ClearExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cleared int64
	for _, u := range r.users {
		if u.ResetToken != nil && u.ResetExpiresAt != nil && u.ResetExpiresAt.Before(now) {
			u.ResetToken = nil
			u.ResetExpiresAt = nil
			cleared++
		}
	}

	return cleared, nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*model.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) FindByUser(_ context.Context, userID string) ([]model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}

	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}

	p.Title = post.Title
	p.Content = post.Content
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.posts, id)
	return nil
}

// fakeMailer records dispatched tokens and can be told to fail, which the
// service is supposed to shrug off.
type fakeMailer struct {
	mu                 sync.Mutex
	fail               error
	verificationTokens map[string]string
	resetTokens        map[string]string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		verificationTokens: map[string]string{},
		resetTokens:        map[string]string{},
	}
}

func (m *fakeMailer) SendVerification(email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}

	m.verificationTokens[email] = token
	return nil
}

func (m *fakeMailer) SendPasswordReset(email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}

	m.resetTokens[email] = token
	return nil
}

func (m *fakeMailer) lastVerification(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.verificationTokens[email]
}

func (m *fakeMailer) lastReset(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.resetTokens[email]
}
