package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubVolunteerRepo struct {
	items     []domain.Volunteer
	listErr   error
	appendErr error
}

func (r *stubVolunteerRepo) List(_ context.Context) ([]domain.Volunteer, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Volunteer(nil), r.items...), nil
}

func (r *stubVolunteerRepo) Append(_ context.Context, v domain.Volunteer) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, v)
	return nil
}

type stubProjectRepo struct {
	items     []domain.Project
	listErr   error
	appendErr error
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Project(nil), r.items...), nil
}

func (r *stubProjectRepo) Append(_ context.Context, p domain.Project) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, p)
	return nil
}

type stubDonationRepo struct {
	items     []domain.Donation
	listErr   error
	appendErr error
}

func (r *stubDonationRepo) List(_ context.Context) ([]domain.Donation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Donation(nil), r.items...), nil
}

func (r *stubDonationRepo) Append(_ context.Context, d domain.Donation) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, d)
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.users[user.Email] = &clone
	out := clone
	return &out, nil
}

type stubSessionStore struct {
	sessions  map[string]string // userID → token
	putErr    error
	deleteErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Put(_ context.Context, userID, token string, _ time.Duration) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.sessions[userID] = token
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, userID)
	return nil
}

// fixedNow pins a service clock for deterministic classification.
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strptr(s string) *string { return &s }
