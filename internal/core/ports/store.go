package ports

import (
	"context"
	"time"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
)

// Collection names in the persisted key-value layout. One key per collection,
// each holding the serialized full list of that entity type. An absent key
// means "serve the seed fallback, do not write it".
const (
	CollectionVolunteers = "voluntarios"
	CollectionProjects   = "proyectos"
	CollectionDonations  = "donaciones"
)

// VolunteerRepository persists the volunteer collection. Append rewrites the
// whole collection (read, append, replace) and is deliberately not safe for
// concurrent writers; see the store implementation for the accepted
// lost-update hazard.
type VolunteerRepository interface {
	List(ctx context.Context) ([]domain.Volunteer, error)
	Append(ctx context.Context, v domain.Volunteer) error
}

// ProjectRepository persists the project collection.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Append(ctx context.Context, p domain.Project) error
}

// DonationRepository persists the donation collection.
type DonationRepository interface {
	List(ctx context.Context) ([]domain.Donation, error)
	Append(ctx context.Context, d domain.Donation) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionStore records active sessions so logout has an explicit teardown
// step (the session record is created on login and deleted on logout).
type SessionStore interface {
	Put(ctx context.Context, userID, token string, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}
