package redis

import (
	"context"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// VolunteerRepository serves the volunteer collection from the store, falling
// back to the seed list while the collection has never been written.
type VolunteerRepository struct {
	store *CollectionStore
	seed  []domain.Volunteer
}

func NewVolunteerRepository(store *CollectionStore, seed []domain.Volunteer) *VolunteerRepository {
	return &VolunteerRepository{store: store, seed: seed}
}

func (r *VolunteerRepository) List(ctx context.Context) ([]domain.Volunteer, error) {
	return fetchCollection(ctx, r.store, ports.CollectionVolunteers, r.seed)
}

func (r *VolunteerRepository) Append(ctx context.Context, v domain.Volunteer) error {
	return appendItem(ctx, r.store, ports.CollectionVolunteers, v)
}

// ProjectRepository serves the project collection.
type ProjectRepository struct {
	store *CollectionStore
	seed  []domain.Project
}

func NewProjectRepository(store *CollectionStore, seed []domain.Project) *ProjectRepository {
	return &ProjectRepository{store: store, seed: seed}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return fetchCollection(ctx, r.store, ports.CollectionProjects, r.seed)
}

func (r *ProjectRepository) Append(ctx context.Context, p domain.Project) error {
	return appendItem(ctx, r.store, ports.CollectionProjects, p)
}

// DonationRepository serves the donation collection.
type DonationRepository struct {
	store *CollectionStore
	seed  []domain.Donation
}

func NewDonationRepository(store *CollectionStore, seed []domain.Donation) *DonationRepository {
	return &DonationRepository{store: store, seed: seed}
}

func (r *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	return fetchCollection(ctx, r.store, ports.CollectionDonations, r.seed)
}

func (r *DonationRepository) Append(ctx context.Context, d domain.Donation) error {
	return appendItem(ctx, r.store, ports.CollectionDonations, d)
}
