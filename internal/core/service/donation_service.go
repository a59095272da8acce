package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
	"github.com/ongesperanza/ngo-system/internal/metrics"
)

type DonationService struct {
	repo   ports.DonationRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewDonationService(repo ports.DonationRepository, logger zerolog.Logger) *DonationService {
	return &DonationService{repo: repo, logger: logger, now: time.Now}
}

// List returns all donations together with the headline aggregates: the
// monetary total (general fund included) and the in-kind item count.
func (s *DonationService) List(ctx context.Context) (*ports.DonationList, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DonationList{
		Items:         items,
		MonetaryTotal: domain.MonetaryTotal(items),
		InKindCount:   domain.InKindCount(items),
	}, nil
}

// Create appends a new donation. Donations are immutable after creation.
// A project reference is recorded as given; if it names no existing project
// the donation simply attributes to no project's total, only the global one.
func (s *DonationService) Create(ctx context.Context, input ports.CreateDonationInput) (*domain.Donation, error) {
	date := input.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	d := domain.Donation{
		ID:          uuid.NewString(),
		Amount:      input.Amount,
		Description: input.Description,
		Type:        input.Type,
		Date:        domain.Midnight(date),
		DonorName:   input.DonorName,
		ProjectID:   input.ProjectID,
	}

	if err := s.repo.Append(ctx, d); err != nil {
		s.logger.Error().Err(err).Msg("failed to create donation")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(ports.CollectionDonations).Inc()
	s.logger.Info().
		Str("donation_id", d.ID).
		Str("type", string(d.Type)).
		Float64("amount", d.Amount).
		Msg("donation recorded")
	return &d, nil
}
