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

type VolunteerService struct {
	repo   ports.VolunteerRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewVolunteerService(repo ports.VolunteerRepository, logger zerolog.Logger) *VolunteerService {
	return &VolunteerService{repo: repo, logger: logger, now: time.Now}
}

// List returns all registered volunteers. An empty collection is an empty
// list, never an error.
func (s *VolunteerService) List(ctx context.Context) ([]domain.Volunteer, error) {
	return s.repo.List(ctx)
}

// Register appends a new volunteer to the collection. Volunteers are
// immutable after creation.
func (s *VolunteerService) Register(ctx context.Context, input ports.RegisterVolunteerInput) (*domain.Volunteer, error) {
	v := domain.Volunteer{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Availability: input.Availability,
		Skills:       input.Skills,
		Type:         input.Type,
		RegisteredAt: domain.Midnight(s.now().UTC()),
	}

	if err := s.repo.Append(ctx, v); err != nil {
		s.logger.Error().Err(err).Msg("failed to register volunteer")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(ports.CollectionVolunteers).Inc()
	s.logger.Info().Str("volunteer_id", v.ID).Str("type", string(v.Type)).Msg("volunteer registered")
	return &v, nil
}
