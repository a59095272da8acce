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

type ProjectService struct {
	projects  ports.ProjectRepository
	donations ports.DonationRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewProjectService(projects ports.ProjectRepository, donations ports.DonationRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, donations: donations, logger: logger, now: time.Now}
}

// List returns all projects with derived fields recomputed: the lifecycle
// state is classified from the dates and today, overriding whatever was
// persisted, and progress is derived from the monetary donations attributed
// to each project. Projects and donations are loaded concurrently.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projectsCh := loadAsync(ctx, s.projects.List)
	donationsCh := loadAsync(ctx, s.donations.List)

	projectsRes := <-projectsCh
	if projectsRes.err != nil {
		return nil, projectsRes.err
	}
	donationsRes := <-donationsCh
	if donationsRes.err != nil {
		return nil, donationsRes.err
	}

	today := s.now().UTC()
	projects := projectsRes.value
	for i := range projects {
		p := &projects[i]
		p.State = domain.ClassifyState(p.StartDate, p.EndDate, today)
		p.Progress = domain.ProgressPercent(domain.RaisedForProject(donationsRes.value, p.ID), p.Budget)
	}
	return projects, nil
}

// Create appends a new project. The initial state is computed from the dates;
// any state a caller might have in mind is irrelevant, since every subsequent
// load recomputes it anyway.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	start := domain.Midnight(input.StartDate)
	end := domain.Midnight(input.EndDate)

	p := domain.Project{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		StartDate:   start,
		EndDate:     end,
		Budget:      input.Budget,
		State:       domain.ClassifyState(start, end, s.now().UTC()),
		Progress:    0,
	}

	if err := s.projects.Append(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(ports.CollectionProjects).Inc()
	s.logger.Info().Str("project_id", p.ID).Str("state", string(p.State)).Msg("project created")
	return &p, nil
}
