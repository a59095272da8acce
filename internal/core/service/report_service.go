package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// activityFeedLimit caps the recent-activity feed.
const activityFeedLimit = 5

type ReportService struct {
	volunteers ports.VolunteerRepository
	projects   ports.ProjectRepository
	donations  ports.DonationRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewReportService(
	volunteers ports.VolunteerRepository,
	projects ports.ProjectRepository,
	donations ports.DonationRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		volunteers: volunteers,
		projects:   projects,
		donations:  donations,
		logger:     logger,
		now:        time.Now,
	}
}

// Dashboard computes the headline indicators and the recent-activity feed.
// The three collections are independent reads loaded concurrently.
func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	volunteersCh := loadAsync(ctx, s.volunteers.List)
	projectsCh := loadAsync(ctx, s.projects.List)
	donationsCh := loadAsync(ctx, s.donations.List)

	volunteersRes := <-volunteersCh
	projectsRes := <-projectsCh
	donationsRes := <-donationsCh
	for _, err := range []error{volunteersRes.err, projectsRes.err, donationsRes.err} {
		if err != nil {
			return nil, err
		}
	}

	today := s.now().UTC()
	active := 0
	for _, p := range projectsRes.value {
		if domain.ClassifyState(p.StartDate, p.EndDate, today) == domain.StateOngoing {
			active++
		}
	}

	return &ports.DashboardStats{
		TotalVolunteers: len(volunteersRes.value),
		TotalProjects:   len(projectsRes.value),
		ActiveProjects:  active,
		MonetaryTotal:   domain.MonetaryTotal(donationsRes.value),
		Recent:          buildActivityFeed(volunteersRes.value, donationsRes.value, projectsRes.value),
	}, nil
}

// Funding computes the financial transparency report: monthly income series,
// per-project resource allocation, and the global monetary total.
func (s *ReportService) Funding(ctx context.Context) (*ports.FundingReport, error) {
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
	donations := donationsRes.value

	today := s.now().UTC()
	rows := make([]ports.ProjectFunding, 0, len(projectsRes.value))
	for _, p := range projectsRes.value {
		raised := domain.RaisedForProject(donations, p.ID)
		rows = append(rows, ports.ProjectFunding{
			ProjectID: p.ID,
			Title:     p.Title,
			Budget:    p.Budget,
			Raised:    raised,
			Progress:  domain.ProgressPercent(raised, p.Budget),
			State:     domain.ClassifyState(p.StartDate, p.EndDate, today),
		})
	}

	return &ports.FundingReport{
		MonetaryTotal: domain.MonetaryTotal(donations),
		Monthly:       buildMonthlySeries(donations),
		Projects:      rows,
	}, nil
}

// buildMonthlySeries groups monetary donations by calendar month and emits
// the buckets in canonical January..December order, independent of donation
// insertion order. Bar height is the month total as a percentage of the
// largest month, with the denominator floored at 1 so an empty series never
// divides by zero.
func buildMonthlySeries(donations []domain.Donation) []ports.MonthlyPoint {
	totals := make(map[time.Month]float64)
	for _, d := range donations {
		if d.Type == domain.DonationMonetary {
			totals[d.Date.Month()] += d.Amount
		}
	}

	maxTotal := 1.0
	for _, t := range totals {
		if t > maxTotal {
			maxTotal = t
		}
	}

	series := make([]ports.MonthlyPoint, 0, len(totals))
	for m := time.January; m <= time.December; m++ {
		total, ok := totals[m]
		if !ok {
			continue
		}
		series = append(series, ports.MonthlyPoint{
			Month:  m,
			Total:  total,
			Height: int(math.Round(total / maxTotal * 100)),
		})
	}
	return series
}

// buildActivityFeed merges volunteers (by registration date), donations (by
// donation date), and projects (by start date) into one feed, sorted by date
// descending and capped to the most recent entries. The sort is stable, so
// equal-date entries keep the volunteer → donation → project merge order.
func buildActivityFeed(
	volunteers []domain.Volunteer,
	donations []domain.Donation,
	projects []domain.Project,
) []ports.ActivityEntry {
	entries := make([]ports.ActivityEntry, 0, len(volunteers)+len(donations)+len(projects))

	for _, v := range volunteers {
		entries = append(entries, ports.ActivityEntry{
			ID:      "v-" + v.ID,
			Kind:    ports.ActivityVolunteer,
			Message: v.FullName(),
			Date:    v.RegisteredAt,
		})
	}
	for _, d := range donations {
		e := ports.ActivityEntry{
			ID:      "d-" + d.ID,
			Kind:    ports.ActivityDonation,
			Message: d.DonorName,
			Date:    d.Date,
		}
		if d.Amount > 0 {
			amount := d.Amount
			e.Amount = &amount
		}
		entries = append(entries, e)
	}
	for _, p := range projects {
		entries = append(entries, ports.ActivityEntry{
			ID:      "p-" + p.ID,
			Kind:    ports.ActivityProject,
			Message: p.Title,
			Date:    p.StartDate,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if len(entries) > activityFeedLimit {
		entries = entries[:activityFeedLimit]
	}
	return entries
}
