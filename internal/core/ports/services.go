package ports

import (
	"context"
	"time"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
)

// RegisterVolunteerInput carries the volunteer registration form fields.
type RegisterVolunteerInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Availability string
	Skills       string
	Type         domain.VolunteerType
}

// VolunteerService defines use-case operations for volunteers.
type VolunteerService interface {
	List(ctx context.Context) ([]domain.Volunteer, error)
	Register(ctx context.Context, input RegisterVolunteerInput) (*domain.Volunteer, error)
}

// CreateProjectInput carries the project creation form fields. The lifecycle
// state is not part of the input: it is always computed from the dates.
type CreateProjectInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
}

// ProjectService defines use-case operations for projects. List returns
// projects with freshly recomputed state and donation-derived progress.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
}

// CreateDonationInput carries the donation form fields. ProjectID is nil for
// general-fund donations. A zero Date means "today".
type CreateDonationInput struct {
	DonorName   string
	Amount      float64
	Description string
	Type        domain.DonationType
	Date        time.Time
	ProjectID   *string
}

// DonationList is the donation collection plus its headline aggregates.
type DonationList struct {
	Items         []domain.Donation
	MonetaryTotal float64
	InKindCount   int
}

// DonationService defines use-case operations for donations.
type DonationService interface {
	List(ctx context.Context) (*DonationList, error)
	Create(ctx context.Context, input CreateDonationInput) (*domain.Donation, error)
}

// ActivityKind tags the origin of a recent-activity entry.
type ActivityKind string

const (
	ActivityVolunteer ActivityKind = "VOL"
	ActivityDonation  ActivityKind = "DON"
	ActivityProject   ActivityKind = "PROY"
)

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID      string
	Kind    ActivityKind
	Message string
	Date    time.Time
	Amount  *float64 // set for monetary donation entries only
}

// DashboardStats is the aggregate view behind the dashboard page.
type DashboardStats struct {
	TotalVolunteers int
	TotalProjects   int
	ActiveProjects  int
	MonetaryTotal   float64
	Recent          []ActivityEntry
}

// MonthlyPoint is one bar of the monthly income series. Height is the bar
// size as a percentage of the largest month in the series.
type MonthlyPoint struct {
	Month  time.Month
	Total  float64
	Height int
}

// ProjectFunding is one row of the per-project resource breakdown.
type ProjectFunding struct {
	ProjectID string
	Title     string
	Budget    float64
	Raised    float64
	Progress  int
	State     domain.ProjectState
}

// FundingReport is the financial transparency report.
type FundingReport struct {
	MonetaryTotal float64
	Monthly       []MonthlyPoint
	Projects      []ProjectFunding
}

// ReportService derives the dashboard and report aggregates.
type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	Funding(ctx context.Context) (*FundingReport, error)
}

// AuthService implements login and session teardown.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, userID string) error
}
