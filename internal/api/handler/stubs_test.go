package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// newTestContext builds an Echo context with the request validator installed,
// mirroring the real router setup.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

type stubVolunteerService struct {
	listFn     func(ctx context.Context) ([]domain.Volunteer, error)
	registerFn func(ctx context.Context, input ports.RegisterVolunteerInput) (*domain.Volunteer, error)
}

func (s *stubVolunteerService) List(ctx context.Context) ([]domain.Volunteer, error) {
	return s.listFn(ctx)
}

func (s *stubVolunteerService) Register(ctx context.Context, input ports.RegisterVolunteerInput) (*domain.Volunteer, error) {
	return s.registerFn(ctx, input)
}

type stubProjectService struct {
	listFn   func(ctx context.Context) ([]domain.Project, error)
	createFn func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error)
}

func (s *stubProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, input)
}

type stubDonationService struct {
	listFn   func(ctx context.Context) (*ports.DonationList, error)
	createFn func(ctx context.Context, input ports.CreateDonationInput) (*domain.Donation, error)
}

func (s *stubDonationService) List(ctx context.Context) (*ports.DonationList, error) {
	return s.listFn(ctx)
}

func (s *stubDonationService) Create(ctx context.Context, input ports.CreateDonationInput) (*domain.Donation, error) {
	return s.createFn(ctx, input)
}

type stubReportService struct {
	dashboardFn func(ctx context.Context) (*ports.DashboardStats, error)
	fundingFn   func(ctx context.Context) (*ports.FundingReport, error)
}

func (s *stubReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	return s.dashboardFn(ctx)
}

func (s *stubReportService) Funding(ctx context.Context) (*ports.FundingReport, error) {
	return s.fundingFn(ctx)
}

// httpCode unwraps the status code from a handler error, or 0 when the error
// is nil or not an *echo.HTTPError.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	if err == nil {
		return http.StatusOK
	}
	return 0
}
