package handler

import (
	"time"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// monthLabels are the Spanish month abbreviations used for display only;
// series ordering is canonical calendar order, never label order.
var monthLabels = [...]string{
	time.January:   "Ene",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dic",
}

// --- Domain / ports → HTTP responses ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

func toVolunteerResponse(v domain.Volunteer) volunteerResponse {
	return volunteerResponse{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Email:        v.Email,
		Phone:        v.Phone,
		Availability: v.Availability,
		Skills:       v.Skills,
		Type:         string(v.Type),
		RegisteredAt: v.RegisteredAt.Format(time.DateOnly),
	}
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		StartDate:   p.StartDate.Format(time.DateOnly),
		EndDate:     p.EndDate.Format(time.DateOnly),
		Budget:      p.Budget,
		State:       string(p.State),
		Progress:    p.Progress,
	}
}

func toDonationResponse(d domain.Donation) donationResponse {
	return donationResponse{
		ID:          d.ID,
		DonorName:   d.DonorName,
		Amount:      d.Amount,
		Description: d.Description,
		Type:        string(d.Type),
		Date:        d.Date.Format(time.DateOnly),
		ProjectID:   d.ProjectID,
	}
}

func toActivityResponse(e ports.ActivityEntry) activityResponse {
	return activityResponse{
		ID:      e.ID,
		Kind:    string(e.Kind),
		Message: e.Message,
		Date:    e.Date.Format(time.DateOnly),
		Amount:  e.Amount,
	}
}

func toFundingReportResponse(r *ports.FundingReport) fundingReportResponse {
	resp := fundingReportResponse{
		MonetaryTotal: r.MonetaryTotal,
		Monthly:       make([]monthlyPointResponse, 0, len(r.Monthly)),
		Projects:      make([]projectFundingResponse, 0, len(r.Projects)),
	}
	for _, p := range r.Monthly {
		resp.Monthly = append(resp.Monthly, monthlyPointResponse{
			Month:  monthLabels[p.Month],
			Total:  p.Total,
			Height: p.Height,
		})
	}
	for _, p := range r.Projects {
		resp.Projects = append(resp.Projects, projectFundingResponse{
			ProjectID: p.ProjectID,
			Title:     p.Title,
			Budget:    p.Budget,
			Raised:    p.Raised,
			Progress:  p.Progress,
			State:     string(p.State),
		})
	}
	return resp
}
