package domain

import "time"

// DonationType distinguishes monetary gifts from in-kind contributions.
// In-kind donations carry an estimated value but are aggregated as an item
// count, never as currency.
type DonationType string

const (
	DonationMonetary DonationType = "MONETARIA"
	DonationInKind   DonationType = "EN_ESPECIE"
)

// Donation is a single contribution. ProjectID is an explicit optional
// reference: nil means the donation goes to the general fund and counts
// toward global totals only. A reference that names no existing project is
// silently excluded from every per-project total.
type Donation struct {
	ID          string       `json:"id"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	Type        DonationType `json:"type"`
	Date        time.Time    `json:"date"`
	DonorName   string       `json:"donor_name"`
	ProjectID   *string      `json:"project_id,omitempty"`
}

// RaisedForProject sums the monetary donations attributed to projectID.
func RaisedForProject(donations []Donation, projectID string) float64 {
	var total float64
	for _, d := range donations {
		if d.Type != DonationMonetary || d.ProjectID == nil {
			continue
		}
		if *d.ProjectID == projectID {
			total += d.Amount
		}
	}
	return total
}

// MonetaryTotal sums all monetary donations regardless of project
// association. This is not the sum of per-project totals: general-fund
// donations (no project reference) are included too.
func MonetaryTotal(donations []Donation) float64 {
	var total float64
	for _, d := range donations {
		if d.Type == DonationMonetary {
			total += d.Amount
		}
	}
	return total
}

// InKindCount counts the in-kind donations.
func InKindCount(donations []Donation) int {
	n := 0
	for _, d := range donations {
		if d.Type == DonationInKind {
			n++
		}
	}
	return n
}
