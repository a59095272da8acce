package domain

import "time"

// VolunteerType distinguishes recurring volunteers from one-off helpers.
type VolunteerType string

const (
	VolunteerRegular    VolunteerType = "REGULAR"
	VolunteerOccasional VolunteerType = "EVENTUAL"
)

// Volunteer is a registered volunteer. Records are append-only: created once
// through the registration form and never updated or removed.
type Volunteer struct {
	ID           string        `json:"id"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Availability string        `json:"availability"`
	Skills       string        `json:"skills"`
	Type         VolunteerType `json:"type"`
	RegisteredAt time.Time     `json:"registered_at"`
}

// FullName returns the volunteer's display name.
func (v Volunteer) FullName() string {
	return v.FirstName + " " + v.LastName
}
