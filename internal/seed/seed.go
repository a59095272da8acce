// Package seed holds the fallback collections served while a collection has
// never been written. The store returns these as-is and never persists them;
// the first real write starts from an empty list.
package seed

import (
	"time"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Volunteers returns the demo volunteer roster.
func Volunteers() []domain.Volunteer {
	return []domain.Volunteer{
		{
			ID:           "vol-jhair",
			FirstName:    "Jhair",
			LastName:     "Maldonado",
			Email:        "jhair@utp.edu.pe",
			Phone:        "999888777",
			Availability: "Fines de semana",
			Skills:       "Java, React",
			Type:         domain.VolunteerRegular,
			RegisteredAt: day(2024, 3, 1),
		},
		{
			ID:           "vol-ana",
			FirstName:    "Ana",
			LastName:     "Torres",
			Email:        "ana@gmail.com",
			Phone:        "987654321",
			Availability: "Mañanas",
			Skills:       "Logística",
			Type:         domain.VolunteerOccasional,
			RegisteredAt: day(2024, 4, 10),
		},
	}
}

// Projects returns the demo project portfolio. The stored states are only
// illustrative: every load reclassifies from the dates.
func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:          "proj-invierno",
			Title:       "Campaña Invierno Sin Frío",
			Description: "Recolección de abrigos para zonas altoandinas.",
			StartDate:   day(2024, 1, 1),
			EndDate:     day(2024, 3, 30),
			Budget:      5000,
			State:       domain.StateFinished,
			Progress:    100,
		},
		{
			ID:          "proj-comedor",
			Title:       "Comedor Popular San Juan",
			Description: "Construcción y abastecimiento de comedor diario.",
			StartDate:   day(2024, 6, 1),
			EndDate:     day(2025, 12, 31),
			Budget:      15000,
			State:       domain.StateOngoing,
			Progress:    45,
		},
		{
			ID:          "proj-talleres",
			Title:       "Talleres Digitales 2026",
			Description: "Capacitación en computación básica para adultos mayores.",
			StartDate:   day(2026, 1, 1),
			EndDate:     day(2026, 6, 30),
			Budget:      8000,
			State:       domain.StatePlanned,
			Progress:    0,
		},
	}
}

// Donations starts empty: the demo dataset records contributions only once
// they are entered through the form.
func Donations() []domain.Donation {
	return nil
}
