package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

var testToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectService_Create_ComputesState(t *testing.T) {
	repo := &stubProjectRepo{}
	svc := NewProjectService(repo, &stubDonationRepo{}, discardLogger)
	svc.now = fixedNow(testToday)

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title:       "Talleres Digitales",
		Description: "Computación básica para adultos mayores",
		StartDate:   civil(2026, 1, 1),
		EndDate:     civil(2026, 6, 30),
		Budget:      8000,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
	if p.State != domain.StatePlanned {
		t.Fatalf("state = %s, want PLAN", p.State)
	}
	if p.Progress != 0 {
		t.Fatalf("progress = %d, want 0", p.Progress)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 persisted project, got %d", len(repo.items))
	}
}

// Stored state is advisory only: the load path always recomputes from dates,
// so a stale persisted value never survives a List.
func TestProjectService_List_OverridesStoredState(t *testing.T) {
	repo := &stubProjectRepo{items: []domain.Project{
		{ID: "p1", Title: "Invierno Sin Frío", StartDate: civil(2024, 1, 1), EndDate: civil(2024, 3, 30), Budget: 5000, State: domain.StateOngoing, Progress: 45},
		{ID: "p2", Title: "Comedor San Juan", StartDate: civil(2024, 6, 1), EndDate: civil(2025, 12, 31), Budget: 15000, State: domain.StatePlanned},
		{ID: "p3", Title: "Talleres 2026", StartDate: civil(2026, 1, 1), EndDate: civil(2026, 6, 30), Budget: 8000, State: domain.StateFinished},
	}}
	svc := NewProjectService(repo, &stubDonationRepo{}, discardLogger)
	svc.now = fixedNow(testToday)

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := map[string]domain.ProjectState{
		"p1": domain.StateFinished,
		"p2": domain.StateOngoing,
		"p3": domain.StatePlanned,
	}
	for _, p := range projects {
		if p.State != want[p.ID] {
			t.Errorf("%s state = %s, want %s", p.ID, p.State, want[p.ID])
		}
	}
}

func TestProjectService_List_DerivesProgress(t *testing.T) {
	projRepo := &stubProjectRepo{items: []domain.Project{
		{ID: "p1", StartDate: civil(2024, 6, 1), EndDate: civil(2025, 12, 31), Budget: 15000},
		{ID: "p2", StartDate: civil(2024, 6, 1), EndDate: civil(2025, 12, 31), Budget: 5000},
		{ID: "p3", StartDate: civil(2024, 6, 1), EndDate: civil(2025, 12, 31), Budget: 0},
	}}
	donRepo := &stubDonationRepo{items: []domain.Donation{
		{ID: "d1", Amount: 6750, Type: domain.DonationMonetary, ProjectID: strptr("p1"), Date: civil(2025, 3, 1)},
		{ID: "d2", Amount: 8000, Type: domain.DonationMonetary, ProjectID: strptr("p2"), Date: civil(2025, 3, 1)},
		{ID: "d3", Amount: 500, Type: domain.DonationInKind, ProjectID: strptr("p1"), Date: civil(2025, 3, 1)},
		{ID: "d4", Amount: 100, Type: domain.DonationMonetary, ProjectID: strptr("p3"), Date: civil(2025, 3, 1)},
	}}
	svc := NewProjectService(projRepo, donRepo, discardLogger)
	svc.now = fixedNow(testToday)

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := map[string]int{"p1": 45, "p2": 100, "p3": 0}
	for _, p := range projects {
		if p.Progress != want[p.ID] {
			t.Errorf("%s progress = %d, want %d", p.ID, p.Progress, want[p.ID])
		}
	}
}

func TestProjectService_List_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("redis down")
	svc := NewProjectService(&stubProjectRepo{listErr: storeErr}, &stubDonationRepo{}, discardLogger)

	if _, err := svc.List(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// Append-then-fetch round trip: the created project appears exactly once with
// its submitted fields intact.
func TestProjectService_CreateThenList_RoundTrip(t *testing.T) {
	repo := &stubProjectRepo{}
	svc := NewProjectService(repo, &stubDonationRepo{}, discardLogger)
	svc.now = fixedNow(testToday)

	created, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title:       "Comedor Popular",
		Description: "Abastecimiento diario",
		StartDate:   civil(2025, 6, 1),
		EndDate:     civil(2025, 12, 31),
		Budget:      15000,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	found := 0
	for _, p := range projects {
		if p.ID != created.ID {
			continue
		}
		found++
		if p.Title != "Comedor Popular" || p.Description != "Abastecimiento diario" || p.Budget != 15000 {
			t.Fatalf("round-tripped project lost fields: %+v", p)
		}
	}
	if found != 1 {
		t.Fatalf("created project appeared %d times, want 1", found)
	}
}
