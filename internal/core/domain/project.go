package domain

import (
	"math"
	"time"
)

// ProjectState represents the lifecycle state of a project, derived purely
// from its dates. Stored state values are advisory: every load recomputes the
// state with ClassifyState, so the freshly computed value always wins.
type ProjectState string

const (
	StatePlanned  ProjectState = "PLAN"
	StateOngoing  ProjectState = "EJECUCION"
	StateFinished ProjectState = "FINALIZADO"
)

// Project is a fundable initiative. State and Progress are derived fields:
// both are recomputed on every load and never treated as authoritative when
// read back from storage.
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	Budget      float64      `json:"budget"`
	State       ProjectState `json:"state"`
	Progress    int          `json:"progress"`
}

// Midnight truncates t to 00:00:00 UTC so date comparisons are stable within
// a calendar day regardless of wall-clock time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClassifyState derives the lifecycle state from the project dates:
//
//	today < start          → PLAN
//	start <= today <= end  → EJECUCION (inclusive on both ends)
//	today > end            → FINALIZADO
//
// All three dates are normalized to midnight before comparing.
func ClassifyState(start, end, today time.Time) ProjectState {
	start, end, today = Midnight(start), Midnight(end), Midnight(today)
	switch {
	case today.Before(start):
		return StatePlanned
	case today.After(end):
		return StateFinished
	default:
		return StateOngoing
	}
}

// ProgressPercent computes how much of the budget has been raised, rounded to
// the nearest integer and clamped to 100. A non-positive budget yields 0
// regardless of the raised amount.
func ProgressPercent(raised, budget float64) int {
	if budget <= 0 {
		return 0
	}
	p := int(math.Round(raised / budget * 100))
	if p > 100 {
		return 100
	}
	return p
}
