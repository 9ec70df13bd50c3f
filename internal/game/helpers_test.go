package game

import (
	"testing"
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

// stubRandom replays floats in order and then never draws an accident.
type stubRandom struct {
	floats []float64
	next   int
	intn   int
}

func (s *stubRandom) Float64() float64 {
	if s.next < len(s.floats) {
		v := s.floats[s.next]
		s.next++
		return v
	}
	return 0.999
}

func (s *stubRandom) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return s.intn % n
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// setupAirline founds a wealthy FSC at ICN.
func setupAirline(t *testing.T, cat *catalog.Catalog, rng Random) (models.GameState, *Actions) {
	t.Helper()
	a := NewActions(cat, rng)
	st := NewGameState(cat)
	if _, err := a.Setup(&st, SetupRequest{
		Name:    "Test Air",
		Code:    "T9",
		Hub:     "ICN",
		Concept: models.ConceptFSC,
		Capital: models.CapitalWealthy,
	}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return st, a
}

// flyingAirline adds one scheduled A350 on ICN-NRT.
func flyingAirline(t *testing.T, cat *catalog.Catalog, rng Random) (models.GameState, *Actions, string) {
	t.Helper()
	st, a := setupAirline(t, cat, rng)
	route := RouteID("ICN", "NRT")
	if _, err := a.OpenRoute(&st, route, models.PriceStandard); err != nil {
		t.Fatalf("open route: %v", err)
	}
	if _, err := a.PurchaseAircraft(&st, AcquireRequest{ModelID: "A350", ConfigurationID: models.ConfigFSCLongHaul, Nickname: "Hanbit"}); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	id := st.Fleet[0].ID
	if _, err := a.UpdateSchedule(&st, id, []string{route}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	return st, a, id
}
