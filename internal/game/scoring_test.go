package game

import (
	"math"
	"testing"
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

func TestAggregateFacilityEffects(t *testing.T) {
	cat := catalog.Default()
	owned := map[string][]models.FacilityType{
		"ICN": {models.FacilityOffice, models.FacilityGroundServices, models.FacilityMaintenanceCenter},
	}
	fx := AggregateFacilityEffects(cat, owned, "ICN")
	if math.Abs(fx.OperatingCostModifier-0.97*0.95) > 1e-12 {
		t.Fatalf("operating cost modifier %f", fx.OperatingCostModifier)
	}
	if fx.AccidentModifier != 0.9 {
		t.Fatalf("accident modifier %f", fx.AccidentModifier)
	}
	if fx.OTPBonus != 1.5 {
		t.Fatalf("otp bonus %f", fx.OTPBonus)
	}
	if again := AggregateFacilityEffects(cat, owned, "ICN"); again != fx {
		t.Fatalf("aggregation not repeatable: %+v vs %+v", again, fx)
	}

	none := AggregateFacilityEffects(cat, owned, "NRT")
	if none != neutralEffects() {
		t.Fatalf("expected neutral bundle, got %+v", none)
	}
}

func TestOnTimePerformanceClampsAndCountsStretchedAircraft(t *testing.T) {
	cat := catalog.Default()
	st := &models.GameState{
		Date:             date(2025, time.January, 1),
		MaintenanceLevel: models.MaintenanceStandard,
	}
	if got := OnTimePerformance(cat, st); got != 99 {
		t.Fatalf("empty fleet OTP = %f, want 99", got)
	}

	st.Fleet = []models.PlayerAircraft{{
		PurchaseDate: st.Date,
		Schedule:     []models.ScheduleEntry{{RouteID: "a"}, {RouteID: "b"}},
	}}
	if got := OnTimePerformance(cat, st); got != 98 {
		t.Fatalf("stretched aircraft OTP = %f, want 98", got)
	}

	st.MaintenanceLevel = models.MaintenanceMinimal
	st.Fleet[0].PurchaseDate = st.Date.AddDate(-400, 0, 0)
	if got := OnTimePerformance(cat, st); got != 0 {
		t.Fatalf("expected OTP clamped to 0, got %f", got)
	}
}

func TestPassengerSatisfaction(t *testing.T) {
	cat := catalog.Default()
	st := &models.GameState{
		Date: date(2025, time.January, 1),
		ServiceLevels: models.ServiceLevels{
			Meal:    models.MealStandard,
			Crew:    models.CrewAttentive,
			Baggage: models.BaggageFreeCheckedOne,
		},
		Fleet: []models.PlayerAircraft{
			{PurchaseDate: date(2005, time.January, 1), ConfigurationID: models.ConfigFSCLongHaul},
		},
	}
	// 50 + 10 + 15 + 10, minus about 5 years over the age threshold, plus 10 for the cabin
	got := PassengerSatisfaction(cat, st)
	if got < 89.9 || got > 90.1 {
		t.Fatalf("satisfaction %f, want about 90", got)
	}

	st.ServiceLevels = models.ServiceLevels{Meal: models.MealPremium, Crew: models.CrewExemplary, Baggage: models.BaggageGenerous}
	st.Fleet = nil
	if got := PassengerSatisfaction(cat, st); got != 100 {
		t.Fatalf("expected clamp to 100, got %f", got)
	}
}

func TestBrandDemandModifierBlendsDuringTransition(t *testing.T) {
	cat := catalog.Default()
	start := date(2025, time.January, 1)
	st := &models.GameState{
		Date:       start.AddDate(1, 0, 0),
		Reputation: models.ReputationTransitioning,
		ConceptTransition: &models.ConceptTransition{
			From: models.ConceptFSC, To: models.ConceptLCC,
			StartDate: start, EndDate: start.AddDate(2, 0, 0),
		},
	}
	from, _ := cat.Reputation(models.ReputationFSCNormal)
	to, _ := cat.Reputation(models.ReputationLCCStandard)
	p := st.ConceptTransition.Progress(st.Date)
	got := BrandDemandModifier(cat, st)
	want := from.DemandModifier.Economy*(1-p) + to.DemandModifier.Economy*p
	if math.Abs(got.Economy-want) > 1e-12 {
		t.Fatalf("economy modifier %f, want %f", got.Economy, want)
	}
	if p <= 0.45 || p >= 0.55 {
		t.Fatalf("progress %f, want about half", p)
	}
}
