package game

import (
	"testing"
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

func reputationState(rep models.BrandReputation, concept models.AirlineConcept, pax models.Cabins, otp, sat float64) *models.GameState {
	return &models.GameState{
		Date:                  date(2025, time.June, 1),
		FoundingDate:          FoundingDate,
		Reputation:            rep,
		Concept:               concept,
		PassengersCarried:     pax,
		OnTimePerformance:     otp,
		PassengerSatisfaction: sat,
	}
}

func TestNextReputation(t *testing.T) {
	cat := catalog.Default()
	cases := []struct {
		name string
		st   *models.GameState
		want models.BrandReputation
	}{
		{
			name: "below passenger guard",
			st:   reputationState(models.ReputationFSCNormal, models.ConceptFSC, models.Cabins{First: 10_000, Business: 10_000, Economy: 20_000}, 99, 99),
			want: models.ReputationFSCNormal,
		},
		{
			name: "fsc earns premium",
			st:   reputationState(models.ReputationFSCNormal, models.ConceptFSC, models.Cabins{First: 10_000, Business: 20_000, Economy: 70_000}, 96, 90),
			want: models.ReputationFSCPremium,
		},
		{
			name: "fsc short of satisfaction stays",
			st:   reputationState(models.ReputationFSCNormal, models.ConceptFSC, models.Cabins{First: 10_000, Business: 20_000, Economy: 70_000}, 96, 80),
			want: models.ReputationFSCNormal,
		},
		{
			name: "premium loses status on low premium share",
			st:   reputationState(models.ReputationFSCPremium, models.ConceptFSC, models.Cabins{First: 1_000, Business: 9_000, Economy: 90_000}, 99, 99),
			want: models.ReputationFSCNormal,
		},
		{
			name: "premium becomes classic after five years",
			st: func() *models.GameState {
				st := reputationState(models.ReputationFSCPremium, models.ConceptFSC, models.Cabins{First: 10_000, Business: 20_000, Economy: 70_000}, 99, 99)
				st.Date = date(2029, time.January, 2)
				return st
			}(),
			want: models.ReputationFSCClassic,
		},
		{
			name: "downgrade wins over upgrade",
			st: func() *models.GameState {
				st := reputationState(models.ReputationFSCPremium, models.ConceptFSC, models.Cabins{First: 10_000, Business: 20_000, Economy: 70_000}, 80, 99)
				st.Date = date(2030, time.January, 1)
				return st
			}(),
			want: models.ReputationFSCNormal,
		},
		{
			name: "lcc goes ultra low cost",
			st:   reputationState(models.ReputationLCCStandard, models.ConceptLCC, models.Cabins{Business: 1_000, Economy: 99_000}, 50, 10),
			want: models.ReputationULCC,
		},
		{
			name: "lcc earns quality",
			st:   reputationState(models.ReputationLCCStandard, models.ConceptLCC, models.Cabins{Business: 6_000, Economy: 94_000}, 91, 75),
			want: models.ReputationLCCGood,
		},
		{
			name: "ulcc falls back",
			st:   reputationState(models.ReputationULCC, models.ConceptLCC, models.Cabins{Business: 10_000, Economy: 90_000}, 99, 99),
			want: models.ReputationLCCStandard,
		},
		{
			name: "no concept is frozen",
			st:   reputationState(models.ReputationStartup, "", models.Cabins{Economy: 100_000}, 99, 99),
			want: models.ReputationStartup,
		},
	}
	for _, tc := range cases {
		if got := NextReputation(cat, tc.st); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestNextReputationFrozenDuringTransitionAndCrash(t *testing.T) {
	cat := catalog.Default()
	st := reputationState(models.ReputationFSCNormal, models.ConceptFSC, models.Cabins{First: 10_000, Business: 20_000, Economy: 70_000}, 99, 99)
	st.ConceptTransition = &models.ConceptTransition{From: models.ConceptFSC, To: models.ConceptLCC, StartDate: st.Date, EndDate: st.Date.AddDate(2, 0, 0)}
	if got := NextReputation(cat, st); got != models.ReputationFSCNormal {
		t.Fatalf("reputation moved during transition: %s", got)
	}
	st.ConceptTransition = nil
	end := st.Date.AddDate(1, 0, 0)
	st.CrashedReputationEndDate = &end
	if got := NextReputation(cat, st); got != models.ReputationFSCNormal {
		t.Fatalf("reputation moved during crash recovery: %s", got)
	}
}
