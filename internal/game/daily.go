package game

import (
	"fmt"

	"github.com/brunoga/deep"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

const (
	noteCrashRecovered = "The airline has put the fatal accident behind it; its reputation starts to recover."
	noteLeaseExpired   = "Some aircraft leases have expired. Return, extend or buy them out from the fleet panel."
)

// Simulator advances a game state one day at a time.
type Simulator struct {
	cat *catalog.Catalog
	rng Random
}

func NewSimulator(cat *catalog.Catalog, rng Random) *Simulator {
	return &Simulator{cat: cat, rng: rng}
}

// ProcessDailyUpdate returns the state one day after prev together with the
// notifications raised along the way. prev is never modified.
func (s *Simulator) ProcessDailyUpdate(prev models.GameState) (models.GameState, []string) {
	st := deep.MustCopy(prev)
	var notes []string

	st.Date = st.Date.AddDate(0, 0, 1)

	if end := st.CrashedReputationEndDate; end != nil && !st.Date.Before(*end) {
		st.Reputation = s.cat.InitialReputation(st.Concept)
		st.CrashedReputationEndDate = nil
		notes = append(notes, noteCrashRecovered)
	}

	if note, crashed := s.checkAccident(&st); crashed {
		// an accident ends the day
		return st, append(notes, note)
	}

	grounded := false
	for i := range st.Fleet {
		ac := &st.Fleet[i]
		if ac.LeaseExpired(st.Date) && len(ac.Schedule) > 0 {
			ac.Schedule = []models.ScheduleEntry{}
			grounded = true
		}
	}
	if grounded {
		notes = append(notes, noteLeaseExpired)
	}

	if t := st.ConceptTransition; t != nil && !st.Date.Before(t.EndDate) {
		st.Concept = t.To
		st.Reputation = s.cat.InitialReputation(t.To)
		st.ConceptTransition = nil
		name := string(t.To)
		if c, ok := s.cat.Concept(t.To); ok {
			name = c.Name
		}
		notes = append(notes, fmt.Sprintf("The rebrand to '%s' is complete.", name))
	}

	st.OnTimePerformance = OnTimePerformance(s.cat, &st)
	st.PassengerSatisfaction = PassengerSatisfaction(s.cat, &st)

	report := RunEconomy(s.cat, &st)
	st.Cash += report.Income - report.Expenses
	st.LastReport = &report

	if st.Date.Day() == 1 {
		st.RouteMarket = BuildRouteMarket(s.cat, s.rng, st.Routes, st.Airports)
	}

	st.PassengersCarried.First += report.Passengers.First
	st.PassengersCarried.Business += report.Passengers.Business
	st.PassengersCarried.Economy += report.Passengers.Economy

	if st.BrandPhase() == models.PhaseStable {
		st.Reputation = NextReputation(s.cat, &st)
	}

	return st, notes
}

// checkAccident draws once per scheduled aircraft in fleet order and
// applies the first accident, if any. At most one accident happens a day.
func (s *Simulator) checkAccident(st *models.GameState) (string, bool) {
	if st.Reputation == models.ReputationCrashed {
		return "", false
	}
	rules := s.cat.Rules
	maintMod := 1.0
	if m, ok := s.cat.Maintenance(st.MaintenanceLevel); ok {
		maintMod = m.AccidentModifier
	}

	for i := range st.Fleet {
		ac := st.Fleet[i]
		if len(ac.Schedule) == 0 {
			continue
		}
		age := ac.AgeYears(st.Date)
		baseMod := AggregateFacilityEffects(s.cat, st.AirportFacilities, ac.Base).AccidentModifier
		p := (rules.AccidentBaseProbability + age*rules.AccidentAgeModifier) * maintMod * baseMod
		if s.rng.Float64() >= p {
			continue
		}

		st.Fleet = append(st.Fleet[:i:i], st.Fleet[i+1:]...)
		st.Cash -= rules.AccidentPenalty
		st.Reputation = models.ReputationCrashed
		end := st.Date.AddDate(rules.CrashDurationYears, 0, 0)
		st.CrashedReputationEndDate = &end

		modelName := ac.ModelID
		if m, ok := s.cat.Model(ac.ModelID); ok {
			modelName = m.Name
		}
		return fmt.Sprintf("[EMERGENCY] %s (%s) has been involved in a fatal accident!", ac.Nickname, modelName), true
	}
	return "", false
}
