package game

import (
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// averageFleetAge is zero for an empty fleet.
func averageFleetAge(fleet []models.PlayerAircraft, at time.Time) float64 {
	if len(fleet) == 0 {
		return 0
	}
	var sum float64
	for i := range fleet {
		sum += fleet[i].AgeYears(at)
	}
	return sum / float64(len(fleet))
}

func foreignHubCount(st *models.GameState) int {
	p := st.AirlineProfile
	if p == nil {
		return 0
	}
	n := 0
	for _, code := range p.Hubs {
		if a, ok := st.Airport(code); ok && a.Country != p.Country {
			n++
		}
	}
	return n
}

// OnTimePerformance scores the operation for the state's current date.
func OnTimePerformance(cat *catalog.Catalog, st *models.GameState) float64 {
	r := cat.Rules
	m, _ := cat.Maintenance(st.MaintenanceLevel)

	score := r.OTPBase + m.OTPModifier

	agePenalty := averageFleetAge(st.Fleet, st.Date) * r.OTPAgePenaltyPerYear
	score -= agePenalty * (1 - m.OTPAgeMitigation)

	score += float64(foreignHubCount(st)) * r.OTPForeignHubBonus

	otpBonus, _ := globalFacilityBonuses(cat, st.AirportFacilities)
	score += otpBonus

	overworked := 0
	for i := range st.Fleet {
		if float64(len(st.Fleet[i].Schedule)) > r.OTPFleetStretchThreshold {
			overworked++
		}
	}
	score -= float64(overworked) * r.OTPFleetStretchPenalty

	return clampScore(score)
}

// PassengerSatisfaction scores service, cabin and fleet quality.
func PassengerSatisfaction(cat *catalog.Catalog, st *models.GameState) float64 {
	r := cat.Rules
	score := r.SatisfactionBase

	if meal, ok := cat.Meal(st.ServiceLevels.Meal); ok {
		score += meal.SatisfactionPoints
	}
	if crew, ok := cat.Crew(st.ServiceLevels.Crew); ok {
		score += crew.SatisfactionPoints
	}
	if bag, ok := cat.Baggage(st.ServiceLevels.Baggage); ok {
		score += bag.SatisfactionPoints
	}

	if avg := averageFleetAge(st.Fleet, st.Date); avg > r.SatisfactionAgeThreshold {
		score -= (avg - r.SatisfactionAgeThreshold) * r.SatisfactionAgePenaltyPerYear
	}

	if len(st.Fleet) > 0 {
		var sum float64
		for i := range st.Fleet {
			if cfg, ok := cat.Configuration(st.Fleet[i].ConfigurationID); ok {
				sum += cfg.SatisfactionModifier
			}
		}
		score += sum / float64(len(st.Fleet))
	}

	_, satBonus := globalFacilityBonuses(cat, st.AirportFacilities)
	score += satBonus

	return clampScore(score)
}
