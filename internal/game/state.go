package game

import (
	"slices"
	"time"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

// FoundingDate is the first day of every new game.
var FoundingDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewGameState returns the state of a game before the airline is set up.
func NewGameState(cat *catalog.Catalog) models.GameState {
	return models.GameState{
		Date:                  FoundingDate,
		FoundingDate:          FoundingDate,
		Fleet:                 []models.PlayerAircraft{},
		Routes:                []models.Route{},
		RouteMarket:           models.RouteMarket{Trunk: []models.Route{}, Feeder: []models.Route{}, Regional: []models.Route{}},
		Reputation:            models.ReputationStartup,
		MaintenanceLevel:      models.MaintenanceStandard,
		AirportFacilities:     map[string][]models.FacilityType{},
		Airports:              slices.Clone(cat.Airports),
		OnTimePerformance:     98,
		PassengerSatisfaction: 75,
		ServiceLevels: models.ServiceLevels{
			Meal:    models.MealStandard,
			Crew:    models.CrewAttentive,
			Baggage: models.BaggageFreeCheckedOne,
		},
		RecentEvents: []string{},
	}
}
