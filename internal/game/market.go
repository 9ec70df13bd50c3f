package game

import (
	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

// BuildRouteMarket samples the unopened routes into at most MarketSize
// offers per category.
func BuildRouteMarket(cat *catalog.Catalog, rng Random, routes []models.Route, airports []models.Airport) models.RouteMarket {
	var pool []models.Route
	for _, r := range routes {
		if !r.IsOpened {
			pool = append(pool, r)
		}
	}
	Shuffle(rng, pool)

	limit := cat.Rules.MarketSize
	market := models.RouteMarket{
		Trunk:    []models.Route{},
		Feeder:   []models.Route{},
		Regional: []models.Route{},
	}
	for _, r := range pool {
		switch ClassifyRoute(r, airports) {
		case models.CategoryTrunk:
			if len(market.Trunk) < limit {
				market.Trunk = append(market.Trunk, r)
			}
		case models.CategoryFeeder:
			if len(market.Feeder) < limit {
				market.Feeder = append(market.Feeder, r)
			}
		default:
			if len(market.Regional) < limit {
				market.Regional = append(market.Regional, r)
			}
		}
	}
	return market
}
