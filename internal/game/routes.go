package game

import (
	"math"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

// GenerateRoutesForHub builds every candidate route out of hub. Self
// pairs, banned domestic destinations and very short hops are skipped.
func GenerateRoutesForHub(cat *catalog.Catalog, hub models.Airport, airports []models.Airport) []models.Route {
	rules := cat.Rules
	var routes []models.Route
	for _, dest := range airports {
		if dest.Code == hub.Code {
			continue
		}
		if cat.Banned(hub, dest) {
			continue
		}
		dist := math.Round(AirportDistance(hub, dest))
		if dist < rules.MinRouteDistanceKm {
			continue
		}
		turnaround := int(math.Round(dist/rules.CruiseSpeedKmh*2*60 + rules.GroundTimeMinutes))
		price := math.Round(dist*rules.RoutePricePerKm + rules.RouteBasePrice)
		domestic := hub.Country == dest.Country

		routes = append(routes, models.Route{
			ID:              RouteID(hub.Code, dest.Code),
			Origin:          hub.Name,
			Destination:     dest.Name,
			OriginCode:      hub.Code,
			DestinationCode: dest.Code,
			Distance:        dist,
			TurnaroundTime:  turnaround,
			Price:           price,
			DemandClasses:   cat.Demand(hub.Scale, dest.Scale, domestic),
			Competition:     cat.CompetitionFor(hub.Scale, dest.Scale),
		})
	}
	return routes
}

func RouteID(origin, dest string) string {
	return origin + "-" + dest
}

// routeEndpointCode prefers the explicit code and falls back to the
// parenthesised code of the display name.
func routeEndpointCode(code, name string) (string, bool) {
	if code != "" {
		return code, true
	}
	return catalog.ParseAirportCode(name)
}

func originCode(r models.Route) (string, bool) {
	return routeEndpointCode(r.OriginCode, r.Origin)
}

func destinationCode(r models.Route) (string, bool) {
	return routeEndpointCode(r.DestinationCode, r.Destination)
}

func findAirport(airports []models.Airport, code string) (models.Airport, bool) {
	for _, a := range airports {
		if a.Code == code {
			return a, true
		}
	}
	return models.Airport{}, false
}

// ClassifyRoute buckets a route by the scale of its endpoints. Anything
// that is neither trunk nor feeder, including unresolved airports, is regional.
func ClassifyRoute(route models.Route, airports []models.Airport) models.RouteCategory {
	oc, ok1 := originCode(route)
	dc, ok2 := destinationCode(route)
	if !ok1 || !ok2 {
		return models.CategoryRegional
	}
	origin, ok1 := findAirport(airports, oc)
	dest, ok2 := findAirport(airports, dc)
	if !ok1 || !ok2 {
		return models.CategoryRegional
	}

	switch {
	case origin.Scale.Large() && dest.Scale.Large():
		return models.CategoryTrunk
	case origin.Scale.Large() && dest.Scale == models.ScaleMajor,
		origin.Scale == models.ScaleMajor && dest.Scale.Large():
		return models.CategoryFeeder
	default:
		return models.CategoryRegional
	}
}
