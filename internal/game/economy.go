package game

import (
	"math"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

// BrandDemandModifier is the reputation's demand multiplier for the state's
// date. During a rebrand it blends linearly from the old concept's starting
// reputation to the new one's.
func BrandDemandModifier(cat *catalog.Catalog, st *models.GameState) models.CabinFactors {
	if t := st.ConceptTransition; t != nil {
		p := t.Progress(st.Date)
		from, _ := cat.Reputation(cat.InitialReputation(t.From))
		to, _ := cat.Reputation(cat.InitialReputation(t.To))
		return models.CabinFactors{
			First:    from.DemandModifier.First*(1-p) + to.DemandModifier.First*p,
			Business: from.DemandModifier.Business*(1-p) + to.DemandModifier.Business*p,
			Economy:  from.DemandModifier.Economy*(1-p) + to.DemandModifier.Economy*p,
		}
	}
	rep, _ := cat.Reputation(st.Reputation)
	return rep.DemandModifier
}

type routeStats struct {
	route  *models.Route
	supply models.Cabins
	cost   float64
}

// aircraftFixedCost is the all-in daily cost of keeping an aircraft in
// service. ok is false when its model or configuration is unknown.
func aircraftFixedCost(cat *catalog.Catalog, st *models.GameState, ac *models.PlayerAircraft) (float64, bool) {
	model, ok := cat.Model(ac.ModelID)
	if !ok {
		return 0, false
	}
	cfg, ok := cat.Configuration(ac.ConfigurationID)
	if !ok {
		return 0, false
	}
	maint, _ := cat.Maintenance(st.MaintenanceLevel)
	crew, _ := cat.Crew(st.ServiceLevels.Crew)

	cost := model.OperatingCost*cfg.OperatingCostModifier + maint.CostPerAircraftPerDay + crew.CostPerAircraftPerDay
	if ac.Ownership == models.Leased && ac.LeaseCost > 0 && !ac.LeaseExpired(st.Date) {
		cost += ac.LeaseCost / 30
	}
	return cost, true
}

// RunEconomy computes one day of flying for st: seat supply and prorated
// cost per opened route, demand, carried passengers and revenue. It does
// not touch st.
func RunEconomy(cat *catalog.Catalog, st *models.GameState) models.DailyReport {
	report := models.DailyReport{Date: st.Date}

	var order []string
	stats := map[string]*routeStats{}
	for i := range st.Routes {
		r := &st.Routes[i]
		if !r.IsOpened {
			continue
		}
		if _, dup := stats[r.ID]; dup {
			continue
		}
		order = append(order, r.ID)
		stats[r.ID] = &routeStats{route: r}
	}

	for i := range st.Fleet {
		ac := &st.Fleet[i]
		if ac.LeaseExpired(st.Date) || len(ac.Schedule) == 0 {
			continue
		}
		model, ok := cat.Model(ac.ModelID)
		if !ok {
			continue
		}
		fixed, _ := aircraftFixedCost(cat, st, ac)

		totalTime := 0
		for _, item := range ac.Schedule {
			if s, ok := stats[item.RouteID]; ok {
				totalTime += s.route.TurnaroundTime
			}
		}
		for _, item := range ac.Schedule {
			s, ok := stats[item.RouteID]
			if !ok {
				continue
			}
			s.supply.First += ac.Capacity.First
			s.supply.Business += ac.Capacity.Business
			s.supply.Economy += ac.Capacity.Economy
			s.cost += model.CostPerFlight
			if totalTime > 0 {
				s.cost += fixed * float64(s.route.TurnaroundTime) / float64(totalTime)
			}
		}
	}

	brand := BrandDemandModifier(cat, st)
	otpMod := cat.OTPTierFor(st.OnTimePerformance).DemandModifier
	satMod := cat.SatisfactionTierFor(st.PassengerSatisfaction).DemandModifier

	meal, _ := cat.Meal(st.ServiceLevels.Meal)
	bag, _ := cat.Baggage(st.ServiceLevels.Baggage)
	servicePerPax := meal.CostPerPassenger + bag.CostPerPassenger
	fares := cat.TicketPricePerKm

	var carried models.CabinFactors
	for _, id := range order {
		s := stats[id]
		route := s.route
		rr := models.RouteReport{RouteID: id, Supply: s.supply}

		oc, okO := originCode(*route)
		dc, okD := destinationCode(*route)
		if okO && okD {
			_, haveO := st.Airport(oc)
			_, haveD := st.Airport(dc)
			if haveO && haveD {
				s.cost *= AggregateFacilityEffects(cat, st.AirportFacilities, oc).OperatingCostModifier
				s.cost *= AggregateFacilityEffects(cat, st.AirportFacilities, dc).OperatingCostModifier
			}
		}
		report.Expenses += s.cost
		rr.Cost = s.cost

		strategy, ok := cat.Strategy(route.PriceStrategy)
		if route.PriceStrategy != "" && ok {
			comp := cat.CompetitionModifiers[route.Competition]
			base := route.DemandClasses
			demand := models.CabinFactors{
				First:    float64(base.First) * comp * brand.First * strategy.DemandModifier.First * otpMod * satMod.First,
				Business: float64(base.Business) * comp * brand.Business * strategy.DemandModifier.Business * otpMod * satMod.Business,
				Economy:  float64(base.Economy) * comp * brand.Economy * strategy.DemandModifier.Economy * otpMod * satMod.Economy,
			}
			if okO {
				lounge := AggregateFacilityEffects(cat, st.AirportFacilities, oc).DemandModifier
				demand.First *= lounge.First
				demand.Business *= lounge.Business
				demand.Economy *= lounge.Economy
			}

			pax := models.CabinFactors{
				First:    math.Min(float64(s.supply.First), demand.First),
				Business: math.Min(float64(s.supply.Business), demand.Business),
				Economy:  math.Min(float64(s.supply.Economy), demand.Economy),
			}
			serviceCost := (pax.First + pax.Business + pax.Economy) * servicePerPax
			report.Expenses += serviceCost
			rr.Cost += serviceCost

			revenue := pax.First*fares.First*route.Distance*strategy.PriceModifier.First +
				pax.Business*fares.Business*route.Distance*strategy.PriceModifier.Business +
				pax.Economy*fares.Economy*route.Distance*strategy.PriceModifier.Economy
			report.Income += revenue
			rr.Revenue = revenue
			rr.Demand = demand
			rr.Passengers = pax

			carried.First += pax.First
			carried.Business += pax.Business
			carried.Economy += pax.Economy
		}
		report.Routes = append(report.Routes, rr)
	}

	report.Passengers = models.Cabins{
		First:    int(math.Floor(carried.First)),
		Business: int(math.Floor(carried.Business)),
		Economy:  int(math.Floor(carried.Economy)),
	}
	return report
}
