package game

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/errors"
	"airline_tycoon/internal/models"
)

// Actions are the player's commands. Each validates against the state it is
// handed, mutates it only on success and returns a notification.
type Actions struct {
	cat   *catalog.Catalog
	rng   Random
	newID func() string
}

func NewActions(cat *catalog.Catalog, rng Random) *Actions {
	return &Actions{
		cat:   cat,
		rng:   rng,
		newID: func() string { return "ac-" + uuid.NewString() },
	}
}

type SetupRequest struct {
	Name    string                 `json:"name"`
	Code    string                 `json:"code"`
	Hub     string                 `json:"hub"`
	Country string                 `json:"country"`
	Concept models.AirlineConcept  `json:"concept"`
	Capital models.StartingCapital `json:"capital"`
}

type AcquireRequest struct {
	ModelID         string                   `json:"model_id"`
	ConfigurationID models.ConfigurationType `json:"configuration_id"`
	Nickname        string                   `json:"nickname"`
	Base            string                   `json:"base"`
}

func charge(st *models.GameState, cost float64, what string) error {
	if cost > 0 && st.Cash < cost {
		return errors.InsufficientFundsf("not enough cash for %s: need %s, have %s", what, FormatMoney(cost), FormatMoney(st.Cash))
	}
	st.Cash -= cost
	return nil
}

func requireSetup(st *models.GameState) error {
	if st.AirlineProfile == nil {
		return errors.Validationf("the airline has not been set up yet")
	}
	return nil
}

func findAircraft(st *models.GameState, id string) (*models.PlayerAircraft, error) {
	i := st.AircraftIndex(id)
	if i < 0 {
		return nil, errors.NotFoundf("aircraft %s not found", id)
	}
	return &st.Fleet[i], nil
}

func removeAircraft(st *models.GameState, id string) {
	st.Fleet = slices.DeleteFunc(st.Fleet, func(ac models.PlayerAircraft) bool { return ac.ID == id })
}

func validAirlineCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Setup founds the airline at its first hub.
func (a *Actions) Setup(st *models.GameState, req SetupRequest) (string, error) {
	if st.AirlineProfile != nil {
		return "", errors.Conflictf("the airline %s is already set up", st.AirlineProfile.Name)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", errors.Validationf("airline name is required")
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !validAirlineCode(code) {
		return "", errors.Validationf("airline code must be two letters or digits, got %q", req.Code)
	}
	if a.cat.IsRegisteredCode(code) {
		return "", errors.Conflictf("airline code %s is already in use", code)
	}
	concept, ok := a.cat.Concept(req.Concept)
	if !ok {
		return "", errors.Validationf("unknown airline concept %q", req.Concept)
	}
	capital, ok := a.cat.StartingCapital[req.Capital]
	if !ok {
		return "", errors.Validationf("unknown starting capital %q", req.Capital)
	}

	airports := slices.Clone(a.cat.Airports)
	hubCode := strings.ToUpper(strings.TrimSpace(req.Hub))
	hi := slices.IndexFunc(airports, func(ap models.Airport) bool { return ap.Code == hubCode })
	if hi < 0 {
		return "", errors.NotFoundf("hub airport %q not found", req.Hub)
	}
	airports[hi].Slots *= 2
	hub := airports[hi]

	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country == "" {
		country = hub.Country
	}

	routes := GenerateRoutesForHub(a.cat, hub, airports)

	st.AirlineProfile = &models.AirlineProfile{Name: name, Code: code, Hubs: []string{hub.Code}, Country: country}
	st.Cash = capital.Amount
	st.Airports = airports
	st.Routes = routes
	st.RouteMarket = BuildRouteMarket(a.cat, a.rng, routes, airports)
	st.Concept = concept.ID
	st.Reputation = concept.InitialReputation
	st.AirportFacilities = map[string][]models.FacilityType{hub.Code: {models.FacilityOffice}}

	return fmt.Sprintf("Congratulations on founding %s (%s)!", name, code), nil
}

func (a *Actions) resolveAcquisition(st *models.GameState, req AcquireRequest) (catalog.AircraftModel, catalog.Configuration, string, error) {
	if err := requireSetup(st); err != nil {
		return catalog.AircraftModel{}, catalog.Configuration{}, "", err
	}
	model, ok := a.cat.Model(req.ModelID)
	if !ok {
		return model, catalog.Configuration{}, "", errors.NotFoundf("aircraft model %q not found", req.ModelID)
	}
	cfg, ok := a.cat.Configuration(req.ConfigurationID)
	if !ok {
		return model, cfg, "", errors.Validationf("unknown cabin configuration %q", req.ConfigurationID)
	}
	if model.UnlockYear > st.Date.Year() {
		return model, cfg, "", errors.Validationf("%s is not available until %d", model.Name, model.UnlockYear)
	}
	base := strings.ToUpper(strings.TrimSpace(req.Base))
	if base == "" {
		base = st.AirlineProfile.Hubs[0]
	}
	if !st.AirlineProfile.HasHub(base) {
		return model, cfg, "", errors.Validationf("%s is not one of the airline's hubs", base)
	}
	return model, cfg, base, nil
}

func nicknameOr(nickname string, model catalog.AircraftModel) string {
	if n := strings.TrimSpace(nickname); n != "" {
		return n
	}
	return model.Name
}

// PurchaseAircraft buys a new airframe outright.
func (a *Actions) PurchaseAircraft(st *models.GameState, req AcquireRequest) (string, error) {
	model, cfg, base, err := a.resolveAcquisition(st, req)
	if err != nil {
		return "", err
	}
	if err := charge(st, model.Price*cfg.CostModifier, "the aircraft"); err != nil {
		return "", err
	}
	nick := nicknameOr(req.Nickname, model)
	st.Fleet = append(st.Fleet, models.PlayerAircraft{
		ID:              a.newID(),
		Nickname:        nick,
		ModelID:         model.ID,
		Schedule:        []models.ScheduleEntry{},
		PurchaseDate:    st.Date.AddDate(-model.InitialAge, 0, 0),
		ConfigurationID: cfg.ID,
		Capacity:        cfg.Seating(model.Capacity),
		Ownership:       models.Owned,
		Base:            base,
	})
	return fmt.Sprintf("Purchased %s (%s). Assign it to routes to start flying.", nick, model.Name), nil
}

// LeaseAircraft takes an airframe on a fixed-term lease for a one month deposit.
func (a *Actions) LeaseAircraft(st *models.GameState, req AcquireRequest) (string, error) {
	model, cfg, base, err := a.resolveAcquisition(st, req)
	if err != nil {
		return "", err
	}
	r := a.cat.Rules
	monthly := model.Price * cfg.CostModifier * r.LeaseCostFraction
	if err := charge(st, monthly*r.LeaseDepositMonths, "the lease deposit"); err != nil {
		return "", err
	}
	age := min(max(st.Date.Year()-model.UnlockYear, r.LeaseMinAge), r.LeaseMaxAge)
	end := st.Date.AddDate(r.LeaseTermYears, 0, 0)
	nick := nicknameOr(req.Nickname, model)
	st.Fleet = append(st.Fleet, models.PlayerAircraft{
		ID:              a.newID(),
		Nickname:        nick,
		ModelID:         model.ID,
		Schedule:        []models.ScheduleEntry{},
		PurchaseDate:    st.Date.AddDate(-age, 0, 0),
		ConfigurationID: cfg.ID,
		Capacity:        cfg.Seating(model.Capacity),
		Ownership:       models.Leased,
		LeaseCost:       monthly,
		LeaseEndDate:    &end,
		Base:            base,
	})
	return fmt.Sprintf("Leased %s (%s). Assign it to routes to start flying.", nick, model.Name), nil
}

// OpenRoute pays the opening price and takes the route off the market.
func (a *Actions) OpenRoute(st *models.GameState, routeID string, strategy models.PriceStrategy) (string, error) {
	i := st.RouteIndex(routeID)
	if i < 0 {
		return "", errors.NotFoundf("route %s not found", routeID)
	}
	route := &st.Routes[i]
	if route.IsOpened {
		return "", errors.Conflictf("route %s is already open", routeID)
	}
	if _, ok := a.cat.Strategy(strategy); !ok {
		return "", errors.Validationf("unknown price strategy %q", strategy)
	}
	if err := charge(st, route.Price, "the route"); err != nil {
		return "", err
	}
	route.IsOpened = true
	route.PriceStrategy = strategy
	st.RouteMarket.Remove(routeID)
	return fmt.Sprintf("Opened %s - %s for %s.", route.Origin, route.Destination, FormatMoney(route.Price)), nil
}

// UpdateSchedule replaces an aircraft's daily rotation. A single route may
// run past a day on its own; several together must fit in one day.
func (a *Actions) UpdateSchedule(st *models.GameState, aircraftID string, routeIDs []string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	total := 0
	for _, id := range routeIDs {
		i := st.RouteIndex(id)
		if i < 0 {
			return "", errors.NotFoundf("route %s not found", id)
		}
		if !st.Routes[i].IsOpened {
			return "", errors.Validationf("route %s is not open", id)
		}
		total += st.Routes[i].TurnaroundTime
	}
	if len(routeIDs) > 1 && total > a.cat.Rules.DailyMinutes {
		return "", errors.Validationf("schedule needs %d minutes, only %d available", total, a.cat.Rules.DailyMinutes)
	}

	schedule := make([]models.ScheduleEntry, 0, len(routeIDs))
	for _, id := range routeIDs {
		schedule = append(schedule, models.ScheduleEntry{
			RouteID:      id,
			FlightNumber: a.cat.Rules.FlightNumberMin + a.rng.Intn(a.cat.Rules.FlightNumberSpan),
		})
	}
	ac.Schedule = schedule
	return fmt.Sprintf("Schedule for %s updated.", ac.Nickname), nil
}

func requireLeased(ac *models.PlayerAircraft) error {
	if ac.Ownership != models.Leased {
		return errors.Validationf("%s is not leased", ac.Nickname)
	}
	return nil
}

// ReturnLease hands a leased aircraft back, with a penalty when early.
func (a *Actions) ReturnLease(st *models.GameState, aircraftID string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	if err := requireLeased(ac); err != nil {
		return "", err
	}
	early := ac.LeaseEndDate != nil && st.Date.Before(*ac.LeaseEndDate)
	penalty := 0.0
	if early {
		penalty = ac.LeaseCost * a.cat.Rules.LeaseEarlyReturnPenaltyMonths
	}
	if err := charge(st, penalty, "the early return penalty"); err != nil {
		return "", err
	}
	nick := ac.Nickname
	removeAircraft(st, aircraftID)
	if early {
		return fmt.Sprintf("Returned %s early (penalty %s).", nick, FormatMoney(penalty)), nil
	}
	return fmt.Sprintf("Returned %s.", nick), nil
}

// ExtendLease renews the lease for another full term and grounds the aircraft.
func (a *Actions) ExtendLease(st *models.GameState, aircraftID string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	if err := requireLeased(ac); err != nil {
		return "", err
	}
	if ac.LeaseEndDate == nil {
		return "", errors.Validationf("%s has no lease term", ac.Nickname)
	}
	end := ac.LeaseEndDate.AddDate(a.cat.Rules.LeaseTermYears, 0, 0)
	ac.LeaseEndDate = &end
	ac.Schedule = []models.ScheduleEntry{}
	return fmt.Sprintf("Extended the lease of %s by %d years.", ac.Nickname, a.cat.Rules.LeaseTermYears), nil
}

// BuyoutAircraft converts a leased aircraft into an owned one.
func (a *Actions) BuyoutAircraft(st *models.GameState, aircraftID string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	if err := requireLeased(ac); err != nil {
		return "", err
	}
	model, ok := a.cat.Model(ac.ModelID)
	if !ok {
		return "", errors.NotFoundf("aircraft model %q not found", ac.ModelID)
	}
	cost := model.Price * a.cat.Rules.LeaseBuyoutFraction
	if err := charge(st, cost, "the buyout"); err != nil {
		return "", err
	}
	ac.Ownership = models.Owned
	ac.LeaseCost = 0
	ac.LeaseEndDate = nil
	ac.Schedule = []models.ScheduleEntry{}
	return fmt.Sprintf("Bought out %s for %s.", ac.Nickname, FormatMoney(cost)), nil
}

// SalePrice depreciates linearly to a residual value over the depreciation period.
func (a *Actions) SalePrice(st *models.GameState, ac *models.PlayerAircraft) (float64, error) {
	model, ok := a.cat.Model(ac.ModelID)
	if !ok {
		return 0, errors.NotFoundf("aircraft model %q not found", ac.ModelID)
	}
	cfg, ok := a.cat.Configuration(ac.ConfigurationID)
	if !ok {
		return 0, errors.Validationf("unknown cabin configuration %q", ac.ConfigurationID)
	}
	r := a.cat.Rules
	factor := min(ac.AgeYears(st.Date), r.SaleDepreciationYears) / r.SaleDepreciationYears
	return model.Price * cfg.CostModifier * (1 - (1-r.SaleResidualFraction)*factor), nil
}

func (a *Actions) SellAircraft(st *models.GameState, aircraftID string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	if ac.Ownership != models.Owned {
		return "", errors.Validationf("%s is leased and cannot be sold", ac.Nickname)
	}
	price, err := a.SalePrice(st, ac)
	if err != nil {
		return "", err
	}
	nick := ac.Nickname
	st.Cash += price
	removeAircraft(st, aircraftID)
	return fmt.Sprintf("Sold %s for %s.", nick, FormatMoney(price)), nil
}

// ChangeConcept starts a multi-year rebrand towards another concept.
func (a *Actions) ChangeConcept(st *models.GameState, to models.AirlineConcept) (string, error) {
	target, ok := a.cat.Concept(to)
	if !ok {
		return "", errors.Validationf("unknown airline concept %q", to)
	}
	if st.Concept == "" {
		return "", errors.Validationf("the airline has not chosen a concept yet")
	}
	if st.ConceptTransition != nil {
		return "", errors.Conflictf("a rebrand is already in progress")
	}
	if st.Concept == to {
		return "", errors.Conflictf("the airline already operates as %s", to)
	}
	r := a.cat.Rules
	if err := charge(st, r.ConceptChangeCost, "the rebrand"); err != nil {
		return "", err
	}
	st.ConceptTransition = &models.ConceptTransition{
		From:      st.Concept,
		To:        to,
		StartDate: st.Date,
		EndDate:   st.Date.AddDate(r.ConceptTransitionYears, 0, 0),
	}
	st.Reputation = models.ReputationTransitioning
	return fmt.Sprintf("Rebranding to '%s' has started and will take %d years.", target.Name, r.ConceptTransitionYears), nil
}

func (a *Actions) SetMaintenanceLevel(st *models.GameState, level models.MaintenanceLevel) (string, error) {
	m, ok := a.cat.Maintenance(level)
	if !ok {
		return "", errors.Validationf("unknown maintenance level %q", level)
	}
	st.MaintenanceLevel = level
	return fmt.Sprintf("Maintenance level set to '%s'.", m.Name), nil
}

func (a *Actions) SetRoutePriceStrategy(st *models.GameState, routeID string, strategy models.PriceStrategy) (string, error) {
	i := st.RouteIndex(routeID)
	if i < 0 {
		return "", errors.NotFoundf("route %s not found", routeID)
	}
	s, ok := a.cat.Strategy(strategy)
	if !ok {
		return "", errors.Validationf("unknown price strategy %q", strategy)
	}
	st.Routes[i].PriceStrategy = strategy
	return fmt.Sprintf("Pricing on the route to %s is now '%s'.", st.Routes[i].Destination, s.Name), nil
}

// EstablishHub opens a new base. A foreign base is a cheaper sales office
// and does not open new routes.
func (a *Actions) EstablishHub(st *models.GameState, code string) (string, error) {
	if err := requireSetup(st); err != nil {
		return "", err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	airport, ok := st.Airport(code)
	if !ok {
		return "", errors.NotFoundf("airport %q not found", code)
	}
	if st.AirlineProfile.HasHub(code) {
		return "", errors.Conflictf("%s is already a hub", code)
	}
	foreign := airport.Country != st.AirlineProfile.Country
	if err := charge(st, a.cat.HubEstablishmentCost(airport.Scale, foreign), "the new hub"); err != nil {
		return "", err
	}

	st.AirlineProfile.Hubs = append(st.AirlineProfile.Hubs, code)
	if st.AirportFacilities == nil {
		st.AirportFacilities = map[string][]models.FacilityType{}
	}
	if !st.HasFacility(code, models.FacilityOffice) {
		st.AirportFacilities[code] = append(st.AirportFacilities[code], models.FacilityOffice)
	}
	if foreign {
		return fmt.Sprintf("Opened an overseas office at %s. Routes touching it cost less to run.", airport.Name), nil
	}
	st.Routes = append(st.Routes, GenerateRoutesForHub(a.cat, airport, st.Airports)...)
	return fmt.Sprintf("Established a new hub at %s!", airport.Name), nil
}

func (a *Actions) PurchaseFacility(st *models.GameState, code string, facility models.FacilityType) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	airport, ok := st.Airport(code)
	if !ok {
		return "", errors.NotFoundf("airport %q not found", code)
	}
	f, ok := a.cat.Facility(facility)
	if !ok {
		return "", errors.Validationf("unknown facility %q", facility)
	}
	if st.HasFacility(code, facility) {
		return "", errors.Conflictf("%s already has a %s", code, f.Name)
	}
	if f.Prerequisite != "" && !st.HasFacility(code, f.Prerequisite) {
		pre := string(f.Prerequisite)
		if p, ok := a.cat.Facility(f.Prerequisite); ok {
			pre = p.Name
		}
		return "", errors.Validationf("%s requires a %s at %s first", f.Name, pre, code)
	}
	if err := charge(st, f.Cost[airport.Scale], f.Name); err != nil {
		return "", err
	}
	if st.AirportFacilities == nil {
		st.AirportFacilities = map[string][]models.FacilityType{}
	}
	st.AirportFacilities[code] = append(st.AirportFacilities[code], facility)
	return fmt.Sprintf("Built a %s at %s.", f.Name, code), nil
}

// TransferAircraftHub rebases an idle aircraft to another hub.
func (a *Actions) TransferAircraftHub(st *models.GameState, aircraftID, hub string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	if len(ac.Schedule) > 0 {
		return "", errors.Conflictf("%s still has a schedule; clear it before transferring", ac.Nickname)
	}
	hub = strings.ToUpper(strings.TrimSpace(hub))
	if !st.AirlineProfile.HasHub(hub) {
		return "", errors.Validationf("%s is not one of the airline's hubs", hub)
	}
	if ac.Base == hub {
		return "", errors.Conflictf("%s is already based at %s", ac.Nickname, hub)
	}
	cost := a.cat.Rules.HubTransferCost
	if err := charge(st, cost, "the transfer"); err != nil {
		return "", err
	}
	ac.Base = hub
	return fmt.Sprintf("Moved %s to %s (cost %s).", ac.Nickname, hub, FormatMoney(cost)), nil
}

// SetServiceLevel changes the meal, crew or baggage policy.
func (a *Actions) SetServiceLevel(st *models.GameState, category, level string) (string, error) {
	var (
		sl   catalog.ServiceLevel
		ok   bool
		what string
	)
	switch strings.ToLower(category) {
	case "meal":
		sl, ok = a.cat.Meal(models.MealServiceLevel(level))
		if ok {
			st.ServiceLevels.Meal = models.MealServiceLevel(level)
		}
		what = "Meal"
	case "crew":
		sl, ok = a.cat.Crew(models.CrewServiceLevel(level))
		if ok {
			st.ServiceLevels.Crew = models.CrewServiceLevel(level)
		}
		what = "Cabin crew"
	case "baggage":
		sl, ok = a.cat.Baggage(models.BaggageServiceLevel(level))
		if ok {
			st.ServiceLevels.Baggage = models.BaggageServiceLevel(level)
		}
		what = "Baggage"
	default:
		return "", errors.Validationf("unknown service category %q", category)
	}
	if !ok {
		return "", errors.Validationf("unknown %s service level %q", strings.ToLower(category), level)
	}
	return fmt.Sprintf("%s service set to '%s'.", what, sl.Name), nil
}

// ChangeAircraftConfiguration refits the cabin, re-seats the aircraft and grounds it.
func (a *Actions) ChangeAircraftConfiguration(st *models.GameState, aircraftID string, config models.ConfigurationType) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	model, ok := a.cat.Model(ac.ModelID)
	if !ok {
		return "", errors.NotFoundf("aircraft model %q not found", ac.ModelID)
	}
	cfg, ok := a.cat.Configuration(config)
	if !ok {
		return "", errors.Validationf("unknown cabin configuration %q", config)
	}
	cost := model.Price * a.cat.Rules.ConfigChangeCostFraction
	if err := charge(st, cost, "the cabin change"); err != nil {
		return "", err
	}
	ac.ConfigurationID = cfg.ID
	ac.Capacity = cfg.Seating(model.Capacity)
	ac.Schedule = []models.ScheduleEntry{}
	return fmt.Sprintf("Changed the cabin of %s (cost %s).", ac.Nickname, FormatMoney(cost)), nil
}

// RetrofitAircraft resets the airframe's age to zero and grounds it.
func (a *Actions) RetrofitAircraft(st *models.GameState, aircraftID string) (string, error) {
	ac, err := findAircraft(st, aircraftID)
	if err != nil {
		return "", err
	}
	model, ok := a.cat.Model(ac.ModelID)
	if !ok {
		return "", errors.NotFoundf("aircraft model %q not found", ac.ModelID)
	}
	cost := model.Price * a.cat.Rules.RetrofitCostFraction
	if err := charge(st, cost, "the retrofit"); err != nil {
		return "", err
	}
	ac.PurchaseDate = st.Date
	ac.Schedule = []models.ScheduleEntry{}
	return fmt.Sprintf("Retrofitted %s (cost %s).", ac.Nickname, FormatMoney(cost)), nil
}
