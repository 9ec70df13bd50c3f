// Package catalog holds the read-only reference tables the simulation
// consumes by key: aircraft, cabin configurations, brand reputations,
// pricing, service levels, facilities and demand matrices.
package catalog

import (
	"slices"
	"strings"

	"airline_tycoon/internal/models"
)

type AircraftModel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Manufacturer  string  `json:"manufacturer"`
	Price         float64 `json:"price"`
	RangeKm       int     `json:"range_km"`
	Capacity      int     `json:"capacity"`
	OperatingCost float64 `json:"operating_cost"`
	UnlockYear    int     `json:"unlock_year"`
	CostPerFlight float64 `json:"cost_per_flight"`
	// InitialAge backdates the purchase date of a newly bought airframe.
	InitialAge int `json:"initial_age_on_purchase,omitempty"`
}

// SeatingSplit is the fraction of base capacity given to each cabin.
type SeatingSplit struct {
	First    float64 `json:"first"`
	Business float64 `json:"business"`
	Economy  float64 `json:"economy"`
}

type Configuration struct {
	ID                    models.ConfigurationType `json:"id"`
	Name                  string                   `json:"name"`
	CostModifier          float64                  `json:"cost_modifier"`
	OperatingCostModifier float64                  `json:"operating_cost_modifier"`
	Split                 SeatingSplit             `json:"split"`
	SatisfactionModifier  float64                  `json:"satisfaction_modifier"`
}

// Seating floors each cabin's share of the model's base capacity.
func (c Configuration) Seating(capacity int) models.Cabins {
	return models.Cabins{
		First:    floorSeats(capacity, c.Split.First),
		Business: floorSeats(capacity, c.Split.Business),
		Economy:  floorSeats(capacity, c.Split.Economy),
	}
}

// Reputation thresholds left at zero are treated as not defined.
type Reputation struct {
	ID                           models.BrandReputation `json:"id"`
	Name                         string                 `json:"name"`
	DemandModifier               models.CabinFactors    `json:"demand_modifier"`
	OTPPenaltyThreshold          float64                `json:"otp_penalty_threshold,omitempty"`
	SatisfactionPenaltyThreshold float64                `json:"satisfaction_penalty_threshold,omitempty"`
	RequiredOTP                  float64                `json:"required_otp,omitempty"`
	RequiredSatisfaction         float64                `json:"required_satisfaction,omitempty"`
}

type Concept struct {
	ID                models.AirlineConcept  `json:"id"`
	Name              string                 `json:"name"`
	InitialReputation models.BrandReputation `json:"initial_reputation"`
}

type PriceStrategy struct {
	ID             models.PriceStrategy `json:"id"`
	Name           string               `json:"name"`
	PriceModifier  models.CabinFactors  `json:"price_modifier"`
	DemandModifier models.CabinFactors  `json:"demand_modifier"`
}

type Maintenance struct {
	ID                    models.MaintenanceLevel `json:"id"`
	Name                  string                  `json:"name"`
	CostPerAircraftPerDay float64                 `json:"cost_per_aircraft_per_day"`
	AccidentModifier      float64                 `json:"accident_modifier"`
	OTPModifier           float64                 `json:"otp_modifier"`
	// OTPAgeMitigation is the fraction of the fleet-age OTP penalty forgiven.
	OTPAgeMitigation float64 `json:"otp_age_mitigation"`
}

type ServiceLevel struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	CostPerPassenger      float64 `json:"cost_per_passenger,omitempty"`
	CostPerAircraftPerDay float64 `json:"cost_per_aircraft_per_day,omitempty"`
	SatisfactionPoints    float64 `json:"satisfaction_points"`
}

type OTPTier struct {
	Name           string  `json:"name"`
	Threshold      float64 `json:"threshold"`
	DemandModifier float64 `json:"demand_modifier"`
}

type SatisfactionTier struct {
	Name           string              `json:"name"`
	Threshold      float64             `json:"threshold"`
	DemandModifier models.CabinFactors `json:"demand_modifier"`
}

// FacilityEffects fields left at zero are treated as not defined.
type FacilityEffects struct {
	OperatingCostModifier float64             `json:"operating_cost_modifier,omitempty"`
	AccidentModifier      float64             `json:"accident_modifier,omitempty"`
	OTPBonus              float64             `json:"otp_bonus,omitempty"`
	SatisfactionBonus     float64             `json:"satisfaction_bonus,omitempty"`
	DemandModifier        models.CabinFactors `json:"demand_modifier"`
}

type Facility struct {
	ID           models.FacilityType             `json:"id"`
	Name         string                          `json:"name"`
	Cost         map[models.AirportScale]float64 `json:"cost"`
	Effects      FacilityEffects                 `json:"effects"`
	Prerequisite models.FacilityType             `json:"prerequisite,omitempty"`
}

type StartingCapital struct {
	ID     models.StartingCapital `json:"id"`
	Name   string                 `json:"name"`
	Amount float64                `json:"amount"`
}

// DomesticBan forbids a hub from serving destinations in a country.
type DomesticBan struct {
	Hub     string
	Country string
}

// ScaleMatrix is indexed origin scale, then destination scale.
type ScaleMatrix[T any] map[models.AirportScale]map[models.AirportScale]T

func (m ScaleMatrix[T]) Get(origin, dest models.AirportScale) (T, bool) {
	row, ok := m[origin]
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := row[dest]
	return v, ok
}

// Rules collects the scalar economic constants of the game.
type Rules struct {
	AccidentBaseProbability float64
	AccidentAgeModifier     float64
	AccidentPenalty         float64
	CrashDurationYears      int

	ConceptChangeCost      float64
	ConceptTransitionYears int

	LeaseDepositMonths            float64
	LeaseCostFraction             float64
	LeaseTermYears                int
	LeaseEarlyReturnPenaltyMonths float64
	LeaseBuyoutFraction           float64
	LeaseMinAge                   int
	LeaseMaxAge                   int

	ForeignHubCostFraction   float64
	HubTransferCost          float64
	ConfigChangeCostFraction float64
	RetrofitCostFraction     float64
	SaleDepreciationYears    float64
	SaleResidualFraction     float64

	OTPBase                  float64
	OTPAgePenaltyPerYear     float64
	OTPForeignHubBonus       float64
	OTPFleetStretchThreshold float64
	OTPFleetStretchPenalty   float64

	SatisfactionBase              float64
	SatisfactionAgeThreshold      float64
	SatisfactionAgePenaltyPerYear float64

	MinRouteDistanceKm float64
	CruiseSpeedKmh     float64
	GroundTimeMinutes  float64
	RoutePricePerKm    float64
	RouteBasePrice     float64

	ReputationPassengerGuard int
	MarketSize               int
	DailyMinutes             int
	FlightNumberMin          int
	FlightNumberSpan         int
}

type Catalog struct {
	Aircraft             []AircraftModel
	Configurations       map[models.ConfigurationType]Configuration
	Reputations          map[models.BrandReputation]Reputation
	Concepts             map[models.AirlineConcept]Concept
	PriceStrategies      map[models.PriceStrategy]PriceStrategy
	TicketPricePerKm     models.CabinFactors
	MaintenanceLevels    map[models.MaintenanceLevel]Maintenance
	MealLevels           map[models.MealServiceLevel]ServiceLevel
	CrewLevels           map[models.CrewServiceLevel]ServiceLevel
	BaggageLevels        map[models.BaggageServiceLevel]ServiceLevel
	OTPTiers             []OTPTier
	SatisfactionTiers    []SatisfactionTier
	Facilities           map[models.FacilityType]Facility
	DomesticDemand       ScaleMatrix[models.Cabins]
	InternationalDemand  ScaleMatrix[models.Cabins]
	Competition          ScaleMatrix[models.Competition]
	CompetitionModifiers map[models.Competition]float64
	StartingCapital      map[models.StartingCapital]StartingCapital
	HubCost              map[models.AirportScale]float64
	DomesticBans         []DomesticBan
	RegisteredCodes      []string
	Airports             []models.Airport
	Rules                Rules
}

func (c *Catalog) Model(id string) (AircraftModel, bool) {
	for _, m := range c.Aircraft {
		if strings.EqualFold(m.ID, id) {
			return m, true
		}
	}
	return AircraftModel{}, false
}

func (c *Catalog) Configuration(id models.ConfigurationType) (Configuration, bool) {
	cfg, ok := c.Configurations[id]
	return cfg, ok
}

func (c *Catalog) Reputation(id models.BrandReputation) (Reputation, bool) {
	r, ok := c.Reputations[id]
	return r, ok
}

func (c *Catalog) Concept(id models.AirlineConcept) (Concept, bool) {
	cc, ok := c.Concepts[id]
	return cc, ok
}

// InitialReputation is the reputation a concept starts from. An unknown or
// unset concept starts as a STARTUP.
func (c *Catalog) InitialReputation(id models.AirlineConcept) models.BrandReputation {
	if cc, ok := c.Concepts[id]; ok {
		return cc.InitialReputation
	}
	return models.ReputationStartup
}

func (c *Catalog) Strategy(id models.PriceStrategy) (PriceStrategy, bool) {
	s, ok := c.PriceStrategies[id]
	return s, ok
}

func (c *Catalog) Maintenance(id models.MaintenanceLevel) (Maintenance, bool) {
	m, ok := c.MaintenanceLevels[id]
	return m, ok
}

func (c *Catalog) Meal(id models.MealServiceLevel) (ServiceLevel, bool) {
	s, ok := c.MealLevels[id]
	return s, ok
}

func (c *Catalog) Crew(id models.CrewServiceLevel) (ServiceLevel, bool) {
	s, ok := c.CrewLevels[id]
	return s, ok
}

func (c *Catalog) Baggage(id models.BaggageServiceLevel) (ServiceLevel, bool) {
	s, ok := c.BaggageLevels[id]
	return s, ok
}

func (c *Catalog) Facility(id models.FacilityType) (Facility, bool) {
	f, ok := c.Facilities[id]
	return f, ok
}

// OTPTierFor returns the highest tier whose threshold the score reaches,
// falling back to the lowest tier.
func (c *Catalog) OTPTierFor(score float64) OTPTier {
	for _, t := range c.OTPTiers {
		if score >= t.Threshold {
			return t
		}
	}
	if len(c.OTPTiers) == 0 {
		return OTPTier{DemandModifier: 1}
	}
	return c.OTPTiers[len(c.OTPTiers)-1]
}

func (c *Catalog) SatisfactionTierFor(score float64) SatisfactionTier {
	for _, t := range c.SatisfactionTiers {
		if score >= t.Threshold {
			return t
		}
	}
	if len(c.SatisfactionTiers) == 0 {
		return SatisfactionTier{DemandModifier: models.CabinFactors{First: 1, Business: 1, Economy: 1}}
	}
	return c.SatisfactionTiers[len(c.SatisfactionTiers)-1]
}

// Demand is the baseline daily seat demand between two airport scales.
func (c *Catalog) Demand(origin, dest models.AirportScale, domestic bool) models.Cabins {
	m := c.InternationalDemand
	if domestic {
		m = c.DomesticDemand
	}
	d, _ := m.Get(origin, dest)
	return d
}

func (c *Catalog) CompetitionFor(origin, dest models.AirportScale) models.Competition {
	comp, ok := c.Competition.Get(origin, dest)
	if !ok {
		return models.CompetitionHigh
	}
	return comp
}

// Banned reports whether hub may not serve dest under a domestic ban.
func (c *Catalog) Banned(hub, dest models.Airport) bool {
	for _, b := range c.DomesticBans {
		if hub.Code == b.Hub && dest.Country == b.Country {
			return true
		}
	}
	return false
}

// IsRegisteredCode reports whether an airline code is already taken.
func (c *Catalog) IsRegisteredCode(code string) bool {
	return slices.Contains(c.RegisteredCodes, strings.ToUpper(code))
}

// HubEstablishmentCost is the price of opening a hub at an airport of the given scale.
func (c *Catalog) HubEstablishmentCost(scale models.AirportScale, foreign bool) float64 {
	cost := c.HubCost[scale]
	if foreign {
		cost *= c.Rules.ForeignHubCostFraction
	}
	return cost
}

// Airport looks up a catalog airport by code.
func (c *Catalog) Airport(code string) (models.Airport, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, a := range c.Airports {
		if a.Code == code {
			return a, true
		}
	}
	return models.Airport{}, false
}

// UnlockedModels lists the aircraft available for acquisition in the given year.
func (c *Catalog) UnlockedModels(year int) []AircraftModel {
	var out []AircraftModel
	for _, m := range c.Aircraft {
		if m.UnlockYear <= year {
			out = append(out, m)
		}
	}
	return out
}

func floorSeats(capacity int, fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	return int(float64(capacity) * fraction)
}
