package models

import "time"

type AirportScale string

const (
	ScaleRegional AirportScale = "REGIONAL"
	ScaleMajor    AirportScale = "MAJOR"
	ScaleHub      AirportScale = "HUB"
	ScaleMega     AirportScale = "MEGA"
)

// Large reports whether the scale counts as a large airport (HUB or MEGA).
func (s AirportScale) Large() bool {
	return s == ScaleHub || s == ScaleMega
}

type Airport struct {
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Country      string       `json:"country"`
	Latitude     float64      `json:"lat"`
	Longitude    float64      `json:"lon"`
	Scale        AirportScale `json:"scale"`
	Slots        int          `json:"slots"`
	RunwayLength int          `json:"runway_length_m"`
}

type AirlineProfile struct {
	Name    string   `json:"name"`
	Code    string   `json:"code"`
	Hubs    []string `json:"hubs"`
	Country string   `json:"country"`
}

// HasHub reports whether code is one of the airline's hubs.
func (p *AirlineProfile) HasHub(code string) bool {
	if p == nil {
		return false
	}
	for _, h := range p.Hubs {
		if h == code {
			return true
		}
	}
	return false
}

// Cabins is a whole-seat or whole-passenger count per cabin class.
type Cabins struct {
	First    int `json:"first"`
	Business int `json:"business"`
	Economy  int `json:"economy"`
}

func (c Cabins) Total() int {
	return c.First + c.Business + c.Economy
}

// CabinFactors holds a real value per cabin class (modifiers, fractional demand).
type CabinFactors struct {
	First    float64 `json:"first"`
	Business float64 `json:"business"`
	Economy  float64 `json:"economy"`
}

type Competition string

const (
	CompetitionLow    Competition = "Low"
	CompetitionMedium Competition = "Medium"
	CompetitionHigh   Competition = "High"
)

type RouteCategory string

const (
	CategoryTrunk    RouteCategory = "trunk"
	CategoryFeeder   RouteCategory = "feeder"
	CategoryRegional RouteCategory = "regional"
)

type PriceStrategy string

const (
	PricePremium      PriceStrategy = "PREMIUM"
	PriceStandard     PriceStrategy = "STANDARD"
	PriceLowCost      PriceStrategy = "LOW_COST"
	PriceUltraLowCost PriceStrategy = "ULTRA_LOW_COST"
)

type Route struct {
	ID              string        `json:"id"`
	Origin          string        `json:"origin"`
	Destination     string        `json:"destination"`
	OriginCode      string        `json:"origin_code"`
	DestinationCode string        `json:"destination_code"`
	Distance        float64       `json:"distance_km"`
	TurnaroundTime  int           `json:"turnaround_min"`
	Price           float64       `json:"price"`
	DemandClasses   Cabins        `json:"demand_classes"`
	Competition     Competition   `json:"competition"`
	IsOpened        bool          `json:"is_opened"`
	PriceStrategy   PriceStrategy `json:"price_strategy,omitempty"`
}

type RouteMarket struct {
	Trunk    []Route `json:"trunk"`
	Feeder   []Route `json:"feeder"`
	Regional []Route `json:"regional"`
}

// Remove drops the route with the given id from every list.
func (m *RouteMarket) Remove(routeID string) {
	drop := func(list []Route) []Route {
		out := list[:0]
		for _, r := range list {
			if r.ID != routeID {
				out = append(out, r)
			}
		}
		return out
	}
	m.Trunk = drop(m.Trunk)
	m.Feeder = drop(m.Feeder)
	m.Regional = drop(m.Regional)
}

type ConfigurationType string

const (
	ConfigFSCLongHaul   ConfigurationType = "FSC_LH"
	ConfigFSCMediumHaul ConfigurationType = "FSC_MH"
	ConfigLCCBusiness   ConfigurationType = "LCC_BUSINESS"
	ConfigLCCEconomy    ConfigurationType = "LCC_ECONOMY"
)

type Ownership string

const (
	Owned  Ownership = "owned"
	Leased Ownership = "leased"
)

type ScheduleEntry struct {
	RouteID      string `json:"route_id"`
	FlightNumber int    `json:"flight_number"`
}

type PlayerAircraft struct {
	ID              string            `json:"id"`
	Nickname        string            `json:"nickname"`
	ModelID         string            `json:"model_id"`
	Schedule        []ScheduleEntry   `json:"schedule"`
	PurchaseDate    time.Time         `json:"purchase_date"`
	ConfigurationID ConfigurationType `json:"configuration_id"`
	Capacity        Cabins            `json:"capacity"`
	Ownership       Ownership         `json:"ownership"`
	LeaseCost       float64           `json:"lease_cost,omitempty"`
	LeaseEndDate    *time.Time        `json:"lease_end_date,omitempty"`
	Base            string            `json:"base"`
}

// AgeYears is the aircraft age at the given date, from its (possibly backdated) purchase date.
func (a *PlayerAircraft) AgeYears(at time.Time) float64 {
	return YearsBetween(a.PurchaseDate, at)
}

// LeaseExpired reports whether a leased aircraft's term has run out by date.
func (a *PlayerAircraft) LeaseExpired(date time.Time) bool {
	return a.Ownership == Leased && a.LeaseEndDate != nil && !date.Before(*a.LeaseEndDate)
}

type AirlineConcept string

const (
	ConceptFSC AirlineConcept = "FSC"
	ConceptLCC AirlineConcept = "LCC"
)

type BrandReputation string

const (
	ReputationStartup       BrandReputation = "STARTUP"
	ReputationFSCClassic    BrandReputation = "FSC_CLASSIC"
	ReputationFSCPremium    BrandReputation = "FSC_PREMIUM"
	ReputationFSCNormal     BrandReputation = "FSC_NORMAL"
	ReputationLCCGood       BrandReputation = "LCC_GOOD"
	ReputationLCCStandard   BrandReputation = "LCC_STANDARD"
	ReputationULCC          BrandReputation = "ULCC"
	ReputationTransitioning BrandReputation = "TRANSITIONING"
	ReputationCrashed       BrandReputation = "CRASHED"
)

type ConceptTransition struct {
	From      AirlineConcept `json:"from"`
	To        AirlineConcept `json:"to"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
}

// Progress is the elapsed fraction of the transition at date, clamped to [0,1].
func (t *ConceptTransition) Progress(date time.Time) float64 {
	total := t.EndDate.Sub(t.StartDate)
	if total <= 0 {
		return 1
	}
	p := float64(date.Sub(t.StartDate)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

type MaintenanceLevel string

const (
	MaintenanceMinimal    MaintenanceLevel = "MINIMAL"
	MaintenanceStandard   MaintenanceLevel = "STANDARD"
	MaintenanceAdvanced   MaintenanceLevel = "ADVANCED"
	MaintenanceStateOfArt MaintenanceLevel = "STATE_OF_THE_ART"
)

type MealServiceLevel string

const (
	MealNone     MealServiceLevel = "NONE"
	MealSnacks   MealServiceLevel = "SNACKS"
	MealStandard MealServiceLevel = "STANDARD"
	MealPremium  MealServiceLevel = "PREMIUM"
)

type CrewServiceLevel string

const (
	CrewSafetyOnly CrewServiceLevel = "SAFETY_ONLY"
	CrewBasic      CrewServiceLevel = "BASIC"
	CrewAttentive  CrewServiceLevel = "ATTENTIVE"
	CrewExemplary  CrewServiceLevel = "EXEMPLARY"
)

type BaggageServiceLevel string

const (
	BaggagePersonalItemOnly BaggageServiceLevel = "PERSONAL_ITEM_ONLY"
	BaggagePaidCarryOn      BaggageServiceLevel = "PAID_CARRY_ON"
	BaggageFreeCheckedOne   BaggageServiceLevel = "FREE_CHECKED_ONE"
	BaggageGenerous         BaggageServiceLevel = "GENEROUS"
)

type ServiceLevels struct {
	Meal    MealServiceLevel    `json:"meal"`
	Crew    CrewServiceLevel    `json:"crew"`
	Baggage BaggageServiceLevel `json:"baggage"`
}

type FacilityType string

const (
	FacilityOffice            FacilityType = "OFFICE"
	FacilityMaintenanceCenter FacilityType = "MAINTENANCE_CENTER"
	FacilityGroundServices    FacilityType = "GROUND_SERVICES"
	FacilityFuelDepot         FacilityType = "FUEL_DEPOT"
	FacilityCrewCenter        FacilityType = "CREW_CENTER"
	FacilityLounge            FacilityType = "LOUNGE"
)

type StartingCapital string

const (
	CapitalChallenging StartingCapital = "CHALLENGING"
	CapitalStandard    StartingCapital = "STANDARD"
	CapitalWealthy     StartingCapital = "WEALTHY"
)

// RouteReport is one opened route's result for a simulated day.
type RouteReport struct {
	RouteID    string       `json:"route_id"`
	Supply     Cabins       `json:"supply"`
	Demand     CabinFactors `json:"demand"`
	Passengers CabinFactors `json:"passengers"`
	Cost       float64      `json:"cost"`
	Revenue    float64      `json:"revenue"`
}

type DailyReport struct {
	Date       time.Time     `json:"date"`
	Income     float64       `json:"income"`
	Expenses   float64       `json:"expenses"`
	Passengers Cabins        `json:"passengers"`
	Routes     []RouteReport `json:"routes"`
}

type GameState struct {
	Cash                     float64                   `json:"cash"`
	Date                     time.Time                 `json:"date"`
	FoundingDate             time.Time                 `json:"founding_date"`
	Fleet                    []PlayerAircraft          `json:"fleet"`
	Routes                   []Route                   `json:"routes"`
	RouteMarket              RouteMarket               `json:"route_market"`
	Reputation               BrandReputation           `json:"reputation"`
	Concept                  AirlineConcept            `json:"concept,omitempty"`
	ConceptTransition        *ConceptTransition        `json:"concept_transition,omitempty"`
	AirlineProfile           *AirlineProfile           `json:"airline_profile,omitempty"`
	PassengersCarried        Cabins                    `json:"passengers_carried"`
	MaintenanceLevel         MaintenanceLevel          `json:"maintenance_level"`
	ServiceLevels            ServiceLevels             `json:"service_levels"`
	CrashedReputationEndDate *time.Time                `json:"crashed_reputation_end_date,omitempty"`
	AirportFacilities        map[string][]FacilityType `json:"airport_facilities"`
	Airports                 []Airport                 `json:"airports"`
	OnTimePerformance        float64                   `json:"on_time_performance"`
	PassengerSatisfaction    float64                   `json:"passenger_satisfaction"`
	LastReport               *DailyReport              `json:"last_report,omitempty"`
	RecentEvents             []string                  `json:"recent_events"`
	IsRunning                bool                      `json:"is_running"`
	Speed                    int                       `json:"speed"`
}

// Simulation speeds in days per second.
const (
	SpeedPaused    = 0
	SpeedNormal    = 1
	SpeedFast      = 5
	SpeedSuperFast = 15
)

func ValidSpeed(speed int) bool {
	switch speed {
	case SpeedPaused, SpeedNormal, SpeedFast, SpeedSuperFast:
		return true
	}
	return false
}

type BrandPhase int

const (
	PhaseStable BrandPhase = iota
	PhaseTransitioning
	PhaseCrashRecovery
)

// BrandPhase tells whether the reputation is free to evolve, frozen by a
// concept transition, or pinned by a pending crash recovery.
func (s *GameState) BrandPhase() BrandPhase {
	switch {
	case s.ConceptTransition != nil:
		return PhaseTransitioning
	case s.CrashedReputationEndDate != nil:
		return PhaseCrashRecovery
	default:
		return PhaseStable
	}
}

// Airport finds an airport of the session by code.
func (s *GameState) Airport(code string) (Airport, bool) {
	for _, a := range s.Airports {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}

// RouteIndex returns the index of the route with the given id, or -1.
func (s *GameState) RouteIndex(id string) int {
	for i := range s.Routes {
		if s.Routes[i].ID == id {
			return i
		}
	}
	return -1
}

// AircraftIndex returns the index of the fleet member with the given id, or -1.
func (s *GameState) AircraftIndex(id string) int {
	for i := range s.Fleet {
		if s.Fleet[i].ID == id {
			return i
		}
	}
	return -1
}

// HasFacility reports whether the facility is owned at the airport.
func (s *GameState) HasFacility(code string, f FacilityType) bool {
	for _, owned := range s.AirportFacilities[code] {
		if owned == f {
			return true
		}
	}
	return false
}

const daysPerYear = 365.25

// YearsBetween measures the span from a to b in years of 365.25 days.
// It works on Unix seconds since time.Duration saturates near 292 years.
func YearsBetween(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) / 86400 / daysPerYear
}

// Day truncates t to UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
