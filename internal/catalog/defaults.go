package catalog

import (
	"slices"

	"airline_tycoon/internal/models"
)

// Default returns a freshly built catalog with the stock game data.
func Default() *Catalog {
	c := &Catalog{
		Aircraft:         defaultAircraft(),
		Configurations:   defaultConfigurations(),
		Reputations:      defaultReputations(),
		Concepts:         defaultConcepts(),
		PriceStrategies:  defaultPriceStrategies(),
		TicketPricePerKm: models.CabinFactors{First: 900, Business: 400, Economy: 120},
		MaintenanceLevels: map[models.MaintenanceLevel]Maintenance{
			models.MaintenanceMinimal:    {ID: models.MaintenanceMinimal, Name: "Minimal", CostPerAircraftPerDay: 500_000, AccidentModifier: 100, OTPModifier: -20, OTPAgeMitigation: 0.1},
			models.MaintenanceStandard:   {ID: models.MaintenanceStandard, Name: "Standard", CostPerAircraftPerDay: 2_000_000, AccidentModifier: 1, OTPModifier: 0, OTPAgeMitigation: 0.5},
			models.MaintenanceAdvanced:   {ID: models.MaintenanceAdvanced, Name: "Advanced", CostPerAircraftPerDay: 5_000_000, AccidentModifier: 0.2, OTPModifier: 2, OTPAgeMitigation: 0.8},
			models.MaintenanceStateOfArt: {ID: models.MaintenanceStateOfArt, Name: "State of the art", CostPerAircraftPerDay: 10_000_000, AccidentModifier: 0.05, OTPModifier: 4, OTPAgeMitigation: 0.95},
		},
		MealLevels: map[models.MealServiceLevel]ServiceLevel{
			models.MealNone:     {ID: string(models.MealNone), Name: "No service", CostPerPassenger: 0, SatisfactionPoints: -15},
			models.MealSnacks:   {ID: string(models.MealSnacks), Name: "Snacks and drinks", CostPerPassenger: 15_000, SatisfactionPoints: 0},
			models.MealStandard: {ID: string(models.MealStandard), Name: "Standard meal", CostPerPassenger: 80_000, SatisfactionPoints: 10},
			models.MealPremium:  {ID: string(models.MealPremium), Name: "Premium meal", CostPerPassenger: 300_000, SatisfactionPoints: 25},
		},
		CrewLevels: map[models.CrewServiceLevel]ServiceLevel{
			models.CrewSafetyOnly: {ID: string(models.CrewSafetyOnly), Name: "Safety only", CostPerAircraftPerDay: 40_000_000, SatisfactionPoints: -20},
			models.CrewBasic:      {ID: string(models.CrewBasic), Name: "Basic training", CostPerAircraftPerDay: 80_000_000, SatisfactionPoints: -5},
			models.CrewAttentive:  {ID: string(models.CrewAttentive), Name: "Attentive", CostPerAircraftPerDay: 200_000_000, SatisfactionPoints: 15},
			models.CrewExemplary:  {ID: string(models.CrewExemplary), Name: "Exemplary", CostPerAircraftPerDay: 500_000_000, SatisfactionPoints: 30},
		},
		BaggageLevels: map[models.BaggageServiceLevel]ServiceLevel{
			models.BaggagePersonalItemOnly: {ID: string(models.BaggagePersonalItemOnly), Name: "Personal item only", CostPerPassenger: -100_000, SatisfactionPoints: -25},
			models.BaggagePaidCarryOn:      {ID: string(models.BaggagePaidCarryOn), Name: "Paid carry-on", CostPerPassenger: -50_000, SatisfactionPoints: -10},
			models.BaggageFreeCheckedOne:   {ID: string(models.BaggageFreeCheckedOne), Name: "One free checked bag", CostPerPassenger: 40_000, SatisfactionPoints: 10},
			models.BaggageGenerous:         {ID: string(models.BaggageGenerous), Name: "Generous allowance", CostPerPassenger: 120_000, SatisfactionPoints: 20},
		},
		OTPTiers: []OTPTier{
			{Name: "EXCELLENT", Threshold: 98, DemandModifier: 1.05},
			{Name: "GOOD", Threshold: 95, DemandModifier: 1.02},
			{Name: "AVERAGE", Threshold: 90, DemandModifier: 1.0},
			{Name: "POOR", Threshold: 80, DemandModifier: 0.95},
			{Name: "CRITICAL", Threshold: 0, DemandModifier: 0.85},
		},
		SatisfactionTiers: []SatisfactionTier{
			{Name: "EXCELLENT", Threshold: 90, DemandModifier: models.CabinFactors{First: 1.25, Business: 1.15, Economy: 1.05}},
			{Name: "GOOD", Threshold: 75, DemandModifier: models.CabinFactors{First: 1.1, Business: 1.05, Economy: 1.02}},
			{Name: "AVERAGE", Threshold: 50, DemandModifier: models.CabinFactors{First: 1, Business: 1, Economy: 1}},
			{Name: "POOR", Threshold: 25, DemandModifier: models.CabinFactors{First: 0.85, Business: 0.9, Economy: 0.98}},
			{Name: "CRITICAL", Threshold: 0, DemandModifier: models.CabinFactors{First: 0.6, Business: 0.75, Economy: 0.95}},
		},
		DomesticDemand:      defaultDomesticDemand(),
		InternationalDemand: defaultInternationalDemand(),
		Competition:         defaultCompetition(),
		CompetitionModifiers: map[models.Competition]float64{
			models.CompetitionLow:    0.8,
			models.CompetitionMedium: 0.6,
			models.CompetitionHigh:   0.4,
		},
		StartingCapital: map[models.StartingCapital]StartingCapital{
			models.CapitalChallenging: {ID: models.CapitalChallenging, Name: "Shoestring", Amount: 50_000_000_000},
			models.CapitalStandard:    {ID: models.CapitalStandard, Name: "Standard", Amount: 500_000_000_000},
			models.CapitalWealthy:     {ID: models.CapitalWealthy, Name: "Oil money", Amount: 5_000_000_000_000},
		},
		HubCost: map[models.AirportScale]float64{
			models.ScaleMega:     2_000_000_000_000,
			models.ScaleHub:      1_000_000_000_000,
			models.ScaleMajor:    500_000_000_000,
			models.ScaleRegional: 200_000_000_000,
		},
		DomesticBans: []DomesticBan{
			{Hub: "ICN", Country: "KR"},
			{Hub: "TPE", Country: "TW"},
		},
		RegisteredCodes: slices.Clone(registeredAirlineCodes),
		Airports:        defaultAirports(),
		Rules: Rules{
			AccidentBaseProbability: 0.00000025,
			AccidentAgeModifier:     0.00000001,
			AccidentPenalty:         100_000_000_000,
			CrashDurationYears:      2,

			ConceptChangeCost:      250_000_000_000,
			ConceptTransitionYears: 2,

			LeaseDepositMonths:            1,
			LeaseCostFraction:             0.025,
			LeaseTermYears:                5,
			LeaseEarlyReturnPenaltyMonths: 3,
			LeaseBuyoutFraction:           0.8,
			LeaseMinAge:                   1,
			LeaseMaxAge:                   10,

			ForeignHubCostFraction:   0.25,
			HubTransferCost:          5_000_000_000,
			ConfigChangeCostFraction: 0.05,
			RetrofitCostFraction:     0.20,
			SaleDepreciationYears:    25,
			SaleResidualFraction:     0.1,

			OTPBase:                  99.0,
			OTPAgePenaltyPerYear:     0.25,
			OTPForeignHubBonus:       0.5,
			OTPFleetStretchThreshold: 1.5,
			OTPFleetStretchPenalty:   1.0,

			SatisfactionBase:              50,
			SatisfactionAgeThreshold:      15,
			SatisfactionAgePenaltyPerYear: 1,

			MinRouteDistanceKm: 100,
			CruiseSpeedKmh:     850,
			GroundTimeMinutes:  90,
			RoutePricePerKm:    1_000_000,
			RouteBasePrice:     5_000_000_000,

			ReputationPassengerGuard: 50_000,
			MarketSize:               4,
			DailyMinutes:             1440,
			FlightNumberMin:          100,
			FlightNumberSpan:         9900,
		},
	}
	c.Facilities = defaultFacilities(c.HubCost)
	return c
}

func defaultAircraft() []AircraftModel {
	return []AircraftModel{
		{ID: "A320neo", Name: "Airbus A320neo", Manufacturer: "Airbus", Price: 110_000_000_000, RangeKm: 6300, Capacity: 180, OperatingCost: 15_000_000, UnlockYear: 2016, CostPerFlight: 4_000_000},
		{ID: "B737MAX", Name: "Boeing 737 MAX 8", Manufacturer: "Boeing", Price: 120_000_000_000, RangeKm: 6570, Capacity: 189, OperatingCost: 16_000_000, UnlockYear: 2017, CostPerFlight: 4_500_000},
		{ID: "A321neo", Name: "Airbus A321neo", Manufacturer: "Airbus", Price: 130_000_000_000, RangeKm: 7400, Capacity: 220, OperatingCost: 18_000_000, UnlockYear: 2017, CostPerFlight: 5_000_000},
		{ID: "A321XLR", Name: "Airbus A321XLR", Manufacturer: "Airbus", Price: 142_000_000_000, RangeKm: 8700, Capacity: 220, OperatingCost: 19_000_000, UnlockYear: 2024, CostPerFlight: 5_500_000},
		{ID: "A350", Name: "Airbus A350-900", Manufacturer: "Airbus", Price: 317_000_000_000, RangeKm: 15000, Capacity: 325, OperatingCost: 35_000_000, UnlockYear: 2015, CostPerFlight: 20_000_000},
		{ID: "B787", Name: "Boeing 787-9 Dreamliner", Manufacturer: "Boeing", Price: 292_000_000_000, RangeKm: 14140, Capacity: 290, OperatingCost: 30_000_000, UnlockYear: 2014, CostPerFlight: 17_000_000},
		{ID: "B777X", Name: "Boeing 777-9", Manufacturer: "Boeing", Price: 442_000_000_000, RangeKm: 13940, Capacity: 426, OperatingCost: 48_000_000, UnlockYear: 2025, CostPerFlight: 26_000_000},
		{ID: "A380", Name: "Airbus A380-800", Manufacturer: "Airbus", Price: 445_000_000_000, RangeKm: 15200, Capacity: 555, OperatingCost: 60_000_000, UnlockYear: 2007, CostPerFlight: 35_000_000, InitialAge: 10},
		// legacy narrow-body
		{ID: "A320-200", Name: "Airbus A320-200", Manufacturer: "Airbus", Price: 70_000_000_000, RangeKm: 6100, Capacity: 170, OperatingCost: 16_000_000, UnlockYear: 1988, CostPerFlight: 4_200_000, InitialAge: 15},
		{ID: "B737-800", Name: "Boeing 737-800", Manufacturer: "Boeing", Price: 75_000_000_000, RangeKm: 5440, Capacity: 175, OperatingCost: 17_000_000, UnlockYear: 1998, CostPerFlight: 4_400_000, InitialAge: 15},
		{ID: "B757-200", Name: "Boeing 757-200", Manufacturer: "Boeing", Price: 80_000_000_000, RangeKm: 7250, Capacity: 220, OperatingCost: 19_000_000, UnlockYear: 1982, CostPerFlight: 5_500_000, InitialAge: 20},
		{ID: "A330neo", Name: "Airbus A330-900neo", Manufacturer: "Airbus", Price: 296_000_000_000, RangeKm: 13330, Capacity: 287, OperatingCost: 30_500_000, UnlockYear: 2018, CostPerFlight: 16_500_000},
		{ID: "A350-1000", Name: "Airbus A350-1000", Manufacturer: "Airbus", Price: 366_000_000_000, RangeKm: 16100, Capacity: 366, OperatingCost: 40_000_000, UnlockYear: 2018, CostPerFlight: 22_000_000},
		// legacy wide-body
		{ID: "A330-200", Name: "Airbus A330-200", Manufacturer: "Airbus", Price: 200_000_000_000, RangeKm: 13450, Capacity: 247, OperatingCost: 28_000_000, UnlockYear: 1998, CostPerFlight: 15_000_000, InitialAge: 15},
		{ID: "A330-300", Name: "Airbus A330-300", Manufacturer: "Airbus", Price: 220_000_000_000, RangeKm: 11750, Capacity: 277, OperatingCost: 30_000_000, UnlockYear: 1994, CostPerFlight: 16_000_000, InitialAge: 15},
		{ID: "B767-300ER", Name: "Boeing 767-300ER", Manufacturer: "Boeing", Price: 180_000_000_000, RangeKm: 11070, Capacity: 260, OperatingCost: 29_000_000, UnlockYear: 1988, CostPerFlight: 15_500_000, InitialAge: 20},
		{ID: "B777-300ER", Name: "Boeing 777-300ER", Manufacturer: "Boeing", Price: 375_000_000_000, RangeKm: 13650, Capacity: 396, OperatingCost: 45_000_000, UnlockYear: 2004, CostPerFlight: 25_000_000, InitialAge: 10},
		{ID: "B747-8i", Name: "Boeing 747-8i", Manufacturer: "Boeing", Price: 418_000_000_000, RangeKm: 14320, Capacity: 467, OperatingCost: 55_000_000, UnlockYear: 2012, CostPerFlight: 30_000_000, InitialAge: 8},
	}
}

func defaultConfigurations() map[models.ConfigurationType]Configuration {
	return map[models.ConfigurationType]Configuration{
		models.ConfigFSCLongHaul: {
			ID: models.ConfigFSCLongHaul, Name: "FSC long haul",
			CostModifier: 1.2, OperatingCostModifier: 1.15,
			Split:                SeatingSplit{First: 0.05, Business: 0.15, Economy: 0.6},
			SatisfactionModifier: 10,
		},
		models.ConfigFSCMediumHaul: {
			ID: models.ConfigFSCMediumHaul, Name: "FSC medium haul",
			CostModifier: 1.1, OperatingCostModifier: 1.1,
			Split:                SeatingSplit{Business: 0.1, Economy: 0.8},
			SatisfactionModifier: 5,
		},
		models.ConfigLCCBusiness: {
			ID: models.ConfigLCCBusiness, Name: "LCC with business",
			CostModifier: 1.05, OperatingCostModifier: 1.0,
			Split:                SeatingSplit{Business: 0.05, Economy: 0.9},
			SatisfactionModifier: -5,
		},
		models.ConfigLCCEconomy: {
			ID: models.ConfigLCCEconomy, Name: "LCC all economy",
			CostModifier: 1.0, OperatingCostModifier: 0.95,
			Split:                SeatingSplit{Economy: 1.05},
			SatisfactionModifier: -15,
		},
	}
}

func defaultReputations() map[models.BrandReputation]Reputation {
	return map[models.BrandReputation]Reputation{
		models.ReputationStartup: {
			ID: models.ReputationStartup, Name: "Startup",
			DemandModifier: models.CabinFactors{First: 1.05, Business: 1.05, Economy: 1.05},
		},
		// interpolated at run time
		models.ReputationTransitioning: {
			ID: models.ReputationTransitioning, Name: "Rebranding",
			DemandModifier: models.CabinFactors{First: 1, Business: 1, Economy: 1},
		},
		models.ReputationCrashed: {
			ID: models.ReputationCrashed, Name: "Crashed",
			DemandModifier: models.CabinFactors{First: 0.1, Business: 0.2, Economy: 0.4},
		},
		models.ReputationFSCClassic: {
			ID: models.ReputationFSCClassic, Name: "Classic FSC",
			DemandModifier:      models.CabinFactors{First: 1.15, Business: 1.2, Economy: 1.0},
			OTPPenaltyThreshold: 90, SatisfactionPenaltyThreshold: 70,
		},
		models.ReputationFSCPremium: {
			ID: models.ReputationFSCPremium, Name: "Premium FSC",
			DemandModifier:      models.CabinFactors{First: 1.2, Business: 1.15, Economy: 0.9},
			OTPPenaltyThreshold: 90, SatisfactionPenaltyThreshold: 75,
		},
		models.ReputationFSCNormal: {
			ID: models.ReputationFSCNormal, Name: "FSC",
			DemandModifier: models.CabinFactors{First: 1, Business: 1, Economy: 1},
			RequiredOTP:    95, RequiredSatisfaction: 85,
		},
		models.ReputationLCCGood: {
			ID: models.ReputationLCCGood, Name: "Quality LCC",
			DemandModifier:      models.CabinFactors{First: 0, Business: 0.9, Economy: 1.15},
			OTPPenaltyThreshold: 88, SatisfactionPenaltyThreshold: 60,
		},
		models.ReputationLCCStandard: {
			ID: models.ReputationLCCStandard, Name: "LCC",
			DemandModifier: models.CabinFactors{First: 0, Business: 0.8, Economy: 1.1},
			RequiredOTP:    90, RequiredSatisfaction: 70,
		},
		models.ReputationULCC: {
			ID: models.ReputationULCC, Name: "Ultra low cost",
			DemandModifier: models.CabinFactors{First: 0, Business: 0.5, Economy: 1.3},
		},
	}
}

func defaultConcepts() map[models.AirlineConcept]Concept {
	return map[models.AirlineConcept]Concept{
		models.ConceptFSC: {ID: models.ConceptFSC, Name: "Full-Service Carrier (FSC)", InitialReputation: models.ReputationFSCNormal},
		models.ConceptLCC: {ID: models.ConceptLCC, Name: "Low-Cost Carrier (LCC)", InitialReputation: models.ReputationLCCStandard},
	}
}

func defaultPriceStrategies() map[models.PriceStrategy]PriceStrategy {
	return map[models.PriceStrategy]PriceStrategy{
		models.PricePremium: {
			ID: models.PricePremium, Name: "Premium",
			PriceModifier:  models.CabinFactors{First: 1.3, Business: 1.25, Economy: 1.2},
			DemandModifier: models.CabinFactors{First: 0.85, Business: 0.9, Economy: 0.8},
		},
		models.PriceStandard: {
			ID: models.PriceStandard, Name: "Standard",
			PriceModifier:  models.CabinFactors{First: 1, Business: 1, Economy: 1},
			DemandModifier: models.CabinFactors{First: 1, Business: 1, Economy: 1},
		},
		models.PriceLowCost: {
			ID: models.PriceLowCost, Name: "Low cost",
			PriceModifier:  models.CabinFactors{First: 0.8, Business: 0.85, Economy: 0.85},
			DemandModifier: models.CabinFactors{First: 1.1, Business: 1.1, Economy: 1.2},
		},
		models.PriceUltraLowCost: {
			ID: models.PriceUltraLowCost, Name: "Ultra low cost",
			PriceModifier:  models.CabinFactors{First: 0.6, Business: 0.7, Economy: 0.7},
			DemandModifier: models.CabinFactors{First: 1.2, Business: 1.25, Economy: 1.35},
		},
	}
}

func defaultFacilities(hubCost map[models.AirportScale]float64) map[models.FacilityType]Facility {
	scaled := func(mega, hub, major, regional float64) map[models.AirportScale]float64 {
		return map[models.AirportScale]float64{
			models.ScaleMega:     mega,
			models.ScaleHub:      hub,
			models.ScaleMajor:    major,
			models.ScaleRegional: regional,
		}
	}
	return map[models.FacilityType]Facility{
		models.FacilityOffice: {
			ID: models.FacilityOffice, Name: "Office",
			Cost:    scaled(hubCost[models.ScaleMega], hubCost[models.ScaleHub], hubCost[models.ScaleMajor], hubCost[models.ScaleRegional]),
			Effects: FacilityEffects{OperatingCostModifier: 0.97},
		},
		models.FacilityMaintenanceCenter: {
			ID: models.FacilityMaintenanceCenter, Name: "Maintenance center",
			Cost:         scaled(500_000_000_000, 300_000_000_000, 150_000_000_000, 50_000_000_000),
			Effects:      FacilityEffects{AccidentModifier: 0.9, OTPBonus: 1.0},
			Prerequisite: models.FacilityOffice,
		},
		models.FacilityGroundServices: {
			ID: models.FacilityGroundServices, Name: "Ground services center",
			Cost:         scaled(800_000_000_000, 500_000_000_000, 250_000_000_000, 100_000_000_000),
			Effects:      FacilityEffects{OperatingCostModifier: 0.95, OTPBonus: 0.5},
			Prerequisite: models.FacilityOffice,
		},
		models.FacilityFuelDepot: {
			ID: models.FacilityFuelDepot, Name: "Fuel depot",
			Cost:         scaled(1_000_000_000_000, 700_000_000_000, 350_000_000_000, 150_000_000_000),
			Effects:      FacilityEffects{OperatingCostModifier: 0.95},
			Prerequisite: models.FacilityOffice,
		},
		models.FacilityCrewCenter: {
			ID: models.FacilityCrewCenter, Name: "Crew center",
			Cost:         scaled(600_000_000_000, 400_000_000_000, 200_000_000_000, 80_000_000_000),
			Effects:      FacilityEffects{SatisfactionBonus: 3, OperatingCostModifier: 0.98},
			Prerequisite: models.FacilityOffice,
		},
		models.FacilityLounge: {
			ID: models.FacilityLounge, Name: "Premium lounge",
			Cost:         scaled(400_000_000_000, 250_000_000_000, 120_000_000_000, 50_000_000_000),
			Effects:      FacilityEffects{DemandModifier: models.CabinFactors{First: 1.05, Business: 1.05}},
			Prerequisite: models.FacilityOffice,
		},
	}
}

func cabins(first, business, economy int) models.Cabins {
	return models.Cabins{First: first, Business: business, Economy: economy}
}

func defaultInternationalDemand() ScaleMatrix[models.Cabins] {
	return ScaleMatrix[models.Cabins]{
		models.ScaleMega: {
			models.ScaleMega:     cabins(60, 200, 500),
			models.ScaleHub:      cabins(45, 160, 420),
			models.ScaleMajor:    cabins(25, 100, 350),
			models.ScaleRegional: cabins(10, 40, 200),
		},
		models.ScaleHub: {
			models.ScaleMega:     cabins(45, 160, 420),
			models.ScaleHub:      cabins(35, 130, 380),
			models.ScaleMajor:    cabins(20, 80, 300),
			models.ScaleRegional: cabins(8, 30, 180),
		},
		models.ScaleMajor: {
			models.ScaleMega:     cabins(25, 100, 350),
			models.ScaleHub:      cabins(20, 80, 300),
			models.ScaleMajor:    cabins(10, 40, 250),
			models.ScaleRegional: cabins(2, 15, 150),
		},
		models.ScaleRegional: {
			models.ScaleMega:     cabins(10, 40, 200),
			models.ScaleHub:      cabins(8, 30, 180),
			models.ScaleMajor:    cabins(2, 15, 150),
			models.ScaleRegional: cabins(0, 5, 100),
		},
	}
}

func defaultDomesticDemand() ScaleMatrix[models.Cabins] {
	return ScaleMatrix[models.Cabins]{
		models.ScaleMega: {
			models.ScaleMega:     cabins(15, 60, 800),
			models.ScaleHub:      cabins(12, 50, 750),
			models.ScaleMajor:    cabins(8, 40, 650),
			models.ScaleRegional: cabins(2, 20, 450),
		},
		models.ScaleHub: {
			models.ScaleMega:     cabins(12, 50, 750),
			models.ScaleHub:      cabins(10, 45, 700),
			models.ScaleMajor:    cabins(6, 35, 600),
			models.ScaleRegional: cabins(1, 15, 400),
		},
		models.ScaleMajor: {
			models.ScaleMega:     cabins(8, 40, 650),
			models.ScaleHub:      cabins(6, 35, 600),
			models.ScaleMajor:    cabins(4, 25, 500),
			models.ScaleRegional: cabins(0, 10, 350),
		},
		models.ScaleRegional: {
			models.ScaleMega:     cabins(2, 20, 450),
			models.ScaleHub:      cabins(1, 15, 400),
			models.ScaleMajor:    cabins(0, 10, 350),
			models.ScaleRegional: cabins(0, 5, 250),
		},
	}
}

func defaultCompetition() ScaleMatrix[models.Competition] {
	const (
		low    = models.CompetitionLow
		medium = models.CompetitionMedium
		high   = models.CompetitionHigh
	)
	return ScaleMatrix[models.Competition]{
		models.ScaleMega: {
			models.ScaleMega: high, models.ScaleHub: high, models.ScaleMajor: medium, models.ScaleRegional: medium,
		},
		models.ScaleHub: {
			models.ScaleMega: high, models.ScaleHub: high, models.ScaleMajor: medium, models.ScaleRegional: low,
		},
		models.ScaleMajor: {
			models.ScaleMega: medium, models.ScaleHub: medium, models.ScaleMajor: low, models.ScaleRegional: low,
		},
		models.ScaleRegional: {
			models.ScaleMega: medium, models.ScaleHub: low, models.ScaleMajor: low, models.ScaleRegional: low,
		},
	}
}

var registeredAirlineCodes = []string{
	"3K", "5J", "5W", "5X", "6E", "7C", "AA", "AC", "AD", "AF", "AI", "AK",
	"AM", "AR", "AS", "AT", "AV", "AY", "AZ", "A3", "BA", "BG", "B6", "BR",
	"BT", "BX", "CA", "CI", "CM", "C9", "CX", "CZ", "DL", "DY", "EI", "EK",
	"ET", "EW", "EY", "F9", "FR", "FX", "GF", "G4", "HA", "HG", "HX", "IB",
	"IR", "IT", "JJ", "JL", "JU", "KA", "KE", "KL", "KU", "LA", "LH", "LJ",
	"LO", "LX", "ME", "MH", "MS", "MU", "NH", "NZ", "OK", "OS", "OZ", "PD",
	"PG", "PK", "PR", "PS", "QF", "QR", "QZ", "RJ", "RS", "SA", "SK", "SN",
	"SQ", "SU", "SV", "SW", "TG", "TK", "TP", "TR", "TS", "TW", "U2", "UA",
	"UL", "VA", "VN", "VX", "VY", "W6", "WS", "ZE",
}
