package game

import (
	"sort"

	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

// FacilityEffects is the combined effect of the facilities owned at one airport.
type FacilityEffects struct {
	OperatingCostModifier float64
	AccidentModifier      float64
	OTPBonus              float64
	SatisfactionBonus     float64
	DemandModifier        models.CabinFactors
}

func neutralEffects() FacilityEffects {
	return FacilityEffects{
		OperatingCostModifier: 1,
		AccidentModifier:      1,
		DemandModifier:        models.CabinFactors{First: 1, Business: 1, Economy: 1},
	}
}

// AggregateFacilityEffects folds the facilities owned at code into one
// bundle. Zero-valued modifiers in the catalog count as absent.
func AggregateFacilityEffects(cat *catalog.Catalog, owned map[string][]models.FacilityType, code string) FacilityEffects {
	fx := neutralEffects()
	for _, ft := range owned[code] {
		f, ok := cat.Facility(ft)
		if !ok {
			continue
		}
		e := f.Effects
		if e.OperatingCostModifier != 0 {
			fx.OperatingCostModifier *= e.OperatingCostModifier
		}
		if e.AccidentModifier != 0 {
			fx.AccidentModifier *= e.AccidentModifier
		}
		fx.OTPBonus += e.OTPBonus
		fx.SatisfactionBonus += e.SatisfactionBonus
		if e.DemandModifier.First != 0 {
			fx.DemandModifier.First *= e.DemandModifier.First
		}
		if e.DemandModifier.Business != 0 {
			fx.DemandModifier.Business *= e.DemandModifier.Business
		}
		if e.DemandModifier.Economy != 0 {
			fx.DemandModifier.Economy *= e.DemandModifier.Economy
		}
	}
	return fx
}

// globalFacilityBonuses sums OTP and satisfaction bonuses over every
// airport with facilities, in code order so the float sum is stable.
func globalFacilityBonuses(cat *catalog.Catalog, owned map[string][]models.FacilityType) (otp, satisfaction float64) {
	codes := make([]string, 0, len(owned))
	for code := range owned {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fx := AggregateFacilityEffects(cat, owned, code)
		otp += fx.OTPBonus
		satisfaction += fx.SatisfactionBonus
	}
	return otp, satisfaction
}
