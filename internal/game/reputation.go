package game

import (
	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/models"
)

const (
	premiumKeepRatio    = 0.20
	premiumEarnRatio    = 0.25
	lccBusinessKeep     = 0.03
	lccBusinessEarn     = 0.05
	ulccEconomyKeep     = 0.95
	ulccEconomyEarn     = 0.98
	classicYears        = 5.0
	unreachableRequired = 101.0
)

// NextReputation evaluates the brand ladder for st and returns the
// reputation it should hold. A downgrade always wins over an upgrade in the
// same evaluation. The reputation is left alone while no concept is chosen,
// while a rebrand or crash recovery is pending, or before enough passengers
// have flown.
func NextReputation(cat *catalog.Catalog, st *models.GameState) models.BrandReputation {
	rep := st.Reputation
	if st.Concept == "" || st.BrandPhase() != models.PhaseStable {
		return rep
	}

	pax := st.PassengersCarried
	total := pax.Total()
	if total < cat.Rules.ReputationPassengerGuard || total <= 0 {
		return rep
	}

	years := models.YearsBetween(st.FoundingDate, st.Date)
	premiumRatio := float64(pax.First+pax.Business) / float64(total)
	businessRatio := float64(pax.Business) / float64(total)
	economyRatio := float64(pax.Economy) / float64(total)
	otp := st.OnTimePerformance
	sat := st.PassengerSatisfaction

	current, _ := cat.Reputation(rep)
	keepOTP := current.OTPPenaltyThreshold
	keepSat := current.SatisfactionPenaltyThreshold

	switch rep {
	case models.ReputationFSCPremium:
		if otp < keepOTP || premiumRatio < premiumKeepRatio || sat < keepSat {
			return models.ReputationFSCNormal
		}
	case models.ReputationFSCClassic:
		if otp < keepOTP || sat < keepSat {
			return models.ReputationFSCPremium
		}
	case models.ReputationLCCGood:
		if otp < keepOTP || businessRatio < lccBusinessKeep || sat < keepSat {
			return models.ReputationLCCStandard
		}
	case models.ReputationULCC:
		if economyRatio < ulccEconomyKeep {
			return models.ReputationLCCStandard
		}
	}

	switch rep {
	case models.ReputationFSCNormal:
		needOTP, needSat := requirements(current)
		if premiumRatio >= premiumEarnRatio && otp >= needOTP && sat >= needSat {
			return models.ReputationFSCPremium
		}
	case models.ReputationFSCPremium:
		if years >= classicYears {
			return models.ReputationFSCClassic
		}
	case models.ReputationLCCStandard:
		if economyRatio >= ulccEconomyEarn {
			return models.ReputationULCC
		}
		needOTP, needSat := requirements(current)
		if businessRatio >= lccBusinessEarn && otp >= needOTP && sat >= needSat {
			return models.ReputationLCCGood
		}
	case models.ReputationLCCGood:
		if economyRatio >= ulccEconomyEarn {
			return models.ReputationULCC
		}
	}
	return rep
}

// requirements returns the upgrade thresholds, unreachable when undefined.
func requirements(r catalog.Reputation) (otp, satisfaction float64) {
	otp, satisfaction = r.RequiredOTP, r.RequiredSatisfaction
	if otp == 0 {
		otp = unreachableRequired
	}
	if satisfaction == 0 {
		satisfaction = unreachableRequired
	}
	return otp, satisfaction
}
