package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// LevyResult itemizes the post-base steps: rebate, surcharge before and
// after marginal relief, cess and the final liability.
type LevyResult struct {
	Rebate87A             decimal.Decimal
	TaxAfterRebate        decimal.Decimal
	SurchargeBeforeRelief decimal.Decimal
	Surcharge             decimal.Decimal
	Cess                  decimal.Decimal
	FinalTax              decimal.Decimal
}

// RebateSurchargeCessCalculator applies the fixed tail of the pipeline:
// section 87A rebate, then tiered surcharge with marginal relief, then
// cess. The order never changes.
type RebateSurchargeCessCalculator struct {
	Rules *domain.RuleSet
	Slabs *SlabTaxCalculator
	Gate  *RegimeGate
}

// NewRebateSurchargeCessCalculator creates a calculator bound to one rule
// vintage; it needs the slab calculator to price the surcharge thresholds
// for marginal relief.
func NewRebateSurchargeCessCalculator(rules *domain.RuleSet, slabs *SlabTaxCalculator, gate *RegimeGate) *RebateSurchargeCessCalculator {
	return &RebateSurchargeCessCalculator{Rules: rules, Slabs: slabs, Gate: gate}
}

// Apply runs rebate, surcharge and cess over the base tax. baseTax is slab
// tax plus special-rate capital-gains tax; specialRateTax is the
// capital-gains portion alone, held constant when pricing the marginal
// relief threshold.
func (rc *RebateSurchargeCessCalculator) Apply(profile domain.TaxpayerProfile, netTaxableIncome, baseTax, specialRateTax decimal.Decimal) LevyResult {
	var res LevyResult

	res.Rebate87A = rc.rebate(profile, netTaxableIncome, baseTax)
	res.TaxAfterRebate = clampZero(baseTax.Sub(res.Rebate87A))

	rate, threshold := rc.surchargeTier(netTaxableIncome)
	res.SurchargeBeforeRelief = res.TaxAfterRebate.Mul(rate)
	res.Surcharge = rc.marginalRelief(profile, netTaxableIncome, threshold, res.TaxAfterRebate, res.SurchargeBeforeRelief, specialRateTax)

	res.Cess = res.TaxAfterRebate.Add(res.Surcharge).Mul(rc.Rules.CessRate)
	res.FinalTax = res.TaxAfterRebate.Add(res.Surcharge).Add(res.Cess)
	return res
}

// rebate applies section 87A: a capped credit against the whole base tax,
// available only up to the regime's income ceiling.
func (rc *RebateSurchargeCessCalculator) rebate(profile domain.TaxpayerProfile, netTaxableIncome, baseTax decimal.Decimal) decimal.Decimal {
	if !rc.Gate.IsApplicable(RuleRebate87A, profile.Regime) {
		return decimal.Zero
	}
	rule := rc.Rules.RebateOld
	if profile.Regime == domain.RegimeNew {
		rule = rc.Rules.RebateNew
	}
	if netTaxableIncome.GreaterThan(rule.IncomeCeiling) {
		return decimal.Zero
	}
	return decimal.Min(rule.Cap, baseTax)
}

// surchargeTier returns the rate and threshold of the highest tier the
// income exceeds, or zero when no tier applies.
func (rc *RebateSurchargeCessCalculator) surchargeTier(netTaxableIncome decimal.Decimal) (rate, threshold decimal.Decimal) {
	for _, tier := range rc.Rules.SurchargeTiers {
		if netTaxableIncome.GreaterThan(tier.Threshold) {
			return tier.Rate, tier.Threshold
		}
	}
	return decimal.Zero, decimal.Zero
}

// marginalRelief caps the surcharge so that total tax never grows faster
// than the income that crossed the threshold: tax plus surcharge may not
// exceed the tax at the threshold plus the excess income.
func (rc *RebateSurchargeCessCalculator) marginalRelief(profile domain.TaxpayerProfile, netTaxableIncome, threshold, taxAfterRebate, surcharge, specialRateTax decimal.Decimal) decimal.Decimal {
	if surcharge.IsZero() || threshold.IsZero() {
		return surcharge
	}

	// Price the liability at the threshold itself, which sits in the next
	// tier down. Rebates are irrelevant at these income levels; the
	// special-rate tax is identical on both sides of the comparison.
	thresholdBase := rc.Slabs.Calculate(profile.Regime, profile.Band(), threshold).Add(specialRateTax)
	thresholdRate, _ := rc.surchargeTier(threshold)
	thresholdTotal := thresholdBase.Add(thresholdBase.Mul(thresholdRate))

	maxTotal := thresholdTotal.Add(netTaxableIncome.Sub(threshold))
	allowed := clampZero(maxTotal.Sub(taxAfterRebate))
	return decimal.Min(surcharge, allowed)
}
