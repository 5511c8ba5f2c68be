package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// SlabTaxCalculator walks the progressive tier table selected by regime and
// age band.
type SlabTaxCalculator struct {
	Rules *domain.RuleSet
}

// NewSlabTaxCalculator creates a calculator bound to one rule vintage.
func NewSlabTaxCalculator(rules *domain.RuleSet) *SlabTaxCalculator {
	return &SlabTaxCalculator{Rules: rules}
}

// TableFor selects the slab table. The new regime has a single
// age-independent table; the old regime raises the exemption tier for
// seniors and super seniors.
func (sc *SlabTaxCalculator) TableFor(regime domain.Regime, band domain.AgeBand) []domain.SlabTier {
	if regime == domain.RegimeNew {
		return sc.Rules.SlabsNew
	}
	switch band {
	case domain.AgeBandSuperSenior:
		return sc.Rules.SlabsOldSuperSenior
	case domain.AgeBandSenior:
		return sc.Rules.SlabsOldSenior
	default:
		return sc.Rules.SlabsOldRegular
	}
}

// Calculate computes slab tax on the income: within every tier the taxed
// amount is max(0, min(upper, income) - lower).
func (sc *SlabTaxCalculator) Calculate(regime domain.Regime, band domain.AgeBand, income decimal.Decimal) decimal.Decimal {
	totalTax := decimal.Zero
	for _, tier := range sc.TableFor(regime, band) {
		if income.LessThanOrEqual(tier.Lower) {
			break
		}
		inTier := decimal.Min(income, tier.Upper).Sub(tier.Lower)
		if inTier.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(inTier.Mul(tier.Rate))
		}
	}
	return totalTax
}
