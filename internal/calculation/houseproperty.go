package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// housePropertyIncome computes the house property head. The result may be
// negative: a loss here offsets the other slab heads and is only clamped
// when the gross income total is formed.
func (ia *IncomeAggregator) housePropertyIncome(hp domain.HousePropertyComponents) decimal.Decimal {
	preConstruction := hp.PreConstructionInterest.Div(ia.Rules.PreConstructionYears)

	switch hp.Status {
	case domain.PropertyLetOut:
		nav := hp.AnnualRent.Sub(hp.MunicipalTax)
		standard := clampZero(nav).Mul(ia.Rules.LetOutStandardPct)
		// Let-out interest is uncapped.
		return nav.Sub(standard).Sub(hp.LoanInterest).Sub(preConstruction)
	case domain.PropertySelfOccupied:
		interest := decimal.Min(ia.Rules.SelfOccupiedInterestCap, hp.LoanInterest)
		return interest.Add(preConstruction).Neg()
	default:
		// No property declared.
		return decimal.Zero
	}
}
