package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// otherSourcesIncome computes the residual head: deposit interest net of
// the 80TTA/80TTB relief, dividends, gifts above the annual threshold, and
// miscellaneous receipts.
func (ia *IncomeAggregator) otherSourcesIncome(profile domain.TaxpayerProfile, o domain.OtherSourcesComponents, audit map[string]decimal.Decimal) decimal.Decimal {
	total := o.TotalInterest().
		Add(o.Dividends).
		Add(o.Miscellaneous)

	// Gifts are exempt in full below the threshold and taxable in full
	// above it.
	giftExempt := o.GiftsReceived
	if o.GiftsReceived.GreaterThan(ia.Rules.GiftExemptionThreshold) {
		giftExempt = decimal.Zero
		total = total.Add(o.GiftsReceived)
	}
	audit["other_sources.gift_exemption"] = giftExempt

	relief := ia.interestRelief(profile, o)
	audit["other_sources.interest_relief"] = relief
	return total.Sub(relief)
}

// interestRelief applies 80TTB for seniors (all deposit interest) or 80TTA
// otherwise (savings interest only). Neither survives the new regime.
func (ia *IncomeAggregator) interestRelief(profile domain.TaxpayerProfile, o domain.OtherSourcesComponents) decimal.Decimal {
	if profile.Age >= 60 {
		if !ia.Gate.IsApplicable(Rule80TTB, profile.Regime) {
			return decimal.Zero
		}
		return decimal.Min(ia.Rules.Cap80TTB, o.TotalInterest())
	}
	if !ia.Gate.IsApplicable(Rule80TTA, profile.Regime) {
		return decimal.Zero
	}
	return decimal.Min(ia.Rules.Cap80TTA, o.SavingsInterest)
}
