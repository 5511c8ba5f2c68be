package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// perquisiteValue sums the employer-benefit perquisites using the
// category-specific valuation formulas. Perquisites are taxable under both
// regimes; only the LTA carve-out is regime-gated.
func (ia *IncomeAggregator) perquisiteValue(profile domain.TaxpayerProfile, s domain.SalaryComponents, audit map[string]decimal.Decimal) decimal.Decimal {
	p := s.Perquisites
	rates := ia.Rules.Perquisites

	total := ia.accommodationPerquisite(s)
	total = total.Add(ia.carPerquisite(p))
	total = total.Add(p.MedicalReimbursement)
	total = total.Add(p.Utilities)

	ltaExempt := decimal.Zero
	if ia.Gate.IsApplicable(RuleLTAExemption, profile.Regime) {
		ltaExempt = decimal.Min(p.LTAReceived, p.LTATravelCost)
	}
	audit["salary.lta_exemption"] = ltaExempt
	total = total.Add(p.LTAReceived.Sub(ltaExempt))

	// Concessional loan: interest saved on the benchmark rate; small loans
	// are carved out entirely.
	if p.LoanPrincipal.GreaterThan(rates.LoanExemptPrincipal) {
		spread := clampZero(p.LoanBenchmarkRate.Sub(p.LoanChargedRate))
		total = total.Add(p.LoanPrincipal.Mul(spread))
	}

	if p.ESOPShares > 0 {
		gain := clampZero(p.ESOPFairValue.Sub(p.ESOPExercisePrice))
		total = total.Add(gain.Mul(decimal.NewFromInt(p.ESOPShares)))
	}

	mealExempt := decimal.Min(p.MealsValue, rates.MealExemptPerMeal.Mul(decimal.NewFromInt(int64(p.MealsCount))))
	total = total.Add(p.MealsValue.Sub(mealExempt))

	// Gifts: the annual threshold shields small gifts; above it only the
	// excess is taxed.
	total = total.Add(clampZero(p.GiftVouchers.Sub(rates.GiftExemptAnnual)))

	total = total.Add(p.MovableAssetCost.Mul(rates.AssetUsePctPerYear))
	total = total.Add(ia.assetTransferPerquisite(p))

	eduExempt := rates.EducationExemptMonthly.Mul(twelve).Mul(decimal.NewFromInt(int64(p.FreeEducationChildren)))
	total = total.Add(clampZero(p.FreeEducationValue.Sub(eduExempt)))

	return total
}

// accommodationPerquisite values employer housing as a city-tier percentage
// of basic+DA, reduced by rent the employee pays back.
func (ia *IncomeAggregator) accommodationPerquisite(s domain.SalaryComponents) decimal.Decimal {
	p := s.Perquisites
	rates := ia.Rules.Perquisites

	var pct decimal.Decimal
	switch p.AccommodationCityTier {
	case domain.CityTierLarge:
		pct = rates.AccommodationLargeCityPct
	case domain.CityTierMid:
		pct = rates.AccommodationMidCityPct
	case domain.CityTierSmall:
		pct = rates.AccommodationSmallCityPct
	default:
		return decimal.Zero
	}
	return clampZero(s.BasicPlusDA().Mul(pct).Sub(p.AccommodationRentRecovered))
}

// carPerquisite values an employer car by usage: nil for official use,
// actual running cost for personal use, the fixed monthly tariff for mixed
// use (engine size tiered, driver extra).
func (ia *IncomeAggregator) carPerquisite(p domain.PerquisiteComponents) decimal.Decimal {
	rates := ia.Rules.Perquisites

	switch p.CarUsage {
	case domain.CarPersonal:
		return p.CarActualCost
	case domain.CarMixed:
		months := decimal.NewFromInt(int64(p.CarMonths))
		if p.CarMonths == 0 {
			months = twelve
		}
		monthly := rates.CarSmallMonthly
		if p.CarAbove1600CC {
			monthly = rates.CarLargeMonthly
		}
		if p.CarDriver {
			monthly = monthly.Add(rates.DriverMonthly)
		}
		return monthly.Mul(months)
	default:
		// Not provided, or official use only.
		return decimal.Zero
	}
}

// assetTransferPerquisite values a movable asset sold to the employee at
// straight-line depreciated cost less the price paid.
func (ia *IncomeAggregator) assetTransferPerquisite(p domain.PerquisiteComponents) decimal.Decimal {
	if p.AssetTransferCost.IsZero() {
		return decimal.Zero
	}
	rates := ia.Rules.Perquisites
	depreciation := rates.AssetDepreciationPct.Mul(decimal.NewFromInt(int64(p.AssetTransferYearsUsed)))
	one := decimal.NewFromInt(1)
	if depreciation.GreaterThan(one) {
		depreciation = one
	}
	written := p.AssetTransferCost.Mul(one.Sub(depreciation))
	return clampZero(written.Sub(p.AssetTransferPricePaid))
}
