package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// IncomeAggregator normalizes the five income heads into the slab-taxable
// total and the special-rate capital-gains buckets.
type IncomeAggregator struct {
	Rules  *domain.RuleSet
	Gate   *RegimeGate
	Logger Logger
}

// NewIncomeAggregator creates an aggregator bound to one rule vintage.
func NewIncomeAggregator(rules *domain.RuleSet, gate *RegimeGate, logger Logger) *IncomeAggregator {
	return &IncomeAggregator{Rules: rules, Gate: gate, Logger: logger}
}

// Aggregate computes the income summary and an audit map of the exemptions
// applied along the way, keyed by rule name.
func (ia *IncomeAggregator) Aggregate(profile domain.TaxpayerProfile, income domain.IncomeComponents) (domain.IncomeSummary, map[string]decimal.Decimal) {
	audit := make(map[string]decimal.Decimal)

	salary := ia.salaryIncome(profile, income.Salary, audit)
	other := ia.otherSourcesIncome(profile, income.OtherSources, audit)
	hp := ia.housePropertyIncome(income.HouseProperty)
	retirement := ia.retirementIncome(profile, income.Retirement, audit)
	stcgSlab := income.CapitalGains.STCGOther

	summary := domain.IncomeSummary{
		SalaryIncome:        salary,
		OtherSourcesIncome:  other,
		HousePropertyIncome: hp,
		STCGSlabIncome:      stcgSlab,
		RetirementIncome:    retirement,
		BasicPlusDA:         income.Salary.BasicPlusDA(),
		StandardDeduction:   ia.standardDeduction(profile, salary),
		SpecialBuckets: domain.SpecialRateBuckets{
			STCGEquitySTT: income.CapitalGains.STCGEquitySTT,
			LTCGEquitySTT: income.CapitalGains.LTCGEquitySTT,
			LTCGOther:     income.CapitalGains.LTCGOther,
		},
	}
	// House-property losses offset the other slab heads here; the gross
	// income clamp happens at orchestration time.
	summary.SlabTotal = salary.Add(other).Add(hp).Add(retirement).Add(stcgSlab)
	return summary, audit
}

// standardDeduction is min(cap, gross salary); the cap differs per regime.
func (ia *IncomeAggregator) standardDeduction(profile domain.TaxpayerProfile, grossSalary decimal.Decimal) decimal.Decimal {
	cap := ia.Rules.StandardDeductionOld
	if profile.Regime == domain.RegimeNew {
		cap = ia.Rules.StandardDeductionNew
	}
	return decimal.Min(cap, clampZero(grossSalary))
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
