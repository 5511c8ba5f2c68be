package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// salaryIncome computes the taxable salary head: pay plus allowances net of
// their capped exemptions, plus perquisites. The standard deduction is not
// applied here.
func (ia *IncomeAggregator) salaryIncome(profile domain.TaxpayerProfile, s domain.SalaryComponents, audit map[string]decimal.Decimal) decimal.Decimal {
	taxable := s.Basic.
		Add(s.DearnessAllowance).
		Add(s.SpecialAllowance).
		Add(s.OtherAllowances)

	hraExempt := decimal.Zero
	if ia.Gate.IsApplicable(RuleHRAExemption, profile.Regime) {
		hraExempt = ia.hraExemption(s)
	}
	audit["salary.hra_exemption"] = hraExempt
	taxable = taxable.Add(s.HRAReceived.Sub(hraExempt))

	taxable = taxable.Add(ia.cappedAllowances(profile, s, audit))
	taxable = taxable.Add(ia.perquisiteValue(profile, s, audit))
	return taxable
}

// hraExemption is the least of rent relief, the city-percentage of basic+DA
// and the HRA actually received.
func (ia *IncomeAggregator) hraExemption(s domain.SalaryComponents) decimal.Decimal {
	if s.HRAReceived.IsZero() {
		return decimal.Zero
	}
	base := s.BasicPlusDA()
	pct := ia.Rules.HRANonMetroPct
	if s.MetroCity {
		pct = ia.Rules.HRAMetroPct
	}
	rentRelief := clampZero(s.RentPaid.Sub(base.Mul(ia.Rules.HRARentBasicPct)))
	return decimal.Min(s.HRAReceived, base.Mul(pct), rentRelief)
}

// cappedAllowances sums the exempt-up-to-limit allowances after their
// statutory exemptions. Exemptions vanish entirely under the new regime.
func (ia *IncomeAggregator) cappedAllowances(profile domain.TaxpayerProfile, s domain.SalaryComponents, audit map[string]decimal.Decimal) decimal.Decimal {
	caps := ia.Rules.Allowances
	gated := ia.Gate.IsApplicable(RuleAllowanceExemptions, profile.Regime)

	children := int64(s.ChildrenCount)
	if children > int64(caps.MaxChildren) {
		children = int64(caps.MaxChildren)
	}
	childFactor := decimal.NewFromInt(children)

	type line struct {
		name     string
		declared decimal.Decimal
		limit    decimal.Decimal
	}
	lines := []line{
		{"hills", s.HillsAllowance, caps.HillsMonthly.Mul(twelve)},
		{"border", s.BorderAllowance, caps.BorderMonthly.Mul(twelve)},
		{"transport", s.TransportAllowance, caps.TransportMonthly.Mul(twelve)},
		{"disabled_transport", s.DisabledTransportAllowance, caps.DisabledTransportMonthly.Mul(twelve)},
		{"children_education", s.ChildrenEducationAllowance, caps.ChildrenEducationMonthly.Mul(twelve).Mul(childFactor)},
		{"hostel", s.HostelAllowance, caps.HostelMonthly.Mul(twelve).Mul(childFactor)},
		{"underground_mines", s.UndergroundMinesAllowance, caps.UndergroundMinesMonthly.Mul(twelve)},
	}

	taxable := decimal.Zero
	for _, l := range lines {
		exempt := decimal.Zero
		if gated {
			exempt = decimal.Min(l.declared, l.limit)
		}
		audit["salary.allowance."+l.name] = exempt
		taxable = taxable.Add(l.declared.Sub(exempt))
	}

	// Entertainment allowance relief is for government employees only.
	entExempt := decimal.Zero
	if profile.IsGovernmentEmployee && ia.Gate.IsApplicable(RuleEntertainment, profile.Regime) {
		entExempt = decimal.Min(s.EntertainmentAllowance, caps.EntertainmentFlat, s.Basic.Mul(caps.EntertainmentBasicPct))
	}
	audit["salary.allowance.entertainment"] = entExempt
	taxable = taxable.Add(s.EntertainmentAllowance.Sub(entExempt))

	return taxable
}
