package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

var oneHalf = decimal.NewFromFloat(0.5)

// retirementIncome computes the taxable portion of terminal benefits.
// Government service makes most benefits fully exempt; a deceased
// employee's estate gets no leave-encashment, gratuity or VRS exemption;
// leave encashed during employment is taxable in full.
func (ia *IncomeAggregator) retirementIncome(profile domain.TaxpayerProfile, r domain.RetirementBenefitsComponents, audit map[string]decimal.Decimal) decimal.Decimal {
	if !ia.Gate.IsApplicable(RuleRetirementExemption, profile.Regime) {
		// Retirement exemptions are regime-independent today; the gate is
		// consulted anyway so a future vintage can restrict them.
		taxable := r.LeaveEncashment.
			Add(r.Gratuity).
			Add(r.UncommutedPension).
			Add(r.CommutedPension).
			Add(r.VRSCompensation).
			Add(r.RetrenchmentCompensation)
		return taxable
	}

	caps := ia.Rules.Retirement
	serviceYears := decimal.NewFromInt(int64(r.ServiceYears))

	leaveExempt := decimal.Zero
	if !r.LeaveEncashmentDuringEmployment && !r.Deceased {
		if r.IsGovernment {
			leaveExempt = r.LeaveEncashment
		} else {
			leaveExempt = decimal.Min(
				r.LeaveEncashment,
				caps.LeaveEncashmentCap,
				r.AvgMonthlySalary.Mul(caps.LeaveEncashmentMonths),
				r.AvgMonthlySalary.Mul(serviceYears),
			)
		}
	}
	audit["retirement.leave_encashment_exemption"] = leaveExempt

	gratuityExempt := decimal.Zero
	if !r.Deceased {
		if r.IsGovernment {
			gratuityExempt = r.Gratuity
		} else {
			fifteenDays := r.LastMonthlySalary.
				Mul(caps.GratuityDaysNumerator).
				Div(caps.GratuityDaysDenominator).
				Mul(serviceYears)
			gratuityExempt = decimal.Min(r.Gratuity, caps.GratuityCap, fifteenDays)
		}
	}
	audit["retirement.gratuity_exemption"] = gratuityExempt

	// Uncommuted pension is always fully taxable; the commuted portion is
	// fully exempt for government service, otherwise one third when
	// gratuity was also received, else one half.
	commutedExempt := decimal.Zero
	if r.IsGovernment {
		commutedExempt = r.CommutedPension
	} else {
		divisor := decimal.NewFromInt(2)
		if r.Gratuity.IsPositive() {
			divisor = decimal.NewFromInt(3)
		}
		commutedExempt = r.CommutedPension.Div(divisor)
	}
	audit["retirement.commuted_pension_exemption"] = commutedExempt

	vrsExempt := decimal.Zero
	if !r.Deceased && (r.ServiceYears >= caps.VRSMinServiceYears || profile.Age >= caps.VRSMinAge) {
		vrsExempt = decimal.Min(r.VRSCompensation, caps.VRSCap)
	}
	audit["retirement.vrs_exemption"] = vrsExempt

	retrenchmentExempt := decimal.Min(
		r.RetrenchmentCompensation,
		caps.RetrenchmentCap,
		r.AvgMonthlySalary.Mul(oneHalf).Mul(serviceYears),
	)
	audit["retirement.retrenchment_exemption"] = retrenchmentExempt

	taxable := r.LeaveEncashment.Sub(leaveExempt).
		Add(r.Gratuity.Sub(gratuityExempt)).
		Add(r.UncommutedPension).
		Add(r.CommutedPension.Sub(commutedExempt)).
		Add(r.VRSCompensation.Sub(vrsExempt)).
		Add(r.RetrenchmentCompensation.Sub(retrenchmentExempt))
	return clampZero(taxable)
}
