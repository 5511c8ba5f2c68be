package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
	"github.com/taxgo/india-tax-engine/pkg/fy"
)

type monetaryField struct {
	name  string
	value decimal.Decimal
}

// ValidateRequest performs the fail-fast structural checks of a computation
// request: age range, regime and enum values, financial year format, and
// non-negative declared amounts. Every error names the offending field.
// Clamping of negative intermediates is business behavior and happens inside
// the calculators, never here.
func ValidateRequest(profile domain.TaxpayerProfile, income domain.IncomeComponents, decl domain.DeductionDeclarations) error {
	if profile.Age < 0 || profile.Age > 120 {
		return invalidInput("profile.age", "must be between 0 and 120, got %d", profile.Age)
	}
	if !profile.Regime.Valid() {
		return invalidInput("profile.regime", "must be %q or %q, got %q", domain.RegimeOld, domain.RegimeNew, profile.Regime)
	}
	if profile.FinancialYear != "" {
		if _, err := fy.Parse(profile.FinancialYear); err != nil {
			return invalidInput("profile.financial_year", "%v", err)
		}
	}

	if err := validateEnums(income, decl); err != nil {
		return err
	}
	if err := validateCounts(income, decl); err != nil {
		return err
	}
	return validateAmounts(income, decl)
}

func validateEnums(income domain.IncomeComponents, decl domain.DeductionDeclarations) error {
	if hp := income.HouseProperty; hp.Status != "" && !hp.Status.Valid() {
		return invalidInput("income.house_property.status", "unrecognized status %q", hp.Status)
	}
	p := income.Salary.Perquisites
	if !p.CarUsage.Valid() {
		return invalidInput("income.salary.perquisites.car_usage", "unrecognized usage %q", p.CarUsage)
	}
	if !p.AccommodationCityTier.Valid() {
		return invalidInput("income.salary.perquisites.accommodation_city_tier", "unrecognized tier %q", p.AccommodationCityTier)
	}

	if dd := decl.Section80DD; dd.Tier != domain.DisabilityNone {
		if !dd.Tier.Valid() {
			return invalidInput("deductions.section_80dd.tier", "unrecognized disability tier %q", dd.Tier)
		}
		if !dd.Relation.Valid() {
			return invalidInput("deductions.section_80dd.relation", "unrecognized relation %q", dd.Relation)
		}
	}
	if ddb := decl.Section80DDB; ddb.Expenses.IsPositive() && !ddb.Relation.Valid() {
		return invalidInput("deductions.section_80ddb.relation", "unrecognized relation %q", ddb.Relation)
	}
	if e := decl.Section80E; e.LoanInterest.IsPositive() && !e.Relation.Valid() {
		return invalidInput("deductions.section_80e.relation", "unrecognized relation %q", e.Relation)
	}
	for i, don := range decl.Section80G {
		if !don.Category.Valid() {
			return invalidInput("deductions.section_80g", "donation %d: unrecognized category %q", i, don.Category)
		}
	}
	if u := decl.Section80U; u.Tier != domain.DisabilityNone && !u.Tier.Valid() {
		return invalidInput("deductions.section_80u.tier", "unrecognized disability tier %q", u.Tier)
	}
	return nil
}

func validateCounts(income domain.IncomeComponents, decl domain.DeductionDeclarations) error {
	s := income.Salary
	if s.ChildrenCount < 0 {
		return invalidInput("income.salary.children_count", "must not be negative, got %d", s.ChildrenCount)
	}
	p := s.Perquisites
	if p.CarMonths < 0 || p.CarMonths > 12 {
		return invalidInput("income.salary.perquisites.car_months", "must be between 0 and 12, got %d", p.CarMonths)
	}
	if p.MealsCount < 0 {
		return invalidInput("income.salary.perquisites.meals_count", "must not be negative, got %d", p.MealsCount)
	}
	if p.ESOPShares < 0 {
		return invalidInput("income.salary.perquisites.esop_shares", "must not be negative, got %d", p.ESOPShares)
	}
	if p.AssetTransferYearsUsed < 0 {
		return invalidInput("income.salary.perquisites.asset_transfer_years_used", "must not be negative, got %d", p.AssetTransferYearsUsed)
	}
	if p.FreeEducationChildren < 0 {
		return invalidInput("income.salary.perquisites.free_education_children", "must not be negative, got %d", p.FreeEducationChildren)
	}
	if income.Retirement.ServiceYears < 0 {
		return invalidInput("income.retirement_benefits.service_years", "must not be negative, got %d", income.Retirement.ServiceYears)
	}
	if age := decl.Section80D.ParentAge; age < 0 || age > 120 {
		if !(age == 0 && decl.Section80D.ParentPremium.IsZero()) {
			return invalidInput("deductions.section_80d.parent_age", "must be between 0 and 120, got %d", age)
		}
	}
	if age := decl.Section80DDB.DependentAge; age < 0 || age > 120 {
		return invalidInput("deductions.section_80ddb.dependent_age", "must be between 0 and 120, got %d", age)
	}
	return nil
}

func validateAmounts(income domain.IncomeComponents, decl domain.DeductionDeclarations) error {
	s := income.Salary
	p := s.Perquisites
	o := income.OtherSources
	hp := income.HouseProperty
	cg := income.CapitalGains
	r := income.Retirement
	c := decl.Section80C

	fields := []monetaryField{
		{"income.salary.basic", s.Basic},
		{"income.salary.dearness_allowance", s.DearnessAllowance},
		{"income.salary.hra_received", s.HRAReceived},
		{"income.salary.rent_paid", s.RentPaid},
		{"income.salary.special_allowance", s.SpecialAllowance},
		{"income.salary.other_allowances", s.OtherAllowances},
		{"income.salary.hills_allowance", s.HillsAllowance},
		{"income.salary.border_allowance", s.BorderAllowance},
		{"income.salary.transport_allowance", s.TransportAllowance},
		{"income.salary.disabled_transport_allowance", s.DisabledTransportAllowance},
		{"income.salary.children_education_allowance", s.ChildrenEducationAllowance},
		{"income.salary.hostel_allowance", s.HostelAllowance},
		{"income.salary.underground_mines_allowance", s.UndergroundMinesAllowance},
		{"income.salary.entertainment_allowance", s.EntertainmentAllowance},
		{"income.salary.perquisites.accommodation_rent_recovered", p.AccommodationRentRecovered},
		{"income.salary.perquisites.car_actual_cost", p.CarActualCost},
		{"income.salary.perquisites.medical_reimbursement", p.MedicalReimbursement},
		{"income.salary.perquisites.lta_received", p.LTAReceived},
		{"income.salary.perquisites.lta_travel_cost", p.LTATravelCost},
		{"income.salary.perquisites.loan_principal", p.LoanPrincipal},
		{"income.salary.perquisites.loan_benchmark_rate", p.LoanBenchmarkRate},
		{"income.salary.perquisites.loan_charged_rate", p.LoanChargedRate},
		{"income.salary.perquisites.esop_fair_value", p.ESOPFairValue},
		{"income.salary.perquisites.esop_exercise_price", p.ESOPExercisePrice},
		{"income.salary.perquisites.utilities", p.Utilities},
		{"income.salary.perquisites.meals_value", p.MealsValue},
		{"income.salary.perquisites.gift_vouchers", p.GiftVouchers},
		{"income.salary.perquisites.movable_asset_cost", p.MovableAssetCost},
		{"income.salary.perquisites.asset_transfer_cost", p.AssetTransferCost},
		{"income.salary.perquisites.asset_transfer_price_paid", p.AssetTransferPricePaid},
		{"income.salary.perquisites.free_education_value", p.FreeEducationValue},
		{"income.other_sources.savings_interest", o.SavingsInterest},
		{"income.other_sources.fd_interest", o.FDInterest},
		{"income.other_sources.rd_interest", o.RDInterest},
		{"income.other_sources.dividends", o.Dividends},
		{"income.other_sources.gifts_received", o.GiftsReceived},
		{"income.other_sources.miscellaneous", o.Miscellaneous},
		{"income.house_property.annual_rent", hp.AnnualRent},
		{"income.house_property.municipal_tax", hp.MunicipalTax},
		{"income.house_property.loan_interest", hp.LoanInterest},
		{"income.house_property.pre_construction_interest", hp.PreConstructionInterest},
		{"income.capital_gains.stcg_equity_stt", cg.STCGEquitySTT},
		{"income.capital_gains.stcg_other", cg.STCGOther},
		{"income.capital_gains.ltcg_equity_stt", cg.LTCGEquitySTT},
		{"income.capital_gains.ltcg_other", cg.LTCGOther},
		{"income.retirement_benefits.leave_encashment", r.LeaveEncashment},
		{"income.retirement_benefits.gratuity", r.Gratuity},
		{"income.retirement_benefits.uncommuted_pension", r.UncommutedPension},
		{"income.retirement_benefits.commuted_pension", r.CommutedPension},
		{"income.retirement_benefits.vrs_compensation", r.VRSCompensation},
		{"income.retirement_benefits.retrenchment_compensation", r.RetrenchmentCompensation},
		{"income.retirement_benefits.avg_monthly_salary", r.AvgMonthlySalary},
		{"income.retirement_benefits.last_monthly_salary", r.LastMonthlySalary},
		{"deductions.section_80c.life_insurance_premium", c.LifeInsurancePremium},
		{"deductions.section_80c.ppf", c.PPF},
		{"deductions.section_80c.elss", c.ELSS},
		{"deductions.section_80c.nsc", c.NSC},
		{"deductions.section_80c.tuition_fees", c.TuitionFees},
		{"deductions.section_80c.home_loan_principal", c.HomeLoanPrincipal},
		{"deductions.section_80c.pension_fund_80ccc", c.PensionFund80CCC},
		{"deductions.section_80c.employee_nps_80ccd1", c.EmployeeNPS80CCD1},
		{"deductions.section_80c.other", c.Other},
		{"deductions.section_80ccd.additional_nps", decl.Section80CCD.AdditionalNPS},
		{"deductions.section_80ccd.employer_nps_contribution", decl.Section80CCD.EmployerNPSContribution},
		{"deductions.section_80d.self_premium", decl.Section80D.SelfPremium},
		{"deductions.section_80d.preventive_checkup", decl.Section80D.PreventiveCheckup},
		{"deductions.section_80d.parent_premium", decl.Section80D.ParentPremium},
		{"deductions.section_80dd.amount", decl.Section80DD.Amount},
		{"deductions.section_80ddb.expenses", decl.Section80DDB.Expenses},
		{"deductions.section_80e.loan_interest", decl.Section80E.LoanInterest},
		{"deductions.section_80eeb.loan_interest", decl.Section80EEB.LoanInterest},
		{"deductions.section_80ggc.amount", decl.Section80GGC.Amount},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return invalidInput(f.name, "must not be negative, got %s", f.value.String())
		}
	}
	for i, don := range decl.Section80G {
		if don.Amount.IsNegative() {
			return invalidInput("deductions.section_80g", "donation %d: amount must not be negative, got %s", i, don.Amount.String())
		}
	}
	return nil
}
