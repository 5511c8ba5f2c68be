package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeComponents is the tagged aggregate of the five income heads the
// engine understands. Absent sub-records contribute nothing.
type IncomeComponents struct {
	Salary        SalaryComponents             `yaml:"salary" json:"salary"`
	OtherSources  OtherSourcesComponents       `yaml:"other_sources" json:"other_sources"`
	HouseProperty HousePropertyComponents      `yaml:"house_property" json:"house_property"`
	CapitalGains  CapitalGainsComponents       `yaml:"capital_gains" json:"capital_gains"`
	Retirement    RetirementBenefitsComponents `yaml:"retirement_benefits" json:"retirement_benefits"`
}

// SalaryComponents carries the salary head: pay, allowances with their
// individually capped exemptions, and perquisites. Allowance amounts are
// annual figures as received.
type SalaryComponents struct {
	Basic             decimal.Decimal `yaml:"basic" json:"basic"`
	DearnessAllowance decimal.Decimal `yaml:"dearness_allowance" json:"dearness_allowance"`
	HRAReceived       decimal.Decimal `yaml:"hra_received" json:"hra_received"`
	RentPaid          decimal.Decimal `yaml:"rent_paid" json:"rent_paid"`
	MetroCity         bool            `yaml:"metro_city" json:"metro_city"`
	SpecialAllowance  decimal.Decimal `yaml:"special_allowance" json:"special_allowance"`
	OtherAllowances   decimal.Decimal `yaml:"other_allowances" json:"other_allowances"`

	// Exempt-up-to-limit allowances. Each is exempt to the extent of its
	// statutory formula under the old regime and fully taxable under the new.
	HillsAllowance             decimal.Decimal `yaml:"hills_allowance" json:"hills_allowance"`
	BorderAllowance            decimal.Decimal `yaml:"border_allowance" json:"border_allowance"`
	TransportAllowance         decimal.Decimal `yaml:"transport_allowance" json:"transport_allowance"`
	DisabledTransportAllowance decimal.Decimal `yaml:"disabled_transport_allowance" json:"disabled_transport_allowance"`
	ChildrenEducationAllowance decimal.Decimal `yaml:"children_education_allowance" json:"children_education_allowance"`
	HostelAllowance            decimal.Decimal `yaml:"hostel_allowance" json:"hostel_allowance"`
	UndergroundMinesAllowance  decimal.Decimal `yaml:"underground_mines_allowance" json:"underground_mines_allowance"`
	EntertainmentAllowance     decimal.Decimal `yaml:"entertainment_allowance" json:"entertainment_allowance"`
	ChildrenCount              int             `yaml:"children_count" json:"children_count"`

	Perquisites PerquisiteComponents `yaml:"perquisites" json:"perquisites"`
}

// BasicPlusDA is the base used by HRA, NPS and accommodation formulas.
func (s SalaryComponents) BasicPlusDA() decimal.Decimal {
	return s.Basic.Add(s.DearnessAllowance)
}

// PerquisiteComponents carries employer-provided benefits valued by
// category-specific formulas.
type PerquisiteComponents struct {
	// Rent-free or concessional accommodation.
	AccommodationCityTier      CityTier        `yaml:"accommodation_city_tier" json:"accommodation_city_tier"`
	AccommodationRentRecovered decimal.Decimal `yaml:"accommodation_rent_recovered" json:"accommodation_rent_recovered"`

	// Employer-provided car.
	CarUsage       CarUsage        `yaml:"car_usage" json:"car_usage"`
	CarAbove1600CC bool            `yaml:"car_above_1600cc" json:"car_above_1600cc"`
	CarDriver      bool            `yaml:"car_driver" json:"car_driver"`
	CarMonths      int             `yaml:"car_months" json:"car_months"`
	CarActualCost  decimal.Decimal `yaml:"car_actual_cost" json:"car_actual_cost"`

	MedicalReimbursement decimal.Decimal `yaml:"medical_reimbursement" json:"medical_reimbursement"`

	// Leave travel: amount received and the actual travel cost it covers.
	LTAReceived   decimal.Decimal `yaml:"lta_received" json:"lta_received"`
	LTATravelCost decimal.Decimal `yaml:"lta_travel_cost" json:"lta_travel_cost"`

	// Concessional loan.
	LoanPrincipal     decimal.Decimal `yaml:"loan_principal" json:"loan_principal"`
	LoanBenchmarkRate decimal.Decimal `yaml:"loan_benchmark_rate" json:"loan_benchmark_rate"`
	LoanChargedRate   decimal.Decimal `yaml:"loan_charged_rate" json:"loan_charged_rate"`

	// ESOP exercise.
	ESOPShares        int64           `yaml:"esop_shares" json:"esop_shares"`
	ESOPFairValue     decimal.Decimal `yaml:"esop_fair_value" json:"esop_fair_value"`
	ESOPExercisePrice decimal.Decimal `yaml:"esop_exercise_price" json:"esop_exercise_price"`

	Utilities    decimal.Decimal `yaml:"utilities" json:"utilities"`
	MealsValue   decimal.Decimal `yaml:"meals_value" json:"meals_value"`
	MealsCount   int             `yaml:"meals_count" json:"meals_count"`
	GiftVouchers decimal.Decimal `yaml:"gift_vouchers" json:"gift_vouchers"`

	// Movable assets: use is valued per year of use, transfer at
	// depreciated cost less the price the employee paid.
	MovableAssetCost       decimal.Decimal `yaml:"movable_asset_cost" json:"movable_asset_cost"`
	AssetTransferCost      decimal.Decimal `yaml:"asset_transfer_cost" json:"asset_transfer_cost"`
	AssetTransferYearsUsed int             `yaml:"asset_transfer_years_used" json:"asset_transfer_years_used"`
	AssetTransferPricePaid decimal.Decimal `yaml:"asset_transfer_price_paid" json:"asset_transfer_price_paid"`

	FreeEducationValue    decimal.Decimal `yaml:"free_education_value" json:"free_education_value"`
	FreeEducationChildren int             `yaml:"free_education_children" json:"free_education_children"`
}

// OtherSourcesComponents carries interest, dividend and residual income.
type OtherSourcesComponents struct {
	SavingsInterest decimal.Decimal `yaml:"savings_interest" json:"savings_interest"`
	FDInterest      decimal.Decimal `yaml:"fd_interest" json:"fd_interest"`
	RDInterest      decimal.Decimal `yaml:"rd_interest" json:"rd_interest"`
	Dividends       decimal.Decimal `yaml:"dividends" json:"dividends"`
	GiftsReceived   decimal.Decimal `yaml:"gifts_received" json:"gifts_received"`
	Miscellaneous   decimal.Decimal `yaml:"miscellaneous" json:"miscellaneous"`
}

// TotalInterest is the 80TTB base: interest across all three deposit types.
func (o OtherSourcesComponents) TotalInterest() decimal.Decimal {
	return o.SavingsInterest.Add(o.FDInterest).Add(o.RDInterest)
}

// HousePropertyComponents carries one house property's annual figures.
type HousePropertyComponents struct {
	Status                  PropertyStatus  `yaml:"status" json:"status"`
	AnnualRent              decimal.Decimal `yaml:"annual_rent" json:"annual_rent"`
	MunicipalTax            decimal.Decimal `yaml:"municipal_tax" json:"municipal_tax"`
	LoanInterest            decimal.Decimal `yaml:"loan_interest" json:"loan_interest"`
	PreConstructionInterest decimal.Decimal `yaml:"pre_construction_interest" json:"pre_construction_interest"`
}

// CapitalGainsComponents carries the four capital-gains buckets.
type CapitalGainsComponents struct {
	STCGEquitySTT decimal.Decimal `yaml:"stcg_equity_stt" json:"stcg_equity_stt"`
	STCGOther     decimal.Decimal `yaml:"stcg_other" json:"stcg_other"`
	LTCGEquitySTT decimal.Decimal `yaml:"ltcg_equity_stt" json:"ltcg_equity_stt"`
	LTCGOther     decimal.Decimal `yaml:"ltcg_other" json:"ltcg_other"`
}

// RetirementBenefitsComponents carries terminal benefits and the service
// history their exemption formulas depend on.
type RetirementBenefitsComponents struct {
	LeaveEncashment                 decimal.Decimal `yaml:"leave_encashment" json:"leave_encashment"`
	LeaveEncashmentDuringEmployment bool            `yaml:"leave_encashment_during_employment" json:"leave_encashment_during_employment"`
	Gratuity                        decimal.Decimal `yaml:"gratuity" json:"gratuity"`
	UncommutedPension               decimal.Decimal `yaml:"uncommuted_pension" json:"uncommuted_pension"`
	CommutedPension                 decimal.Decimal `yaml:"commuted_pension" json:"commuted_pension"`
	VRSCompensation                 decimal.Decimal `yaml:"vrs_compensation" json:"vrs_compensation"`
	RetrenchmentCompensation        decimal.Decimal `yaml:"retrenchment_compensation" json:"retrenchment_compensation"`

	ServiceYears      int             `yaml:"service_years" json:"service_years"`
	AvgMonthlySalary  decimal.Decimal `yaml:"avg_monthly_salary" json:"avg_monthly_salary"`
	LastMonthlySalary decimal.Decimal `yaml:"last_monthly_salary" json:"last_monthly_salary"`
	IsGovernment      bool            `yaml:"is_government" json:"is_government"`
	Deceased          bool            `yaml:"deceased" json:"deceased"`
}
