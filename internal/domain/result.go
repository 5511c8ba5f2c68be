package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeSummary is the aggregator's output: the slab-taxed total, the
// special-rate buckets, and the intermediate bases downstream rules need.
type IncomeSummary struct {
	// SlabTotal is the income taxed at progressive slab rates, after
	// head-level exemptions but before the standard deduction and
	// Chapter VI-A deductions. House-property losses offset it.
	SlabTotal decimal.Decimal `json:"slab_total"`

	// Per-head slab components, kept for the 80G adjusted-gross base and
	// the itemized breakdown.
	SalaryIncome        decimal.Decimal `json:"salary_income"`
	OtherSourcesIncome  decimal.Decimal `json:"other_sources_income"`
	HousePropertyIncome decimal.Decimal `json:"house_property_income"` // may be negative
	STCGSlabIncome      decimal.Decimal `json:"stcg_slab_income"`
	RetirementIncome    decimal.Decimal `json:"retirement_income"`

	// BasicPlusDA is the base for the employer NPS cap.
	BasicPlusDA decimal.Decimal `json:"basic_plus_da"`

	// StandardDeduction actually available against gross salary.
	StandardDeduction decimal.Decimal `json:"standard_deduction"`

	// SpecialBuckets holds the capital gains taxed outside the slab system.
	SpecialBuckets SpecialRateBuckets `json:"special_buckets"`
}

// SpecialRateBuckets are the flat-rate capital gains amounts.
type SpecialRateBuckets struct {
	STCGEquitySTT decimal.Decimal `json:"stcg_equity_stt"`
	LTCGEquitySTT decimal.Decimal `json:"ltcg_equity_stt"`
	LTCGOther     decimal.Decimal `json:"ltcg_other"`
}

// CapitalGainsTax itemizes the flat-rate tax per bucket.
type CapitalGainsTax struct {
	STCGEquitySTT decimal.Decimal `json:"stcg_equity_stt"`
	LTCGEquitySTT decimal.Decimal `json:"ltcg_equity_stt"`
	LTCGOther     decimal.Decimal `json:"ltcg_other"`
	Total         decimal.Decimal `json:"total"`
}

// DeductionBreakdown itemizes every Chapter VI-A section the engine applied.
type DeductionBreakdown struct {
	Section80C       decimal.Decimal `json:"section_80c"`
	Section80CCD1B   decimal.Decimal `json:"section_80ccd_1b"`
	Section80CCD2    decimal.Decimal `json:"section_80ccd_2"`
	Section80DSelf   decimal.Decimal `json:"section_80d_self"`
	Section80DParent decimal.Decimal `json:"section_80d_parent"`
	Section80DD      decimal.Decimal `json:"section_80dd"`
	Section80DDB     decimal.Decimal `json:"section_80ddb"`
	Section80E       decimal.Decimal `json:"section_80e"`
	Section80EEB     decimal.Decimal `json:"section_80eeb"`
	Section80G       decimal.Decimal `json:"section_80g"`
	Section80GGC     decimal.Decimal `json:"section_80ggc"`
	Section80U       decimal.Decimal `json:"section_80u"`
	Total            decimal.Decimal `json:"total"`
}

// Sum recomputes the total across every section.
func (d DeductionBreakdown) Sum() decimal.Decimal {
	return d.Section80C.
		Add(d.Section80CCD1B).
		Add(d.Section80CCD2).
		Add(d.Section80DSelf).
		Add(d.Section80DParent).
		Add(d.Section80DD).
		Add(d.Section80DDB).
		Add(d.Section80E).
		Add(d.Section80EEB).
		Add(d.Section80G).
		Add(d.Section80GGC).
		Add(d.Section80U)
}

// TaxComputationResult is the fully itemized outcome of one computation.
type TaxComputationResult struct {
	FinancialYear string `json:"financial_year"`
	Regime        Regime `json:"regime"`

	GrossIncome      decimal.Decimal `json:"gross_income"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetTaxableIncome decimal.Decimal `json:"net_taxable_income"`

	SlabTax         decimal.Decimal `json:"slab_tax"`
	CapitalGainsTax CapitalGainsTax `json:"capital_gains_tax"`

	Rebate87A             decimal.Decimal `json:"rebate_87a"`
	SurchargeBeforeRelief decimal.Decimal `json:"surcharge_before_relief"`
	Surcharge             decimal.Decimal `json:"surcharge"`
	Cess                  decimal.Decimal `json:"cess"`
	FinalTax              decimal.Decimal `json:"final_tax"`

	Income     IncomeSummary      `json:"income"`
	Deductions DeductionBreakdown `json:"deductions"`

	// Breakdown maps rule names to the amount each contributed, for audit.
	Breakdown map[string]decimal.Decimal `json:"breakdown"`
}
