package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/pkg/fy"
)

// SlabTier is one progressive tax tier. Tax within the tier is
// max(0, min(Upper, income) - Lower) * Rate.
type SlabTier struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
	Rate  decimal.Decimal
}

// SurchargeTier maps a net-taxable-income threshold to a surcharge rate.
// Tiers are ordered from the highest threshold down.
type SurchargeTier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// RebateRule holds the section 87A parameters for one regime.
type RebateRule struct {
	Cap           decimal.Decimal
	IncomeCeiling decimal.Decimal
}

// AllowanceCaps holds the monthly (or formula) caps for the
// exempt-up-to-limit salary allowances.
type AllowanceCaps struct {
	HillsMonthly             decimal.Decimal
	BorderMonthly            decimal.Decimal
	TransportMonthly         decimal.Decimal
	DisabledTransportMonthly decimal.Decimal
	ChildrenEducationMonthly decimal.Decimal // per child
	HostelMonthly            decimal.Decimal // per child
	UndergroundMinesMonthly  decimal.Decimal
	MaxChildren              int
	EntertainmentFlat        decimal.Decimal // government employees only
	EntertainmentBasicPct    decimal.Decimal
}

// PerquisiteRates holds the valuation constants for employer benefits.
type PerquisiteRates struct {
	AccommodationLargeCityPct decimal.Decimal
	AccommodationMidCityPct   decimal.Decimal
	AccommodationSmallCityPct decimal.Decimal
	CarSmallMonthly           decimal.Decimal // engine up to 1600cc
	CarLargeMonthly           decimal.Decimal
	DriverMonthly             decimal.Decimal
	LoanExemptPrincipal       decimal.Decimal
	MealExemptPerMeal         decimal.Decimal
	GiftExemptAnnual          decimal.Decimal
	AssetUsePctPerYear        decimal.Decimal
	AssetDepreciationPct      decimal.Decimal // per completed year of use
	EducationExemptMonthly    decimal.Decimal // per child
}

// RetirementCaps holds the terminal-benefit exemption ceilings.
type RetirementCaps struct {
	LeaveEncashmentCap      decimal.Decimal
	LeaveEncashmentMonths   decimal.Decimal // multiple of average monthly salary
	GratuityCap             decimal.Decimal
	GratuityDaysNumerator   decimal.Decimal
	GratuityDaysDenominator decimal.Decimal
	VRSCap                  decimal.Decimal
	VRSMinServiceYears      int
	VRSMinAge               int
	RetrenchmentCap         decimal.Decimal
}

// DeductionCaps holds the Chapter VI-A section parameters.
type DeductionCaps struct {
	Cap80C              decimal.Decimal
	Cap80CCD1B          decimal.Decimal
	EmployerNPSGovtPct  decimal.Decimal
	EmployerNPSOtherPct decimal.Decimal
	Cap80DBase          decimal.Decimal
	Cap80DSenior        decimal.Decimal
	Cap80DCheckup       decimal.Decimal
	Amount80DDModerate  decimal.Decimal
	Amount80DDSevere    decimal.Decimal
	Cap80DDBBase        decimal.Decimal
	Cap80DDBSenior      decimal.Decimal
	Cap80EEB            decimal.Decimal
	Window80EEB         fy.Window
	QualifyingLimitPct  decimal.Decimal // 80G with-limit buckets
}

// RuleSet is the immutable statutory constant table for one financial year.
// It is built once at process start and never mutated; concurrent
// computations share it read-only.
type RuleSet struct {
	FinancialYear string

	SlabsNew            []SlabTier
	SlabsOldRegular     []SlabTier
	SlabsOldSenior      []SlabTier
	SlabsOldSuperSenior []SlabTier

	StandardDeductionOld decimal.Decimal
	StandardDeductionNew decimal.Decimal

	RebateOld RebateRule
	RebateNew RebateRule

	SurchargeTiers []SurchargeTier
	CessRate       decimal.Decimal

	STCGEquityRate      decimal.Decimal
	LTCGEquityRate      decimal.Decimal
	LTCGOtherRate       decimal.Decimal
	LTCGEquityExemption decimal.Decimal

	HRAMetroPct     decimal.Decimal
	HRANonMetroPct  decimal.Decimal
	HRARentBasicPct decimal.Decimal

	Cap80TTA decimal.Decimal
	Cap80TTB decimal.Decimal

	SelfOccupiedInterestCap decimal.Decimal
	LetOutStandardPct       decimal.Decimal
	PreConstructionYears    decimal.Decimal

	GiftExemptionThreshold decimal.Decimal

	Allowances  AllowanceCaps
	Perquisites PerquisiteRates
	Retirement  RetirementCaps
	Deductions  DeductionCaps
}

// DefaultFinancialYear is the rule-set vintage used when the requested year
// is not registered.
const DefaultFinancialYear = "2025-26"

func rupees(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// unbounded is the open upper bound of the top slab tier.
var unbounded = decimal.NewFromInt(1_000_000_000_000)

// NewRuleSet builds the statutory table for the given financial year label.
// Only one rule vintage is maintained; the label is recorded for audit.
func NewRuleSet(year string) *RuleSet {
	return &RuleSet{
		FinancialYear: year,

		SlabsNew: []SlabTier{
			{rupees(0), rupees(400_000), decimal.Zero},
			{rupees(400_000), rupees(800_000), rate(0.05)},
			{rupees(800_000), rupees(1_200_000), rate(0.10)},
			{rupees(1_200_000), rupees(1_600_000), rate(0.15)},
			{rupees(1_600_000), rupees(2_000_000), rate(0.20)},
			{rupees(2_000_000), rupees(2_400_000), rate(0.25)},
			{rupees(2_400_000), unbounded, rate(0.30)},
		},
		SlabsOldRegular: []SlabTier{
			{rupees(0), rupees(250_000), decimal.Zero},
			{rupees(250_000), rupees(500_000), rate(0.05)},
			{rupees(500_000), rupees(1_000_000), rate(0.20)},
			{rupees(1_000_000), unbounded, rate(0.30)},
		},
		SlabsOldSenior: []SlabTier{
			{rupees(0), rupees(300_000), decimal.Zero},
			{rupees(300_000), rupees(500_000), rate(0.05)},
			{rupees(500_000), rupees(1_000_000), rate(0.20)},
			{rupees(1_000_000), unbounded, rate(0.30)},
		},
		SlabsOldSuperSenior: []SlabTier{
			{rupees(0), rupees(500_000), decimal.Zero},
			{rupees(500_000), rupees(1_000_000), rate(0.20)},
			{rupees(1_000_000), unbounded, rate(0.30)},
		},

		StandardDeductionOld: rupees(50_000),
		StandardDeductionNew: rupees(75_000),

		RebateOld: RebateRule{Cap: rupees(12_500), IncomeCeiling: rupees(500_000)},
		RebateNew: RebateRule{Cap: rupees(60_000), IncomeCeiling: rupees(1_200_000)},

		SurchargeTiers: []SurchargeTier{
			{rupees(50_000_000), rate(0.37)},
			{rupees(20_000_000), rate(0.25)},
			{rupees(10_000_000), rate(0.15)},
			{rupees(5_000_000), rate(0.10)},
		},
		CessRate: rate(0.04),

		STCGEquityRate:      rate(0.20),
		LTCGEquityRate:      rate(0.125),
		LTCGOtherRate:       rate(0.125),
		LTCGEquityExemption: rupees(125_000),

		HRAMetroPct:     rate(0.50),
		HRANonMetroPct:  rate(0.40),
		HRARentBasicPct: rate(0.10),

		Cap80TTA: rupees(10_000),
		Cap80TTB: rupees(50_000),

		SelfOccupiedInterestCap: rupees(200_000),
		LetOutStandardPct:       rate(0.30),
		PreConstructionYears:    rupees(5),

		GiftExemptionThreshold: rupees(50_000),

		Allowances: AllowanceCaps{
			HillsMonthly:             rupees(300),
			BorderMonthly:            rupees(200),
			TransportMonthly:         rupees(1_600),
			DisabledTransportMonthly: rupees(3_200),
			ChildrenEducationMonthly: rupees(100),
			HostelMonthly:            rupees(300),
			UndergroundMinesMonthly:  rupees(800),
			MaxChildren:              2,
			EntertainmentFlat:        rupees(5_000),
			EntertainmentBasicPct:    rate(0.20),
		},
		Perquisites: PerquisiteRates{
			AccommodationLargeCityPct: rate(0.10),
			AccommodationMidCityPct:   rate(0.075),
			AccommodationSmallCityPct: rate(0.05),
			CarSmallMonthly:           rupees(1_800),
			CarLargeMonthly:           rupees(2_400),
			DriverMonthly:             rupees(900),
			LoanExemptPrincipal:       rupees(20_000),
			MealExemptPerMeal:         rupees(50),
			GiftExemptAnnual:          rupees(5_000),
			AssetUsePctPerYear:        rate(0.10),
			AssetDepreciationPct:      rate(0.10),
			EducationExemptMonthly:    rupees(1_000),
		},
		Retirement: RetirementCaps{
			LeaveEncashmentCap:      rupees(2_500_000),
			LeaveEncashmentMonths:   rupees(10),
			GratuityCap:             rupees(2_000_000),
			GratuityDaysNumerator:   rupees(15),
			GratuityDaysDenominator: rupees(26),
			VRSCap:                  rupees(500_000),
			VRSMinServiceYears:      10,
			VRSMinAge:               40,
			RetrenchmentCap:         rupees(500_000),
		},
		Deductions: DeductionCaps{
			Cap80C:              rupees(150_000),
			Cap80CCD1B:          rupees(50_000),
			EmployerNPSGovtPct:  rate(0.14),
			EmployerNPSOtherPct: rate(0.10),
			Cap80DBase:          rupees(25_000),
			Cap80DSenior:        rupees(50_000),
			Cap80DCheckup:       rupees(5_000),
			Amount80DDModerate:  rupees(75_000),
			Amount80DDSevere:    rupees(125_000),
			Cap80DDBBase:        rupees(40_000),
			Cap80DDBSenior:      rupees(100_000),
			Cap80EEB:            rupees(150_000),
			Window80EEB:         fy.NewWindow(2019, time.April, 1, 2025, time.March, 31),
			QualifyingLimitPct:  rate(0.10),
		},
	}
}

// RuleRegistry selects the rule set for a financial year. Entries are
// registered once at construction and treated as immutable thereafter.
type RuleRegistry struct {
	sets map[string]*RuleSet
}

// NewRuleRegistry builds a registry with the default vintage registered.
func NewRuleRegistry() *RuleRegistry {
	r := &RuleRegistry{sets: make(map[string]*RuleSet)}
	r.Register(NewRuleSet(DefaultFinancialYear))
	return r
}

// Register adds a rule set keyed by its financial year.
func (r *RuleRegistry) Register(rs *RuleSet) {
	r.sets[rs.FinancialYear] = rs
}

// ForYear returns the rule set for the year, or the default vintage and
// false when the year is unknown.
func (r *RuleRegistry) ForYear(year string) (*RuleSet, bool) {
	if rs, ok := r.sets[year]; ok {
		return rs, true
	}
	return r.sets[DefaultFinancialYear], false
}
