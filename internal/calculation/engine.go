package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// TaxComputationEngine composes the aggregator, the deduction engine and
// the tax calculators into one deterministic pipeline. It holds no request
// state; concurrent Compute calls are fully independent.
type TaxComputationEngine struct {
	Registry *domain.RuleRegistry
	Gate     *RegimeGate
	Logger   Logger
}

// NewTaxComputationEngine creates an engine with the default rule registry
// and a no-op logger.
func NewTaxComputationEngine() *TaxComputationEngine {
	return &TaxComputationEngine{
		Registry: domain.NewRuleRegistry(),
		Gate:     NewRegimeGate(),
		Logger:   NopLogger{},
	}
}

// NewTaxComputationEngineWithRegistry creates an engine over a caller-built
// registry, for callers that maintain more than one rule vintage.
func NewTaxComputationEngineWithRegistry(registry *domain.RuleRegistry) *TaxComputationEngine {
	return &TaxComputationEngine{
		Registry: registry,
		Gate:     NewRegimeGate(),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (te *TaxComputationEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// Compute runs the full pipeline: aggregate income, evaluate deductions,
// slab and special-rate tax, then rebate, surcharge and cess in that fixed
// order. Structural input problems abort with an error naming the field;
// everything downstream degrades per rule, never aborts.
func (te *TaxComputationEngine) Compute(profile domain.TaxpayerProfile, income domain.IncomeComponents, deductions domain.DeductionDeclarations) (*domain.TaxComputationResult, error) {
	if err := ValidateRequest(profile, income, deductions); err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	rules, known := te.Registry.ForYear(profile.FinancialYear)
	if !known && profile.FinancialYear != "" {
		te.Logger.Warnf("no rule set registered for financial year %s; using %s", profile.FinancialYear, rules.FinancialYear)
	}

	aggregator := NewIncomeAggregator(rules, te.Gate, te.Logger)
	deductionEngine := NewDeductionEngine(rules, te.Gate, te.Logger)
	slabCalc := NewSlabTaxCalculator(rules)
	specialCalc := NewSpecialRateCalculator(rules)
	levyCalc := NewRebateSurchargeCessCalculator(rules, slabCalc, te.Gate)

	summary, audit := aggregator.Aggregate(profile, income)
	breakdown := deductionEngine.Evaluate(profile, deductions, summary)

	grossIncome := clampZero(summary.SlabTotal)
	totalDeductions := breakdown.Total.Add(summary.StandardDeduction)
	netTaxableIncome := clampZero(grossIncome.Sub(totalDeductions))

	slabTax := slabCalc.Calculate(profile.Regime, profile.Band(), netTaxableIncome)
	cgTax := specialCalc.Calculate(summary.SpecialBuckets)

	baseTax := slabTax.Add(cgTax.Total)
	levies := levyCalc.Apply(profile, netTaxableIncome, baseTax, cgTax.Total)

	result := &domain.TaxComputationResult{
		FinancialYear:         rules.FinancialYear,
		Regime:                profile.Regime,
		GrossIncome:           grossIncome,
		TotalDeductions:       totalDeductions,
		NetTaxableIncome:      netTaxableIncome,
		SlabTax:               slabTax,
		CapitalGainsTax:       cgTax,
		Rebate87A:             levies.Rebate87A,
		SurchargeBeforeRelief: levies.SurchargeBeforeRelief,
		Surcharge:             levies.Surcharge,
		Cess:                  levies.Cess,
		FinalTax:              levies.FinalTax,
		Income:                summary,
		Deductions:            breakdown,
		Breakdown:             te.assembleBreakdown(summary, breakdown, slabTax, cgTax, levies, audit),
	}
	return result, nil
}

// assembleBreakdown flattens every rule contribution into the audit map.
func (te *TaxComputationEngine) assembleBreakdown(summary domain.IncomeSummary, deductions domain.DeductionBreakdown, slabTax decimal.Decimal, cgTax domain.CapitalGainsTax, levies LevyResult, audit map[string]decimal.Decimal) map[string]decimal.Decimal {
	b := make(map[string]decimal.Decimal, len(audit)+24)
	for k, v := range audit {
		b[k] = v
	}

	b["income.salary"] = summary.SalaryIncome
	b["income.other_sources"] = summary.OtherSourcesIncome
	b["income.house_property"] = summary.HousePropertyIncome
	b["income.stcg_at_slab"] = summary.STCGSlabIncome
	b["income.retirement"] = summary.RetirementIncome
	b["income.standard_deduction"] = summary.StandardDeduction

	b["deduction.80c"] = deductions.Section80C
	b["deduction.80ccd_1b"] = deductions.Section80CCD1B
	b["deduction.80ccd_2"] = deductions.Section80CCD2
	b["deduction.80d_self"] = deductions.Section80DSelf
	b["deduction.80d_parent"] = deductions.Section80DParent
	b["deduction.80dd"] = deductions.Section80DD
	b["deduction.80ddb"] = deductions.Section80DDB
	b["deduction.80e"] = deductions.Section80E
	b["deduction.80eeb"] = deductions.Section80EEB
	b["deduction.80g"] = deductions.Section80G
	b["deduction.80ggc"] = deductions.Section80GGC
	b["deduction.80u"] = deductions.Section80U

	b["tax.slab"] = slabTax
	b["tax.stcg_equity_stt"] = cgTax.STCGEquitySTT
	b["tax.ltcg_equity_stt"] = cgTax.LTCGEquitySTT
	b["tax.ltcg_other"] = cgTax.LTCGOther
	b["tax.rebate_87a"] = levies.Rebate87A
	b["tax.surcharge"] = levies.Surcharge
	b["tax.cess"] = levies.Cess
	b["tax.final"] = levies.FinalTax
	return b
}

// RegimeComparison reports the same request computed under both regimes.
type RegimeComparison struct {
	Old           *domain.TaxComputationResult `json:"old"`
	New           *domain.TaxComputationResult `json:"new"`
	Recommended   domain.Regime                `json:"recommended"`
	AnnualSavings decimal.Decimal              `json:"annual_savings"`
}

// CompareRegimes computes the liability under both regimes and recommends
// the cheaper one. The declared regime on the profile is ignored.
func (te *TaxComputationEngine) CompareRegimes(profile domain.TaxpayerProfile, income domain.IncomeComponents, deductions domain.DeductionDeclarations) (*RegimeComparison, error) {
	oldProfile := profile
	oldProfile.Regime = domain.RegimeOld
	oldResult, err := te.Compute(oldProfile, income, deductions)
	if err != nil {
		return nil, err
	}

	newProfile := profile
	newProfile.Regime = domain.RegimeNew
	newResult, err := te.Compute(newProfile, income, deductions)
	if err != nil {
		return nil, err
	}

	comparison := &RegimeComparison{Old: oldResult, New: newResult}
	if newResult.FinalTax.LessThanOrEqual(oldResult.FinalTax) {
		comparison.Recommended = domain.RegimeNew
		comparison.AnnualSavings = oldResult.FinalTax.Sub(newResult.FinalTax)
	} else {
		comparison.Recommended = domain.RegimeOld
		comparison.AnnualSavings = newResult.FinalTax.Sub(oldResult.FinalTax)
	}
	return comparison, nil
}
