package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// DeductionEngine evaluates the Chapter VI-A sections against the
// taxpayer's declarations. Under the new regime every section short of
// 80CCD(2) collapses to zero before any formula runs.
type DeductionEngine struct {
	Rules  *domain.RuleSet
	Gate   *RegimeGate
	Logger Logger
}

// NewDeductionEngine creates an engine bound to one rule vintage.
func NewDeductionEngine(rules *domain.RuleSet, gate *RegimeGate, logger Logger) *DeductionEngine {
	return &DeductionEngine{Rules: rules, Gate: gate, Logger: logger}
}

// Evaluate runs the full section table. 80G depends on the total of every
// other section, so the evaluation is two-pass: everything else first, then
// 80G against the adjusted gross income that remains.
func (de *DeductionEngine) Evaluate(profile domain.TaxpayerProfile, decl domain.DeductionDeclarations, summary domain.IncomeSummary) domain.DeductionBreakdown {
	caps := de.Rules.Deductions

	var b domain.DeductionBreakdown

	// 80CCD(2) is the one section that survives both regimes.
	b.Section80CCD2 = de.employerNPS(profile, decl.Section80CCD, summary)

	if !de.Gate.IsApplicable(RuleChapterVIA, profile.Regime) {
		b.Total = b.Sum()
		return b
	}

	b.Section80C = decimal.Min(decl.Section80C.Total(), caps.Cap80C)
	b.Section80CCD1B = decimal.Min(decl.Section80CCD.AdditionalNPS, caps.Cap80CCD1B)
	b.Section80DSelf, b.Section80DParent = de.healthInsurance(profile, decl.Section80D)
	b.Section80DD = de.disabledDependent(decl.Section80DD)
	b.Section80DDB = de.medicalTreatment(profile, decl.Section80DDB)
	b.Section80E = de.educationLoan(decl.Section80E)
	b.Section80EEB = de.electricVehicleLoan(decl.Section80EEB)
	b.Section80GGC = de.politicalContribution(decl.Section80GGC)
	b.Section80U = de.selfDisability(decl.Section80U)

	// Second pass: 80G's qualifying limit is computed on income reduced by
	// every other deduction.
	b.Section80G = de.donations(decl.Section80G, summary, b.Sum())

	b.Total = b.Sum()
	return b
}

// employerNPS caps the 80CCD(2) employer contribution at a percentage of
// basic+DA, higher for government service.
func (de *DeductionEngine) employerNPS(profile domain.TaxpayerProfile, d domain.Section80CCDDeclaration, summary domain.IncomeSummary) decimal.Decimal {
	pct := de.Rules.Deductions.EmployerNPSOtherPct
	if profile.IsGovernmentEmployee {
		pct = de.Rules.Deductions.EmployerNPSGovtPct
	}
	return decimal.Min(d.EmployerNPSContribution, summary.BasicPlusDA.Mul(pct))
}

// healthInsurance evaluates both 80D limbs; the self and parent caps are
// independent and each flips at age 60.
func (de *DeductionEngine) healthInsurance(profile domain.TaxpayerProfile, d domain.Section80DDeclaration) (self, parent decimal.Decimal) {
	caps := de.Rules.Deductions

	selfCap := caps.Cap80DBase
	if profile.Age >= 60 {
		selfCap = caps.Cap80DSenior
	}
	checkup := decimal.Min(d.PreventiveCheckup, caps.Cap80DCheckup)
	self = decimal.Min(d.SelfPremium.Add(checkup), selfCap)

	parentCap := caps.Cap80DBase
	if d.ParentAge >= 60 {
		parentCap = caps.Cap80DSenior
	}
	parent = decimal.Min(d.ParentPremium, parentCap)
	return self, parent
}

// disabledDependent evaluates 80DD: a fixed amount per disability tier,
// regardless of the declared spend. The taxpayer themselves is not a
// permitted dependent.
func (de *DeductionEngine) disabledDependent(d domain.Section80DDDeclaration) decimal.Decimal {
	if d.Tier == domain.DisabilityNone {
		return decimal.Zero
	}
	if d.Relation == domain.RelationSelf {
		de.Logger.Warnf("section 80DD: relation %q is not a permitted dependent; section skipped", d.Relation)
		return decimal.Zero
	}
	return de.fixedDisabilityAmount(d.Tier)
}

// selfDisability evaluates 80U: the same fixed tiers as 80DD, self only.
func (de *DeductionEngine) selfDisability(d domain.Section80UDeclaration) decimal.Decimal {
	if d.Tier == domain.DisabilityNone {
		return decimal.Zero
	}
	return de.fixedDisabilityAmount(d.Tier)
}

func (de *DeductionEngine) fixedDisabilityAmount(tier domain.DisabilityTier) decimal.Decimal {
	if tier == domain.DisabilitySevere {
		return de.Rules.Deductions.Amount80DDSevere
	}
	return de.Rules.Deductions.Amount80DDModerate
}

// medicalTreatment evaluates 80DDB: expenses capped by the age of whoever
// was treated — the taxpayer for a self declaration, the dependent
// otherwise.
func (de *DeductionEngine) medicalTreatment(profile domain.TaxpayerProfile, d domain.Section80DDBDeclaration) decimal.Decimal {
	if d.Expenses.IsZero() {
		return decimal.Zero
	}
	relevantAge := d.DependentAge
	if d.Relation == domain.RelationSelf {
		relevantAge = profile.Age
	}
	cap := de.Rules.Deductions.Cap80DDBBase
	if relevantAge >= 60 {
		cap = de.Rules.Deductions.Cap80DDBSenior
	}
	return decimal.Min(d.Expenses, cap)
}

// educationLoan evaluates 80E: uncapped interest, but only for a loan taken
// for the taxpayer, their spouse or their child.
func (de *DeductionEngine) educationLoan(d domain.Section80EDeclaration) decimal.Decimal {
	if d.LoanInterest.IsZero() {
		return decimal.Zero
	}
	switch d.Relation {
	case domain.RelationSelf, domain.RelationSpouse, domain.RelationChild:
		return d.LoanInterest
	default:
		de.Logger.Warnf("section 80E: relation %q is outside the permitted set; section skipped", d.Relation)
		return decimal.Zero
	}
}

// electricVehicleLoan evaluates 80EEB: capped interest, available only when
// the vehicle was purchased inside the statutory window.
func (de *DeductionEngine) electricVehicleLoan(d domain.Section80EEBDeclaration) decimal.Decimal {
	if d.LoanInterest.IsZero() {
		return decimal.Zero
	}
	if !de.Rules.Deductions.Window80EEB.Contains(d.PurchaseDate) {
		de.Logger.Warnf("section 80EEB: purchase date %s is outside the eligibility window; section skipped",
			d.PurchaseDate.Format("2006-01-02"))
		return decimal.Zero
	}
	return decimal.Min(d.LoanInterest, de.Rules.Deductions.Cap80EEB)
}

// politicalContribution evaluates 80GGC: the full declared amount. Cash
// payment is flagged for audit but never blocks the deduction.
func (de *DeductionEngine) politicalContribution(d domain.Section80GGCDeclaration) decimal.Decimal {
	if d.PaidInCash && d.Amount.IsPositive() {
		de.Logger.Warnf("section 80GGC: contribution of %s appears to be paid in cash; allowed but flagged", d.Amount.String())
	}
	return d.Amount
}

// donations evaluates the four 80G buckets. The with-limit buckets share a
// qualifying limit of 10%% of adjusted gross income: the slab-rate salary,
// other-sources and slab-rate STCG heads, less every other deduction.
func (de *DeductionEngine) donations(donations []domain.Donation, summary domain.IncomeSummary, otherDeductions decimal.Decimal) decimal.Decimal {
	if len(donations) == 0 {
		return decimal.Zero
	}

	salaryNet := clampZero(summary.SalaryIncome.Sub(summary.StandardDeduction))
	adjustedGross := clampZero(salaryNet.
		Add(summary.OtherSourcesIncome).
		Add(summary.STCGSlabIncome).
		Sub(otherDeductions))
	qualifyingLimit := adjustedGross.Mul(de.Rules.Deductions.QualifyingLimitPct)

	total := decimal.Zero
	for _, don := range donations {
		switch don.Category {
		case domain.Donation100NoLimit:
			total = total.Add(don.Amount)
		case domain.Donation50NoLimit:
			total = total.Add(don.Amount.Mul(oneHalf))
		case domain.Donation100WithLimit:
			total = total.Add(decimal.Min(don.Amount, qualifyingLimit))
		case domain.Donation50WithLimit:
			total = total.Add(decimal.Min(don.Amount.Mul(oneHalf), qualifyingLimit))
		default:
			de.Logger.Warnf("section 80G: unrecognized donation category %q; donation skipped", don.Category)
		}
	}
	return total
}
