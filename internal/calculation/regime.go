package calculation

import (
	"github.com/taxgo/india-tax-engine/internal/domain"
)

// RuleID names a regime-gated rule. Every component consults the RegimeGate
// with one of these instead of branching on the regime itself.
type RuleID string

const (
	RuleHRAExemption        RuleID = "hra_exemption"
	RuleAllowanceExemptions RuleID = "allowance_exemptions"
	RuleLTAExemption        RuleID = "lta_exemption"
	RuleEntertainment       RuleID = "entertainment_allowance"
	RuleStandardDeduction   RuleID = "standard_deduction"
	RuleChapterVIA          RuleID = "chapter_via_deductions"
	Rule80CCD2              RuleID = "section_80ccd_2"
	Rule80TTA               RuleID = "section_80tta"
	Rule80TTB               RuleID = "section_80ttb"
	RuleRetirementExemption RuleID = "retirement_exemptions"
	RuleRebate87A           RuleID = "rebate_87a"
)

// RegimeGate is the single decision point for whether a rule is evaluated
// under a given regime. Centralizing the gate keeps the regime branches out
// of the individual calculators.
type RegimeGate struct {
	oldOnly map[RuleID]bool
}

// NewRegimeGate builds the gate with the statutory old-regime-only set.
func NewRegimeGate() *RegimeGate {
	return &RegimeGate{
		oldOnly: map[RuleID]bool{
			RuleHRAExemption:        true,
			RuleAllowanceExemptions: true,
			RuleLTAExemption:        true,
			RuleEntertainment:       true,
			RuleChapterVIA:          true,
			Rule80TTA:               true,
			Rule80TTB:               true,
		},
	}
}

// IsApplicable reports whether the rule is evaluated at all under the
// regime. Rules absent from the old-only set apply under both regimes.
func (g *RegimeGate) IsApplicable(rule RuleID, regime domain.Regime) bool {
	if g.oldOnly[rule] {
		return regime == domain.RegimeOld
	}
	return true
}
