package calculation

import (
	"github.com/taxgo/india-tax-engine/internal/domain"
)

// SpecialRateCalculator applies the flat rates to the capital-gains buckets
// taxed outside the slab system. It is stateless beyond the rule vintage.
type SpecialRateCalculator struct {
	Rules *domain.RuleSet
}

// NewSpecialRateCalculator creates a calculator bound to one rule vintage.
func NewSpecialRateCalculator(rules *domain.RuleSet) *SpecialRateCalculator {
	return &SpecialRateCalculator{Rules: rules}
}

// Calculate returns the itemized flat-rate tax. STT-paid equity STCG is a
// flat charge on the whole gain; STT-paid equity LTCG is charged only above
// the statutory exemption; other LTCG gets no exemption.
func (sc *SpecialRateCalculator) Calculate(buckets domain.SpecialRateBuckets) domain.CapitalGainsTax {
	stcgEquity := buckets.STCGEquitySTT.Mul(sc.Rules.STCGEquityRate)
	ltcgEquity := clampZero(buckets.LTCGEquitySTT.Sub(sc.Rules.LTCGEquityExemption)).Mul(sc.Rules.LTCGEquityRate)
	ltcgOther := buckets.LTCGOther.Mul(sc.Rules.LTCGOtherRate)

	return domain.CapitalGainsTax{
		STCGEquitySTT: stcgEquity,
		LTCGEquitySTT: ltcgEquity,
		LTCGOther:     ltcgOther,
		Total:         stcgEquity.Add(ltcgEquity).Add(ltcgOther),
	}
}
