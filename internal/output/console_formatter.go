package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/internal/calculation"
	"github.com/taxgo/india-tax-engine/internal/domain"
)

// ConsoleFormatter renders a concise human-readable computation statement.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INCOME TAX COMPUTATION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Financial Year: %s    Regime: %s\n", result.FinancialYear, result.Regime)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Income")
	c.line(&buf, "Salary", result.Income.SalaryIncome)
	c.line(&buf, "Other Sources", result.Income.OtherSourcesIncome)
	c.line(&buf, "House Property", result.Income.HousePropertyIncome)
	c.line(&buf, "STCG at slab rates", result.Income.STCGSlabIncome)
	c.line(&buf, "Retirement Benefits", result.Income.RetirementIncome)
	c.line(&buf, "Gross Total Income", result.GrossIncome)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Deductions")
	c.line(&buf, "Standard Deduction", result.Income.StandardDeduction)
	c.nonZeroLine(&buf, "80C", result.Deductions.Section80C)
	c.nonZeroLine(&buf, "80CCD(1B)", result.Deductions.Section80CCD1B)
	c.nonZeroLine(&buf, "80CCD(2)", result.Deductions.Section80CCD2)
	c.nonZeroLine(&buf, "80D (self/family)", result.Deductions.Section80DSelf)
	c.nonZeroLine(&buf, "80D (parents)", result.Deductions.Section80DParent)
	c.nonZeroLine(&buf, "80DD", result.Deductions.Section80DD)
	c.nonZeroLine(&buf, "80DDB", result.Deductions.Section80DDB)
	c.nonZeroLine(&buf, "80E", result.Deductions.Section80E)
	c.nonZeroLine(&buf, "80EEB", result.Deductions.Section80EEB)
	c.nonZeroLine(&buf, "80G", result.Deductions.Section80G)
	c.nonZeroLine(&buf, "80GGC", result.Deductions.Section80GGC)
	c.nonZeroLine(&buf, "80U", result.Deductions.Section80U)
	c.line(&buf, "Total Deductions", result.TotalDeductions)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Tax")
	c.line(&buf, "Net Taxable Income", result.NetTaxableIncome)
	c.line(&buf, "Slab Tax", result.SlabTax)
	c.nonZeroLine(&buf, "STCG (equity, STT)", result.CapitalGainsTax.STCGEquitySTT)
	c.nonZeroLine(&buf, "LTCG (equity, STT)", result.CapitalGainsTax.LTCGEquitySTT)
	c.nonZeroLine(&buf, "LTCG (other)", result.CapitalGainsTax.LTCGOther)
	c.nonZeroLine(&buf, "Rebate u/s 87A", result.Rebate87A.Neg())
	c.nonZeroLine(&buf, "Surcharge", result.Surcharge)
	c.line(&buf, "Health & Education Cess", result.Cess)
	fmt.Fprintln(&buf)
	c.line(&buf, "TOTAL TAX PAYABLE", result.FinalTax)
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatComparison(cmp *calculation.RegimeComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "REGIME COMPARISON")
	fmt.Fprintln(&buf, "================================")
	c.line(&buf, "Old Regime Tax", cmp.Old.FinalTax)
	c.line(&buf, "New Regime Tax", cmp.New.FinalTax)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s regime (saves %s)\n",
		cmp.Recommended, FormatCurrency(cmp.AnnualSavings))
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) line(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "  %-28s %18s\n", label, FormatCurrency(amount))
}

func (c ConsoleFormatter) nonZeroLine(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	c.line(buf, label, amount)
}
