package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

func newTestDeductionEngine() *DeductionEngine {
	rules := domain.NewRuleSet(domain.DefaultFinancialYear)
	return NewDeductionEngine(rules, NewRegimeGate(), NopLogger{})
}

func oldRegimeProfile(age int) domain.TaxpayerProfile {
	return domain.TaxpayerProfile{Age: age, Regime: domain.RegimeOld}
}

func TestSection80CCap(t *testing.T) {
	engine := newTestDeductionEngine()

	decl := domain.DeductionDeclarations{
		Section80C: domain.Section80CDeclaration{
			PPF:  decimal.NewFromInt(150_000),
			ELSS: decimal.NewFromInt(100_000),
		},
		Section80CCD: domain.Section80CCDDeclaration{
			AdditionalNPS: decimal.NewFromInt(80_000),
		},
	}
	b := engine.Evaluate(oldRegimeProfile(35), decl, domain.IncomeSummary{})

	assert.True(t, b.Section80C.Equal(decimal.NewFromInt(150_000)),
		"80C must cap the combined investments at 1.5 lakh, got %s", b.Section80C)
	assert.True(t, b.Section80CCD1B.Equal(decimal.NewFromInt(50_000)),
		"80CCD(1B) must cap additional NPS at 50,000, got %s", b.Section80CCD1B)
}

func TestSection80CCD2EmployerNPS(t *testing.T) {
	engine := newTestDeductionEngine()
	summary := domain.IncomeSummary{BasicPlusDA: decimal.NewFromInt(1_000_000)}
	decl := domain.DeductionDeclarations{
		Section80CCD: domain.Section80CCDDeclaration{
			EmployerNPSContribution: decimal.NewFromInt(120_000),
		},
	}

	tests := []struct {
		name       string
		profile    domain.TaxpayerProfile
		expected   decimal.Decimal
		description string
	}{
		{
			name:       "Private employer 10 percent cap",
			profile:    domain.TaxpayerProfile{Age: 35, Regime: domain.RegimeOld},
			expected:   decimal.NewFromInt(100_000),
			description: "Capped at 10% of basic+DA",
		},
		{
			name:       "Government employer 14 percent cap",
			profile:    domain.TaxpayerProfile{Age: 35, Regime: domain.RegimeOld, IsGovernmentEmployee: true},
			expected:   decimal.NewFromInt(120_000),
			description: "14% cap of 140,000 leaves the contribution whole",
		},
		{
			name:       "Survives the new regime",
			profile:    domain.TaxpayerProfile{Age: 35, Regime: domain.RegimeNew},
			expected:   decimal.NewFromInt(100_000),
			description: "80CCD(2) is the only section the new regime keeps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.Evaluate(tt.profile, decl, summary)
			assert.True(t, b.Section80CCD2.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), b.Section80CCD2.StringFixed(2))
		})
	}
}

func TestSection80DAgeBoundary(t *testing.T) {
	engine := newTestDeductionEngine()

	tests := []struct {
		name           string
		age            int
		decl           domain.Section80DDeclaration
		expectedSelf   decimal.Decimal
		expectedParent decimal.Decimal
		description    string
	}{
		{
			name: "Age 59 gets the base self cap",
			age:  59,
			decl: domain.Section80DDeclaration{
				SelfPremium: decimal.NewFromInt(60_000),
			},
			expectedSelf:   decimal.NewFromInt(25_000),
			expectedParent: decimal.Zero,
			description:    "Self cap stays at 25,000 up to age 59",
		},
		{
			name: "Age 60 flips to the senior self cap",
			age:  60,
			decl: domain.Section80DDeclaration{
				SelfPremium: decimal.NewFromInt(60_000),
			},
			expectedSelf:   decimal.NewFromInt(50_000),
			expectedParent: decimal.Zero,
			description:    "Self cap doubles exactly at age 60",
		},
		{
			name: "Preventive checkup shares the self cap",
			age:  40,
			decl: domain.Section80DDeclaration{
				SelfPremium:       decimal.NewFromInt(18_000),
				PreventiveCheckup: decimal.NewFromInt(8_000),
			},
			expectedSelf:   decimal.NewFromInt(23_000), // 18000 + min(8000, 5000)
			expectedParent: decimal.Zero,
			description:    "Checkup is capped at 5,000 inside the self limb",
		},
		{
			name: "Senior parent gets the higher parent cap",
			age:  40,
			decl: domain.Section80DDeclaration{
				ParentPremium: decimal.NewFromInt(60_000),
				ParentAge:     60,
			},
			expectedSelf:   decimal.Zero,
			expectedParent: decimal.NewFromInt(50_000),
			description:    "Parent cap is driven by the parent's age, not the taxpayer's",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.Evaluate(oldRegimeProfile(tt.age),
				domain.DeductionDeclarations{Section80D: tt.decl}, domain.IncomeSummary{})
			assert.True(t, b.Section80DSelf.Equal(tt.expectedSelf),
				"%s: self expected %s, got %s", tt.description,
				tt.expectedSelf.StringFixed(2), b.Section80DSelf.StringFixed(2))
			assert.True(t, b.Section80DParent.Equal(tt.expectedParent),
				"%s: parent expected %s, got %s", tt.description,
				tt.expectedParent.StringFixed(2), b.Section80DParent.StringFixed(2))
		})
	}
}

func TestDisabilityDeductionsAreFixedAmounts(t *testing.T) {
	engine := newTestDeductionEngine()

	tests := []struct {
		name        string
		decl        domain.DeductionDeclarations
		expected80DD decimal.Decimal
		expected80U  decimal.Decimal
		description string
	}{
		{
			name: "80DD moderate ignores the declared spend",
			decl: domain.DeductionDeclarations{
				Section80DD: domain.Section80DDDeclaration{
					Relation: domain.RelationChild,
					Tier:     domain.DisabilityModerate,
					Amount:   decimal.NewFromInt(30_000),
				},
			},
			expected80DD: decimal.NewFromInt(75_000),
			expected80U:  decimal.Zero,
			description:  "The statutory benefit is fixed regardless of spend",
		},
		{
			name: "80DD severe tier",
			decl: domain.DeductionDeclarations{
				Section80DD: domain.Section80DDDeclaration{
					Relation: domain.RelationParent,
					Tier:     domain.DisabilitySevere,
					Amount:   decimal.NewFromInt(500_000),
				},
			},
			expected80DD: decimal.NewFromInt(125_000),
			expected80U:  decimal.Zero,
			description:  "Severe disability lifts the fixed amount",
		},
		{
			name: "80DD self relation is skipped",
			decl: domain.DeductionDeclarations{
				Section80DD: domain.Section80DDDeclaration{
					Relation: domain.RelationSelf,
					Tier:     domain.DisabilityModerate,
				},
			},
			expected80DD: decimal.Zero,
			expected80U:  decimal.Zero,
			description:  "The taxpayer is not their own dependent under 80DD",
		},
		{
			name: "80U severe for the taxpayer",
			decl: domain.DeductionDeclarations{
				Section80U: domain.Section80UDeclaration{Tier: domain.DisabilitySevere},
			},
			expected80DD: decimal.Zero,
			expected80U:  decimal.NewFromInt(125_000),
			description:  "80U covers the taxpayer's own disability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.Evaluate(oldRegimeProfile(45), tt.decl, domain.IncomeSummary{})
			assert.True(t, b.Section80DD.Equal(tt.expected80DD),
				"%s: 80DD expected %s, got %s", tt.description,
				tt.expected80DD.StringFixed(2), b.Section80DD.StringFixed(2))
			assert.True(t, b.Section80U.Equal(tt.expected80U),
				"%s: 80U expected %s, got %s", tt.description,
				tt.expected80U.StringFixed(2), b.Section80U.StringFixed(2))
		})
	}
}

func TestSection80DDBAgeOfTreatedPerson(t *testing.T) {
	engine := newTestDeductionEngine()

	tests := []struct {
		name        string
		profileAge  int
		decl        domain.Section80DDBDeclaration
		expected    decimal.Decimal
		description string
	}{
		{
			name:       "Self treatment uses the taxpayer's age",
			profileAge: 65,
			decl: domain.Section80DDBDeclaration{
				Relation: domain.RelationSelf,
				Expenses: decimal.NewFromInt(120_000),
			},
			expected:    decimal.NewFromInt(100_000),
			description: "Senior taxpayer gets the 1 lakh cap",
		},
		{
			name:       "Dependent treatment uses the dependent's age",
			profileAge: 65,
			decl: domain.Section80DDBDeclaration{
				Relation:     domain.RelationChild,
				DependentAge: 30,
				Expenses:     decimal.NewFromInt(120_000),
			},
			expected:    decimal.NewFromInt(40_000),
			description: "Young dependent keeps the base cap despite a senior taxpayer",
		},
		{
			name:       "Expenses below the cap pass through",
			profileAge: 40,
			decl: domain.Section80DDBDeclaration{
				Relation: domain.RelationSelf,
				Expenses: decimal.NewFromInt(25_000),
			},
			expected:    decimal.NewFromInt(25_000),
			description: "The cap only binds above it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.Evaluate(oldRegimeProfile(tt.profileAge),
				domain.DeductionDeclarations{Section80DDB: tt.decl}, domain.IncomeSummary{})
			assert.True(t, b.Section80DDB.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), b.Section80DDB.StringFixed(2))
		})
	}
}

func TestSection80ERelationGate(t *testing.T) {
	engine := newTestDeductionEngine()

	tests := []struct {
		name        string
		relation    domain.Relation
		expected    decimal.Decimal
		description string
	}{
		{"Self loan", domain.RelationSelf, decimal.NewFromInt(90_000), "Uncapped for the taxpayer's own education"},
		{"Child loan", domain.RelationChild, decimal.NewFromInt(90_000), "Children are in the permitted set"},
		{"Sibling loan", domain.RelationSibling, decimal.Zero, "Siblings are outside the permitted set"},
		{"Parent loan", domain.RelationParent, decimal.Zero, "Parents are outside the permitted set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := domain.DeductionDeclarations{
				Section80E: domain.Section80EDeclaration{
					Relation:     tt.relation,
					LoanInterest: decimal.NewFromInt(90_000),
				},
			}
			b := engine.Evaluate(oldRegimeProfile(35), decl, domain.IncomeSummary{})
			assert.True(t, b.Section80E.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), b.Section80E.StringFixed(2))
		})
	}
}

func TestSection80EEBPurchaseWindow(t *testing.T) {
	engine := newTestDeductionEngine()

	tests := []struct {
		name        string
		purchase    time.Time
		expected    decimal.Decimal
		description string
	}{
		{
			name:        "Last day of the window",
			purchase:    time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			expected:    decimal.NewFromInt(150_000),
			description: "31 March 2025 is inside the window; interest capped at 1.5 lakh",
		},
		{
			name:        "One day past the window",
			purchase:    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected:    decimal.Zero,
			description: "1 April 2025 falls outside; the section lapses",
		},
		{
			name:        "First day of the window",
			purchase:    time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected:    decimal.NewFromInt(150_000),
			description: "1 April 2019 opens the window",
		},
		{
			name:        "Before the window opens",
			purchase:    time.Date(2019, time.March, 31, 0, 0, 0, 0, time.UTC),
			expected:    decimal.Zero,
			description: "Purchases before April 2019 never qualified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := domain.DeductionDeclarations{
				Section80EEB: domain.Section80EEBDeclaration{
					LoanInterest: decimal.NewFromInt(160_000),
					PurchaseDate: tt.purchase,
				},
			}
			b := engine.Evaluate(oldRegimeProfile(35), decl, domain.IncomeSummary{})
			assert.True(t, b.Section80EEB.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), b.Section80EEB.StringFixed(2))
		})
	}
}

func TestSection80GQualifyingLimit(t *testing.T) {
	engine := newTestDeductionEngine()

	// Adjusted gross: 1,050,000 salary less the 50,000 standard deduction.
	summary := domain.IncomeSummary{
		SalaryIncome:      decimal.NewFromInt(1_050_000),
		StandardDeduction: decimal.NewFromInt(50_000),
	}

	tests := []struct {
		name        string
		donations   []domain.Donation
		expected    decimal.Decimal
		description string
	}{
		{
			name: "100 percent without limit",
			donations: []domain.Donation{
				{Category: domain.Donation100NoLimit, Amount: decimal.NewFromInt(10_000)},
			},
			expected:    decimal.NewFromInt(10_000),
			description: "Full amount, no qualifying limit",
		},
		{
			name: "50 percent without limit",
			donations: []domain.Donation{
				{Category: domain.Donation50NoLimit, Amount: decimal.NewFromInt(100_000)},
			},
			expected:    decimal.NewFromInt(50_000),
			description: "Half the amount, no qualifying limit",
		},
		{
			name: "100 percent with limit binds at 10 percent of adjusted gross",
			donations: []domain.Donation{
				{Category: domain.Donation100WithLimit, Amount: decimal.NewFromInt(150_000)},
			},
			expected:    decimal.NewFromInt(100_000), // 10% of 1,000,000
			description: "The qualifying limit caps the eligible amount",
		},
		{
			name: "50 percent with limit halves before capping",
			donations: []domain.Donation{
				{Category: domain.Donation50WithLimit, Amount: decimal.NewFromInt(300_000)},
			},
			expected:    decimal.NewFromInt(100_000), // min(150000, 100000)
			description: "Half of 3 lakh still exceeds the qualifying limit",
		},
		{
			name: "Mixed buckets sum independently",
			donations: []domain.Donation{
				{Category: domain.Donation100NoLimit, Amount: decimal.NewFromInt(10_000)},
				{Category: domain.Donation50NoLimit, Amount: decimal.NewFromInt(40_000)},
				{Category: domain.Donation100WithLimit, Amount: decimal.NewFromInt(60_000)},
			},
			expected:    decimal.NewFromInt(90_000), // 10000 + 20000 + 60000
			description: "Each donation is evaluated in its own bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := domain.DeductionDeclarations{Section80G: tt.donations}
			b := engine.Evaluate(oldRegimeProfile(35), decl, summary)
			assert.True(t, b.Section80G.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), b.Section80G.StringFixed(2))
		})
	}
}

func TestSection80GGCAllowedDespiteCash(t *testing.T) {
	engine := newTestDeductionEngine()
	decl := domain.DeductionDeclarations{
		Section80GGC: domain.Section80GGCDeclaration{
			Amount:     decimal.NewFromInt(50_000),
			PaidInCash: true,
		},
	}
	b := engine.Evaluate(oldRegimeProfile(35), decl, domain.IncomeSummary{})
	assert.True(t, b.Section80GGC.Equal(decimal.NewFromInt(50_000)),
		"cash payment is flagged but never blocks the deduction, got %s", b.Section80GGC)
}

func TestNewRegimeCollapsesChapterVIA(t *testing.T) {
	engine := newTestDeductionEngine()

	decl := domain.DeductionDeclarations{
		Section80C: domain.Section80CDeclaration{PPF: decimal.NewFromInt(150_000)},
		Section80CCD: domain.Section80CCDDeclaration{
			AdditionalNPS:           decimal.NewFromInt(50_000),
			EmployerNPSContribution: decimal.NewFromInt(80_000),
		},
		Section80D: domain.Section80DDeclaration{SelfPremium: decimal.NewFromInt(25_000)},
		Section80G: []domain.Donation{
			{Category: domain.Donation100NoLimit, Amount: decimal.NewFromInt(10_000)},
		},
	}
	summary := domain.IncomeSummary{BasicPlusDA: decimal.NewFromInt(1_000_000)}

	b := engine.Evaluate(domain.TaxpayerProfile{Age: 35, Regime: domain.RegimeNew}, decl, summary)

	assert.True(t, b.Section80C.IsZero(), "80C must vanish under the new regime")
	assert.True(t, b.Section80CCD1B.IsZero(), "80CCD(1B) must vanish under the new regime")
	assert.True(t, b.Section80DSelf.IsZero(), "80D must vanish under the new regime")
	assert.True(t, b.Section80G.IsZero(), "80G must vanish under the new regime")
	assert.True(t, b.Section80CCD2.Equal(decimal.NewFromInt(80_000)),
		"80CCD(2) alone survives, got %s", b.Section80CCD2)
	assert.True(t, b.Total.Equal(b.Section80CCD2), "total must equal the surviving section")
}
