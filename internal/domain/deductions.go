package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionDeclarations carries the taxpayer's declared Chapter VI-A
// investments and expenses, one field group per statutory section.
type DeductionDeclarations struct {
	Section80C   Section80CDeclaration   `yaml:"section_80c" json:"section_80c"`
	Section80CCD Section80CCDDeclaration `yaml:"section_80ccd" json:"section_80ccd"`
	Section80D   Section80DDeclaration   `yaml:"section_80d" json:"section_80d"`
	Section80DD  Section80DDDeclaration  `yaml:"section_80dd" json:"section_80dd"`
	Section80DDB Section80DDBDeclaration `yaml:"section_80ddb" json:"section_80ddb"`
	Section80E   Section80EDeclaration   `yaml:"section_80e" json:"section_80e"`
	Section80EEB Section80EEBDeclaration `yaml:"section_80eeb" json:"section_80eeb"`
	Section80G   []Donation              `yaml:"section_80g" json:"section_80g"`
	Section80GGC Section80GGCDeclaration `yaml:"section_80ggc" json:"section_80ggc"`
	Section80U   Section80UDeclaration   `yaml:"section_80u" json:"section_80u"`
}

// Section80CDeclaration aggregates the investments sharing the combined
// 80C/80CCC/80CCD(1) cap.
type Section80CDeclaration struct {
	LifeInsurancePremium decimal.Decimal `yaml:"life_insurance_premium" json:"life_insurance_premium"`
	PPF                  decimal.Decimal `yaml:"ppf" json:"ppf"`
	ELSS                 decimal.Decimal `yaml:"elss" json:"elss"`
	NSC                  decimal.Decimal `yaml:"nsc" json:"nsc"`
	TuitionFees          decimal.Decimal `yaml:"tuition_fees" json:"tuition_fees"`
	HomeLoanPrincipal    decimal.Decimal `yaml:"home_loan_principal" json:"home_loan_principal"`
	PensionFund80CCC     decimal.Decimal `yaml:"pension_fund_80ccc" json:"pension_fund_80ccc"`
	EmployeeNPS80CCD1    decimal.Decimal `yaml:"employee_nps_80ccd1" json:"employee_nps_80ccd1"`
	Other                decimal.Decimal `yaml:"other" json:"other"`
}

// Total sums every declared component under the combined cap.
func (d Section80CDeclaration) Total() decimal.Decimal {
	return d.LifeInsurancePremium.
		Add(d.PPF).
		Add(d.ELSS).
		Add(d.NSC).
		Add(d.TuitionFees).
		Add(d.HomeLoanPrincipal).
		Add(d.PensionFund80CCC).
		Add(d.EmployeeNPS80CCD1).
		Add(d.Other)
}

// Section80CCDDeclaration carries NPS amounts outside the 80C cap: the
// taxpayer's additional contribution under 80CCD(1B) and the employer
// contribution under 80CCD(2).
type Section80CCDDeclaration struct {
	AdditionalNPS           decimal.Decimal `yaml:"additional_nps" json:"additional_nps"`
	EmployerNPSContribution decimal.Decimal `yaml:"employer_nps_contribution" json:"employer_nps_contribution"`
}

// Section80DDeclaration carries health insurance premiums for self/family
// and parents, plus preventive checkup spend.
type Section80DDeclaration struct {
	SelfPremium       decimal.Decimal `yaml:"self_premium" json:"self_premium"`
	PreventiveCheckup decimal.Decimal `yaml:"preventive_checkup" json:"preventive_checkup"`
	ParentPremium     decimal.Decimal `yaml:"parent_premium" json:"parent_premium"`
	ParentAge         int             `yaml:"parent_age" json:"parent_age"`
}

// Section80DDDeclaration covers maintenance of a disabled dependent. The
// declared amount is recorded but the statutory benefit is a fixed sum.
type Section80DDDeclaration struct {
	Relation Relation        `yaml:"relation" json:"relation"`
	Tier     DisabilityTier  `yaml:"tier" json:"tier"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
}

// Section80DDBDeclaration covers specified-disease medical treatment.
type Section80DDBDeclaration struct {
	Relation     Relation        `yaml:"relation" json:"relation"`
	DependentAge int             `yaml:"dependent_age" json:"dependent_age"`
	Expenses     decimal.Decimal `yaml:"expenses" json:"expenses"`
}

// Section80EDeclaration covers education loan interest.
type Section80EDeclaration struct {
	Relation     Relation        `yaml:"relation" json:"relation"`
	LoanInterest decimal.Decimal `yaml:"loan_interest" json:"loan_interest"`
}

// Section80EEBDeclaration covers electric vehicle loan interest, gated on
// the purchase date falling inside the statutory window.
type Section80EEBDeclaration struct {
	LoanInterest decimal.Decimal `yaml:"loan_interest" json:"loan_interest"`
	PurchaseDate time.Time       `yaml:"purchase_date" json:"purchase_date"`
}

// Donation is one section 80G donation with its statutory bucket.
type Donation struct {
	Category DonationCategory `yaml:"category" json:"category"`
	Amount   decimal.Decimal  `yaml:"amount" json:"amount"`
}

// Section80GGCDeclaration covers political party contributions.
type Section80GGCDeclaration struct {
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	PaidInCash bool            `yaml:"paid_in_cash" json:"paid_in_cash"`
}

// Section80UDeclaration covers the taxpayer's own disability; like 80DD the
// benefit is a fixed sum by tier.
type Section80UDeclaration struct {
	Tier DisabilityTier `yaml:"tier" json:"tier"`
}
