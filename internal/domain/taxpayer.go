package domain

// Regime identifies which of the two mutually exclusive tax regimes a
// computation runs under.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Valid reports whether the regime is one of the two recognized values.
func (r Regime) Valid() bool {
	return r == RegimeOld || r == RegimeNew
}

// Relation identifies the person a declared deduction relates to.
type Relation string

const (
	RelationSelf    Relation = "self"
	RelationSpouse  Relation = "spouse"
	RelationChild   Relation = "child"
	RelationParent  Relation = "parent"
	RelationSibling Relation = "sibling"
)

// Valid reports whether the relation is a recognized value.
func (r Relation) Valid() bool {
	switch r {
	case RelationSelf, RelationSpouse, RelationChild, RelationParent, RelationSibling:
		return true
	}
	return false
}

// DisabilityTier is the statutory disability band used by sections 80DD and 80U.
type DisabilityTier string

const (
	DisabilityNone     DisabilityTier = ""
	DisabilityModerate DisabilityTier = "Between 40%-80%"
	DisabilitySevere   DisabilityTier = "More than 80%"
)

// Valid reports whether the tier is a recognized value; the empty tier means
// no disability is declared.
func (d DisabilityTier) Valid() bool {
	switch d {
	case DisabilityNone, DisabilityModerate, DisabilitySevere:
		return true
	}
	return false
}

// DonationCategory is one of the four section 80G donation buckets.
type DonationCategory string

const (
	Donation100NoLimit   DonationCategory = "100% without limit"
	Donation50NoLimit    DonationCategory = "50% without limit"
	Donation100WithLimit DonationCategory = "100% with qualifying limit"
	Donation50WithLimit  DonationCategory = "50% with qualifying limit"
)

// Valid reports whether the category is a recognized value.
func (c DonationCategory) Valid() bool {
	switch c {
	case Donation100NoLimit, Donation50NoLimit, Donation100WithLimit, Donation50WithLimit:
		return true
	}
	return false
}

// PropertyStatus identifies how a house property is used during the year.
type PropertyStatus string

const (
	PropertySelfOccupied PropertyStatus = "self-occupied"
	PropertyLetOut       PropertyStatus = "let-out"
)

// Valid reports whether the status is a recognized value.
func (p PropertyStatus) Valid() bool {
	return p == PropertySelfOccupied || p == PropertyLetOut
}

// CarUsage identifies how an employer-provided car is used.
type CarUsage string

const (
	CarNotProvided CarUsage = ""
	CarOfficial    CarUsage = "official"
	CarPersonal    CarUsage = "personal"
	CarMixed       CarUsage = "mixed"
)

// Valid reports whether the usage is a recognized value; empty means no car
// perquisite is declared.
func (c CarUsage) Valid() bool {
	switch c {
	case CarNotProvided, CarOfficial, CarPersonal, CarMixed:
		return true
	}
	return false
}

// CityTier is the population band that sets the accommodation perquisite rate.
type CityTier string

const (
	CityTierNone  CityTier = ""
	CityTierLarge CityTier = "large" // population above 40 lakh
	CityTierMid   CityTier = "mid"   // population 15 to 40 lakh
	CityTierSmall CityTier = "small"
)

// Valid reports whether the tier is a recognized value; empty means no
// accommodation perquisite is declared.
func (c CityTier) Valid() bool {
	switch c {
	case CityTierNone, CityTierLarge, CityTierMid, CityTierSmall:
		return true
	}
	return false
}

// TaxpayerProfile carries the personal attributes that steer rule selection.
// It is immutable for the duration of one computation.
type TaxpayerProfile struct {
	Age                  int    `yaml:"age" json:"age"`
	Regime               Regime `yaml:"regime" json:"regime"`
	IsGovernmentEmployee bool   `yaml:"is_government_employee" json:"is_government_employee"`
	FinancialYear        string `yaml:"financial_year" json:"financial_year"`
}

// AgeBand buckets the taxpayer's age for old-regime slab selection.
type AgeBand int

const (
	AgeBandRegular     AgeBand = iota // under 60
	AgeBandSenior                     // 60 to 79
	AgeBandSuperSenior                // 80 and above
)

// Band returns the slab age band for the profile's age.
func (p TaxpayerProfile) Band() AgeBand {
	switch {
	case p.Age >= 80:
		return AgeBandSuperSenior
	case p.Age >= 60:
		return AgeBandSenior
	default:
		return AgeBandRegular
	}
}
