package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

func TestAccommodationPerquisite(t *testing.T) {
	agg := newTestAggregator()

	tests := []struct {
		name        string
		salary      domain.SalaryComponents
		expected    decimal.Decimal
		description string
	}{
		{
			name: "Large city at 10 percent",
			salary: domain.SalaryComponents{
				Basic: decimal.NewFromInt(1_200_000),
				Perquisites: domain.PerquisiteComponents{
					AccommodationCityTier: domain.CityTierLarge,
				},
			},
			expected:    decimal.NewFromInt(120_000),
			description: "10% of basic+DA for cities above 40 lakh",
		},
		{
			name: "Mid city at 7.5 percent",
			salary: domain.SalaryComponents{
				Basic: decimal.NewFromInt(1_200_000),
				Perquisites: domain.PerquisiteComponents{
					AccommodationCityTier: domain.CityTierMid,
				},
			},
			expected:    decimal.NewFromInt(90_000),
			description: "7.5% of basic+DA for mid-size cities",
		},
		{
			name: "Rent recovered reduces the value",
			salary: domain.SalaryComponents{
				Basic: decimal.NewFromInt(1_200_000),
				Perquisites: domain.PerquisiteComponents{
					AccommodationCityTier:      domain.CityTierLarge,
					AccommodationRentRecovered: decimal.NewFromInt(20_000),
				},
			},
			expected:    decimal.NewFromInt(100_000),
			description: "Employee rent payback offsets the perquisite",
		},
		{
			name: "Recovery above the value clamps to zero",
			salary: domain.SalaryComponents{
				Basic: decimal.NewFromInt(100_000),
				Perquisites: domain.PerquisiteComponents{
					AccommodationCityTier:      domain.CityTierSmall,
					AccommodationRentRecovered: decimal.NewFromInt(20_000),
				},
			},
			expected:    decimal.Zero,
			description: "The perquisite never goes negative",
		},
		{
			name: "No accommodation declared",
			salary: domain.SalaryComponents{
				Basic: decimal.NewFromInt(1_200_000),
			},
			expected:    decimal.Zero,
			description: "Empty city tier means no accommodation perquisite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.accommodationPerquisite(tt.salary)
			assert.True(t, got.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), got.StringFixed(2))
		})
	}
}

func TestCarPerquisite(t *testing.T) {
	agg := newTestAggregator()

	tests := []struct {
		name        string
		perqs       domain.PerquisiteComponents
		expected    decimal.Decimal
		description string
	}{
		{
			name:        "Official use only",
			perqs:       domain.PerquisiteComponents{CarUsage: domain.CarOfficial},
			expected:    decimal.Zero,
			description: "Official use is not a perquisite",
		},
		{
			name: "Personal use at actual cost",
			perqs: domain.PerquisiteComponents{
				CarUsage:      domain.CarPersonal,
				CarActualCost: decimal.NewFromInt(96_000),
			},
			expected:    decimal.NewFromInt(96_000),
			description: "Personal use taxes the employer's actual running cost",
		},
		{
			name: "Mixed use small car full year",
			perqs: domain.PerquisiteComponents{
				CarUsage: domain.CarMixed,
			},
			expected:    decimal.NewFromInt(21_600), // 1800*12
			description: "Zero months defaults to the full year",
		},
		{
			name: "Mixed use large car with driver for ten months",
			perqs: domain.PerquisiteComponents{
				CarUsage:       domain.CarMixed,
				CarAbove1600CC: true,
				CarDriver:      true,
				CarMonths:      10,
			},
			expected:    decimal.NewFromInt(33_000), // (2400+900)*10
			description: "Engine size and driver raise the monthly tariff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.carPerquisite(tt.perqs)
			assert.True(t, got.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), got.StringFixed(2))
		})
	}
}

func TestAssetTransferPerquisite(t *testing.T) {
	agg := newTestAggregator()

	tests := []struct {
		name        string
		perqs       domain.PerquisiteComponents
		expected    decimal.Decimal
		description string
	}{
		{
			name: "Three years of straight-line depreciation",
			perqs: domain.PerquisiteComponents{
				AssetTransferCost:      decimal.NewFromInt(100_000),
				AssetTransferYearsUsed: 3,
				AssetTransferPricePaid: decimal.NewFromInt(20_000),
			},
			expected:    decimal.NewFromInt(50_000), // 100000*0.70 - 20000
			description: "Written-down value less the price paid",
		},
		{
			name: "Fully depreciated asset",
			perqs: domain.PerquisiteComponents{
				AssetTransferCost:      decimal.NewFromInt(100_000),
				AssetTransferYearsUsed: 12,
			},
			expected:    decimal.Zero,
			description: "Depreciation never exceeds the full cost",
		},
		{
			name: "Price paid above written-down value",
			perqs: domain.PerquisiteComponents{
				AssetTransferCost:      decimal.NewFromInt(100_000),
				AssetTransferYearsUsed: 5,
				AssetTransferPricePaid: decimal.NewFromInt(80_000),
			},
			expected:    decimal.Zero,
			description: "Paying full value leaves nothing to tax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.assetTransferPerquisite(tt.perqs)
			assert.True(t, got.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), got.StringFixed(2))
		})
	}
}

func TestPerquisiteValueCarveOuts(t *testing.T) {
	agg := newTestAggregator()
	profile := oldRegimeProfile(35)

	tests := []struct {
		name        string
		perqs       domain.PerquisiteComponents
		expected    decimal.Decimal
		description string
	}{
		{
			name: "LTA exempt up to actual travel cost",
			perqs: domain.PerquisiteComponents{
				LTAReceived:   decimal.NewFromInt(50_000),
				LTATravelCost: decimal.NewFromInt(30_000),
			},
			expected:    decimal.NewFromInt(20_000),
			description: "Only the unspent LTA is taxable under the old regime",
		},
		{
			name: "Concessional loan interest spread",
			perqs: domain.PerquisiteComponents{
				LoanPrincipal:     decimal.NewFromInt(500_000),
				LoanBenchmarkRate: decimal.NewFromFloat(0.08),
				LoanChargedRate:   decimal.NewFromFloat(0.06),
			},
			expected:    decimal.NewFromInt(10_000), // 500000*0.02
			description: "Interest saved against the benchmark is the benefit",
		},
		{
			name: "Small loan carve-out",
			perqs: domain.PerquisiteComponents{
				LoanPrincipal:     decimal.NewFromInt(15_000),
				LoanBenchmarkRate: decimal.NewFromFloat(0.08),
			},
			expected:    decimal.Zero,
			description: "Loans up to 20,000 principal are ignored entirely",
		},
		{
			name: "ESOP exercise gain",
			perqs: domain.PerquisiteComponents{
				ESOPShares:        100,
				ESOPFairValue:     decimal.NewFromInt(500),
				ESOPExercisePrice: decimal.NewFromInt(200),
			},
			expected:    decimal.NewFromInt(30_000), // 100*(500-200)
			description: "Fair value over exercise price per share",
		},
		{
			name: "Meals exempt at fifty per meal",
			perqs: domain.PerquisiteComponents{
				MealsValue: decimal.NewFromInt(26_000),
				MealsCount: 200,
			},
			expected:    decimal.NewFromInt(16_000), // 26000 - 200*50
			description: "The per-meal carve-out scales with the meal count",
		},
		{
			name: "Gift vouchers above the annual threshold",
			perqs: domain.PerquisiteComponents{
				GiftVouchers: decimal.NewFromInt(8_000),
			},
			expected:    decimal.NewFromInt(3_000),
			description: "Only the excess over 5,000 is taxed",
		},
		{
			name: "Free education net of the monthly carve-out",
			perqs: domain.PerquisiteComponents{
				FreeEducationValue:    decimal.NewFromInt(40_000),
				FreeEducationChildren: 2,
			},
			expected:    decimal.NewFromInt(16_000), // 40000 - 1000*12*2
			description: "1,000 per month per child is exempt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := make(map[string]decimal.Decimal)
			got := agg.perquisiteValue(profile, domain.SalaryComponents{Perquisites: tt.perqs}, audit)
			assert.True(t, got.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), got.StringFixed(2))
		})
	}
}
