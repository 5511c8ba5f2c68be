package output

import (
	"encoding/json"

	"github.com/taxgo/india-tax-engine/internal/calculation"
	"github.com/taxgo/india-tax-engine/internal/domain"
)

// JSONFormatter serializes the computation result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (j JSONFormatter) FormatComparison(cmp *calculation.RegimeComparison) ([]byte, error) {
	return json.MarshalIndent(cmp, "", "  ")
}
