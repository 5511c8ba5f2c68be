package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taxgo/india-tax-engine/internal/domain"
)

// Request is the on-disk form of one computation: who the taxpayer is,
// what they earned and what they declared.
type Request struct {
	Taxpayer   domain.TaxpayerProfile       `yaml:"taxpayer" json:"taxpayer"`
	Income     domain.IncomeComponents      `yaml:"income" json:"income"`
	Deductions domain.DeductionDeclarations `yaml:"deductions" json:"deductions"`
}

// InputParser handles parsing of request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a computation request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Request, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a computation request from YAML bytes. Structural checks
// only; the engine's own validation covers field-level rules.
func (ip *InputParser) Parse(data []byte) (*Request, error) {
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.validate(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// validate rejects requests that cannot possibly compute: a missing
// taxpayer block or a regime the engine does not know.
func (ip *InputParser) validate(req *Request) error {
	if req.Taxpayer.Regime == "" {
		return fmt.Errorf("taxpayer.regime is required")
	}
	if !req.Taxpayer.Regime.Valid() {
		return fmt.Errorf("taxpayer.regime must be %q or %q, got %q",
			domain.RegimeOld, domain.RegimeNew, req.Taxpayer.Regime)
	}
	if req.Taxpayer.Age <= 0 {
		return fmt.Errorf("taxpayer.age is required")
	}
	return nil
}
