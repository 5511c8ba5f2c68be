package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxgo/india-tax-engine/internal/calculation"
	"github.com/taxgo/india-tax-engine/internal/config"
	"github.com/taxgo/india-tax-engine/internal/output"
)

var (
	inputFile  string
	formatName string
	verbose    bool
)

// stderrLogger routes engine diagnostics to standard error so formatted
// results on stdout stay machine-readable.
type stderrLogger struct {
	debug bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG "+format, args...)
	}
}
func (l stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (l stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	rootCmd := &cobra.Command{
		Use:   "taxcalc",
		Short: "Indian income tax computation engine",
		Long: `taxcalc computes Indian income tax liability from a declared
income and investment profile, under either the old or the new regime,
with a full itemized breakdown of every rule applied.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "input YAML file (required)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format: console, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the tax liability for one request",
		RunE:  runCompute,
	}
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compute the same request under both regimes and recommend one",
		RunE:  runCompare,
	}
	rootCmd.AddCommand(computeCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRequest() (*config.Request, *calculation.TaxComputationEngine, output.Formatter, error) {
	if inputFile == "" {
		return nil, nil, nil, fmt.Errorf("--input is required")
	}
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return nil, nil, nil, fmt.Errorf("unknown format %q (want console or json)", formatName)
	}

	req, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return nil, nil, nil, err
	}

	engine := calculation.NewTaxComputationEngine()
	engine.SetLogger(stderrLogger{debug: verbose})
	return req, engine, formatter, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	req, engine, formatter, err := loadRequest()
	if err != nil {
		return err
	}

	result, err := engine.Compute(req.Taxpayer, req.Income, req.Deductions)
	if err != nil {
		return err
	}

	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	req, engine, formatter, err := loadRequest()
	if err != nil {
		return err
	}

	comparison, err := engine.CompareRegimes(req.Taxpayer, req.Income, req.Deductions)
	if err != nil {
		return err
	}

	data, err := formatter.FormatComparison(comparison)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
