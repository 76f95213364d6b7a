package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claimprobe/claimprobe/internal/lexicon"
	"github.com/claimprobe/claimprobe/internal/model"
	"github.com/claimprobe/claimprobe/internal/product"
	"github.com/claimprobe/claimprobe/internal/report"
	"github.com/claimprobe/claimprobe/internal/score"
)

var (
	productPath   string
	runID         string
	outJSON       string
	authThreshold float64
	prohThreshold float64
	tolerance     float64
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval <output-file>",
	Short: "Evaluate a single generated artifact against a product spec",
	Long: `Eval judges one text artifact:
- Match authorized claims (hit rate) and prohibited claims (contradiction rate)
- Validate numeric claims against the spec, with unit conversion
- Detect overclaim phrases and biased language
- Emit one decision: Supported, Contradicted, Unsupported, or Ambiguous

Example:
  claimprobe eval out/run-0001.txt --product products/fitness-tracker.yaml
  claimprobe eval out/run-0001.txt --product products/drink.yaml --json result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&productPath, "product", "", "product spec YAML (required)")
	evalCmd.Flags().StringVar(&runID, "run-id", "adhoc", "run identifier recorded in the result")
	evalCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional; summary goes to stdout)")
	evalCmd.Flags().Float64Var(&authThreshold, "authorized-threshold", 85, "fuzzy threshold for authorized claims (0-100)")
	evalCmd.Flags().Float64Var(&prohThreshold, "prohibited-threshold", 80, "fuzzy threshold for prohibited claims (0-100)")
	evalCmd.Flags().Float64Var(&tolerance, "tolerance", 0.05, "max relative error for numeric claims")
	_ = evalCmd.MarkFlagRequired("product")
}

func runEval(cmd *cobra.Command, args []string) error {
	artifactPath := args[0]

	spec, err := product.Load(productPath)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Matching.AuthorizedThreshold = authThreshold
	cfg.Matching.ProhibitedThreshold = prohThreshold
	cfg.Numeric.Tolerance = tolerance

	evaluator := score.NewEvaluator(cfg, lexicon.Default())
	result := evaluator.Evaluate(runID, string(data), spec)

	fmt.Printf("Decision:           %s\n", result.Decision)
	fmt.Printf("Hit rate:           %.1f%%\n", result.HitRate*100)
	fmt.Printf("Contradiction rate: %.1f%%\n", result.ContradictionRate*100)
	fmt.Printf("Numeric errors:     %d\n", len(result.NumericErrors))
	fmt.Printf("Unit errors:        %d\n", len(result.UnitErrors))
	fmt.Printf("Overclaims:         %d\n", len(result.Overclaims))
	fmt.Printf("Bias score:         %.1f/100\n", result.BiasScore)

	if verbose {
		for _, c := range result.MatchedAuthorized {
			fmt.Fprintf(os.Stderr, "✓ authorized: %s\n", c)
		}
		for _, c := range result.ViolatedProhibited {
			fmt.Fprintf(os.Stderr, "✗ prohibited: %s\n", c)
		}
		for _, n := range result.NumericErrors {
			fmt.Fprintf(os.Stderr, "✗ %s\n", n.Message)
		}
		for _, u := range result.UnitErrors {
			fmt.Fprintf(os.Stderr, "✗ %s\n", u.Message)
		}
	}

	if outJSON != "" {
		if err := report.WriteResultJSON(&result, outJSON); err != nil {
			return fmt.Errorf("render result: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	return nil
}
