package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimprobe/claimprobe/internal/lexicon"
	"github.com/claimprobe/claimprobe/internal/model"
	"github.com/claimprobe/claimprobe/internal/product"
	"github.com/claimprobe/claimprobe/internal/report"
	"github.com/claimprobe/claimprobe/internal/runs"
	"github.com/claimprobe/claimprobe/internal/score"
	"github.com/claimprobe/claimprobe/internal/worker"
)

var (
	resultsPath  string
	productsDir  string
	outputDir    string
	concurrency  int
	batchTimeout time.Duration
	noAggregate  bool
	noCache      bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate all completed runs from an experiment manifest",
	Long: `Batch evaluates every completed run in the experiment manifest:
- Read the runs CSV and keep rows with status=completed
- Evaluate each artifact against its product spec, in parallel
- Write per-run results (per_run.json) and aggregate metrics (aggregate.csv)

Runs with a missing artifact are counted as skipped; a failed evaluation
is recorded against its run ID and never aborts the batch.

Example:
  claimprobe batch --results results/experiments.csv --products products
  claimprobe batch --results results/experiments.csv --concurrency 16`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&resultsPath, "results", "results/experiments.csv", "path to the experiment manifest CSV")
	batchCmd.Flags().StringVar(&productsDir, "products", "products", "path to the products directory")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "analysis", "output directory for evaluation results")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noAggregate, "no-aggregate", false, "skip aggregate metrics by engine × product")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the product spec cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Claimprobe Batch Evaluation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Manifest:     %s\n", resultsPath)
	fmt.Fprintf(os.Stderr, "  Products:     %s\n", productsDir)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.Aggregate = !noAggregate

	all, err := runs.LoadCSV(resultsPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	completed := runs.Completed(all)
	fmt.Fprintf(os.Stderr, "✓ Loaded %d runs (%d completed)\n", len(all), len(completed))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ttl := cfg.Cache.TTL
	if !cfg.Cache.Enabled {
		ttl = 0
	}
	products := product.NewLoader(productsDir, ttl)
	evaluator := score.NewEvaluator(cfg, lexicon.Default())
	processor := worker.NewBatchProcessor(products, evaluator, cfg.Concurrency.Workers)

	fmt.Fprintf(os.Stderr, "⚙️  Evaluating %d runs with %d workers...\n", len(completed), cfg.Concurrency.Workers)
	outcomes := processor.Process(ctx, completed)

	var results []model.EvaluationResult
	skipped := 0
	errored := 0

	for _, o := range outcomes {
		switch {
		case o.Skipped:
			skipped++
			if verbose {
				fmt.Fprintf(os.Stderr, "- %s: skipped (%s)\n", o.Run.RunID, o.Reason)
			}
		case o.Err != nil:
			errored++
			fmt.Fprintf(os.Stderr, "✗ %v\n", o.Err)
		default:
			results = append(results, *o.Result)
		}
	}

	perRunPath := filepath.Join(outputDir, "per_run.json")
	if err := report.WritePerRunJSON(results, perRunPath); err != nil {
		return fmt.Errorf("write per-run results: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote per-run results: %s\n", perRunPath)

	if cfg.Output.Aggregate && len(results) > 0 {
		aggs := report.Compute(results)

		aggPath := filepath.Join(outputDir, "aggregate.csv")
		if err := report.WriteAggregateCSV(aggs, aggPath); err != nil {
			return fmt.Errorf("write aggregate metrics: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote aggregate metrics: %s\n", aggPath)

		fmt.Fprintf(os.Stderr, "\n")
		report.RenderSummary(os.Stdout, aggs)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Evaluated: %d\n", len(results))
	fmt.Fprintf(os.Stderr, "  Skipped:   %d\n", skipped)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
