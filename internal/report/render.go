package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/claimprobe/claimprobe/internal/model"
)

// WritePerRunJSON writes every per-run result to one JSON document
func WritePerRunJSON(results []model.EvaluationResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create per-run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode per-run results: %w", err)
	}

	return nil
}

// WriteAggregateCSV writes the aggregate metrics by engine × product ×
// material type
func WriteAggregateCSV(aggs []Aggregate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create aggregate file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	header := []string{
		"engine", "product_id", "material_type", "runs",
		"hit_rate", "contradiction_rate", "unsupported_rate", "overclaim_rate",
		"numeric_error_rate", "unit_error_rate", "bias_score",
		"decision_supported", "decision_contradicted", "decision_unsupported", "decision_ambiguous",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write aggregate header: %w", err)
	}

	for _, a := range aggs {
		row := []string{
			a.Engine,
			a.ProductID,
			a.MaterialType,
			strconv.Itoa(a.Runs),
			strconv.FormatFloat(a.HitRate, 'f', 4, 64),
			strconv.FormatFloat(a.ContradictionRate, 'f', 4, 64),
			strconv.FormatFloat(a.UnsupportedRate, 'f', 4, 64),
			strconv.FormatFloat(a.OverclaimRate, 'f', 4, 64),
			strconv.FormatFloat(a.NumericErrorRate, 'f', 2, 64),
			strconv.FormatFloat(a.UnitErrorRate, 'f', 2, 64),
			strconv.FormatFloat(a.BiasScore, 'f', 1, 64),
			strconv.Itoa(a.Supported),
			strconv.Itoa(a.Contradicted),
			strconv.Itoa(a.Unsupported),
			strconv.Itoa(a.Ambiguous),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write aggregate row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush aggregate file: %w", err)
	}

	return nil
}

// WriteResultJSON writes one evaluation result, for single-artifact runs
func WriteResultJSON(result *model.EvaluationResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}

// RenderSummary prints the aggregate table
func RenderSummary(w io.Writer, aggs []Aggregate) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENGINE\tPRODUCT\tMATERIAL\tRUNS\tHIT RATE\tOVERCLAIM\tBIAS SCORE")
	for _, a := range aggs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.1f%%\t%.1f%%\t%.1f\n",
			a.Engine, a.ProductID, a.MaterialType, a.Runs,
			a.HitRate*100, a.OverclaimRate*100, a.BiasScore)
	}
	_ = tw.Flush()
}
