// Package runs loads the experiment run manifest produced by the
// orchestration layer. Only completed runs carry an artifact to evaluate.
package runs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Run is one row of the experiment manifest
type Run struct {
	RunID        string
	ProductID    string
	Engine       string
	MaterialType string
	Temperature  string
	TimeOfDay    string
	RepetitionID string
	Status       string
	OutputPath   string
}

// LoadCSV reads the run manifest. Columns are resolved by header name so
// the manifest may carry extra columns in any order.
func LoadCSV(path string) ([]Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read results header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var out []Run
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read results row: %w", err)
		}

		out = append(out, Run{
			RunID:        field(record, "run_id"),
			ProductID:    field(record, "product_id"),
			Engine:       field(record, "engine"),
			MaterialType: field(record, "material_type"),
			Temperature:  field(record, "temperature_label"),
			TimeOfDay:    field(record, "time_of_day_label"),
			RepetitionID: field(record, "repetition_id"),
			Status:       field(record, "status"),
			OutputPath:   field(record, "output_path"),
		})
	}

	return out, nil
}

// Completed filters the manifest down to evaluable runs
func Completed(all []Run) []Run {
	var out []Run
	for _, r := range all {
		if r.Status == "completed" {
			out = append(out, r)
		}
	}
	return out
}
