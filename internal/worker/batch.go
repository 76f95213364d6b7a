package worker

import (
	"context"
	"fmt"
	"os"

	"github.com/claimprobe/claimprobe/internal/model"
	"github.com/claimprobe/claimprobe/internal/product"
	"github.com/claimprobe/claimprobe/internal/runs"
	"github.com/claimprobe/claimprobe/internal/score"
)

// Outcome is the per-run result of a batch evaluation. A skipped run has
// no artifact to judge; an errored run failed and is recorded with its
// run ID, never aborting the batch.
type Outcome struct {
	Run     runs.Run
	Result  *model.EvaluationResult
	Err     error
	Skipped bool
	Reason  string
}

// GetError returns the evaluation error, if any
func (o *Outcome) GetError() error {
	return o.Err
}

// EvalJob evaluates one run's artifact against its product spec
type EvalJob struct {
	Run       runs.Run
	Products  *product.Loader
	Evaluator *score.Evaluator
}

// Execute runs the evaluation
func (j *EvalJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &Outcome{Run: j.Run, Err: fmt.Errorf("evaluate %s: %w", j.Run.RunID, err)}
	}

	spec, err := j.Products.Get(j.Run.ProductID)
	if err != nil {
		return &Outcome{Run: j.Run, Err: fmt.Errorf("evaluate %s: %w", j.Run.RunID, err)}
	}

	data, err := os.ReadFile(j.Run.OutputPath)
	if err != nil {
		return &Outcome{Run: j.Run, Err: fmt.Errorf("evaluate %s: read artifact: %w", j.Run.RunID, err)}
	}

	result := j.Evaluator.Evaluate(j.Run.RunID, string(data), spec)
	result.Engine = j.Run.Engine
	result.ProductID = j.Run.ProductID
	result.MaterialType = j.Run.MaterialType
	result.Temperature = j.Run.Temperature
	result.TimeOfDay = j.Run.TimeOfDay
	result.RepetitionID = j.Run.RepetitionID

	return &Outcome{Run: j.Run, Result: &result}
}

// BatchProcessor evaluates many runs concurrently
type BatchProcessor struct {
	products    *product.Loader
	evaluator   *score.Evaluator
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(products *product.Loader, evaluator *score.Evaluator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		products:    products,
		evaluator:   evaluator,
		concurrency: concurrency,
	}
}

// Process evaluates all runs. Runs without a readable artifact are marked
// skipped up front; the rest fan out across the pool. Cancelling the
// context aborts the batch and returns the outcomes collected so far.
func (b *BatchProcessor) Process(ctx context.Context, all []runs.Run) []*Outcome {
	outcomes := make([]*Outcome, 0, len(all))

	var toEval []runs.Run
	for _, r := range all {
		if r.OutputPath == "" {
			outcomes = append(outcomes, &Outcome{Run: r, Skipped: true, Reason: "no output path"})
			continue
		}
		if _, err := os.Stat(r.OutputPath); err != nil {
			outcomes = append(outcomes, &Outcome{Run: r, Skipped: true, Reason: "artifact not found"})
			continue
		}
		toEval = append(toEval, r)
	}

	if len(toEval) == 0 {
		return outcomes
	}

	pool := NewPool(b.concurrency)
	pool.Start()
	defer pool.Shutdown()

	// Submit from a separate goroutine so the results drain below keeps
	// pace with the bounded queue.
	go func() {
		for _, r := range toEval {
			pool.Submit(&EvalJob{Run: r, Products: b.products, Evaluator: b.evaluator})
		}
	}()

	for range toEval {
		select {
		case <-ctx.Done():
			return outcomes
		case result := <-pool.results:
			outcomes = append(outcomes, result.(*Outcome))
		}
	}

	return outcomes
}
