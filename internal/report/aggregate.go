// Package report aggregates per-run evaluation results and renders them
// for the downstream reporting layer.
package report

import (
	"sort"

	"github.com/claimprobe/claimprobe/internal/model"
)

// Aggregate rolls up runs for one engine × product × material group
type Aggregate struct {
	Engine       string
	ProductID    string
	MaterialType string
	Runs         int

	HitRate           float64
	ContradictionRate float64
	UnsupportedRate   float64
	OverclaimRate     float64
	NumericErrorRate  float64
	UnitErrorRate     float64
	BiasScore         float64

	Supported    int
	Contradicted int
	Unsupported  int
	Ambiguous    int
}

type groupKey struct {
	engine   string
	product  string
	material string
}

// Compute groups results by engine × product × material type and averages
// the rate metrics. Output order is deterministic.
func Compute(results []model.EvaluationResult) []Aggregate {
	groups := make(map[groupKey]*Aggregate)

	for _, r := range results {
		key := groupKey{r.Engine, r.ProductID, r.MaterialType}
		agg, ok := groups[key]
		if !ok {
			agg = &Aggregate{
				Engine:       r.Engine,
				ProductID:    r.ProductID,
				MaterialType: r.MaterialType,
			}
			groups[key] = agg
		}

		agg.Runs++
		agg.HitRate += r.HitRate
		agg.ContradictionRate += r.ContradictionRate
		agg.UnsupportedRate += r.UnsupportedRate
		agg.OverclaimRate += r.OverclaimRate
		agg.NumericErrorRate += float64(len(r.NumericErrors))
		agg.UnitErrorRate += float64(len(r.UnitErrors))
		agg.BiasScore += r.BiasScore

		switch r.Decision {
		case model.DecisionSupported:
			agg.Supported++
		case model.DecisionContradicted:
			agg.Contradicted++
		case model.DecisionUnsupported:
			agg.Unsupported++
		case model.DecisionAmbiguous:
			agg.Ambiguous++
		}
	}

	out := make([]Aggregate, 0, len(groups))
	for _, agg := range groups {
		n := float64(agg.Runs)
		agg.HitRate /= n
		agg.ContradictionRate /= n
		agg.UnsupportedRate /= n
		agg.OverclaimRate /= n
		agg.NumericErrorRate /= n
		agg.UnitErrorRate /= n
		agg.BiasScore /= n
		out = append(out, *agg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Engine != out[j].Engine {
			return out[i].Engine < out[j].Engine
		}
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].MaterialType < out[j].MaterialType
	})

	return out
}
