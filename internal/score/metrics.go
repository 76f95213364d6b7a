// Package score turns the combined matcher, validator, and screener
// signals into rate metrics and one categorical decision per run.
package score

import "github.com/claimprobe/claimprobe/internal/model"

// HitRate is the proportion of Supported decisions
func HitRate(decisions []model.Decision) float64 {
	return proportion(decisions, model.DecisionSupported)
}

// ContradictionRate is the proportion of Contradicted decisions
func ContradictionRate(decisions []model.Decision) float64 {
	return proportion(decisions, model.DecisionContradicted)
}

// UnsupportedRate is the proportion of Unsupported decisions
func UnsupportedRate(decisions []model.Decision) float64 {
	return proportion(decisions, model.DecisionUnsupported)
}

// AmbiguousRate is the proportion of Ambiguous decisions
func AmbiguousRate(decisions []model.Decision) float64 {
	return proportion(decisions, model.DecisionAmbiguous)
}

// OverclaimRate is the proportion of Contradicted plus Unsupported
// decisions
func OverclaimRate(decisions []model.Decision) float64 {
	return proportion(decisions, model.DecisionContradicted, model.DecisionUnsupported)
}

// proportion counts matching decisions over the total. An empty decision
// set yields 0.0, never NaN.
func proportion(decisions []model.Decision, want ...model.Decision) float64 {
	if len(decisions) == 0 {
		return 0.0
	}

	count := 0
	for _, d := range decisions {
		for _, w := range want {
			if d == w {
				count++
				break
			}
		}
	}

	return float64(count) / float64(len(decisions))
}
