package score

import (
	"testing"

	"github.com/claimprobe/claimprobe/internal/model"
)

func TestRates_EmptyDecisions(t *testing.T) {
	var none []model.Decision

	for name, fn := range map[string]func([]model.Decision) float64{
		"hit":           HitRate,
		"contradiction": ContradictionRate,
		"unsupported":   UnsupportedRate,
		"ambiguous":     AmbiguousRate,
		"overclaim":     OverclaimRate,
	} {
		if got := fn(none); got != 0.0 {
			t.Errorf("%s rate on empty decisions = %f, want 0.0", name, got)
		}
	}
}

func TestRates_Proportions(t *testing.T) {
	decisions := []model.Decision{
		model.DecisionSupported,
		model.DecisionSupported,
		model.DecisionContradicted,
		model.DecisionUnsupported,
	}

	if got := HitRate(decisions); got != 0.5 {
		t.Errorf("HitRate = %f, want 0.5", got)
	}
	if got := ContradictionRate(decisions); got != 0.25 {
		t.Errorf("ContradictionRate = %f, want 0.25", got)
	}
	if got := UnsupportedRate(decisions); got != 0.25 {
		t.Errorf("UnsupportedRate = %f, want 0.25", got)
	}
	if got := AmbiguousRate(decisions); got != 0.0 {
		t.Errorf("AmbiguousRate = %f, want 0.0", got)
	}
	// Contradicted + Unsupported over total
	if got := OverclaimRate(decisions); got != 0.5 {
		t.Errorf("OverclaimRate = %f, want 0.5", got)
	}
}
