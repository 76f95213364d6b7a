package report

import (
	"testing"

	"github.com/claimprobe/claimprobe/internal/model"
)

func TestCompute_GroupsAndAverages(t *testing.T) {
	results := []model.EvaluationResult{
		{
			Engine: "alpha", ProductID: "fizz", MaterialType: "social_post",
			Decision: model.DecisionSupported, HitRate: 1.0, BiasScore: 20,
		},
		{
			Engine: "alpha", ProductID: "fizz", MaterialType: "social_post",
			Decision: model.DecisionContradicted, HitRate: 0.5, ContradictionRate: 0.5,
			NumericErrors: []model.NumericDiscrepancy{{Message: "off"}},
			BiasScore:     40,
		},
		{
			Engine: "beta", ProductID: "fizz", MaterialType: "social_post",
			Decision: model.DecisionAmbiguous, HitRate: 0.4,
		},
	}

	got := Compute(results)
	if len(got) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(got))
	}

	alpha := got[0]
	if alpha.Engine != "alpha" || alpha.Runs != 2 {
		t.Fatalf("Unexpected first group: %+v", alpha)
	}
	if alpha.HitRate != 0.75 {
		t.Errorf("Expected mean hit rate 0.75, got %f", alpha.HitRate)
	}
	if alpha.ContradictionRate != 0.25 {
		t.Errorf("Expected mean contradiction rate 0.25, got %f", alpha.ContradictionRate)
	}
	if alpha.NumericErrorRate != 0.5 {
		t.Errorf("Expected mean numeric error rate 0.5, got %f", alpha.NumericErrorRate)
	}
	if alpha.BiasScore != 30 {
		t.Errorf("Expected mean bias score 30, got %f", alpha.BiasScore)
	}
	if alpha.Supported != 1 || alpha.Contradicted != 1 {
		t.Errorf("Decision counts wrong: %+v", alpha)
	}

	beta := got[1]
	if beta.Engine != "beta" || beta.Runs != 1 || beta.Ambiguous != 1 {
		t.Errorf("Unexpected second group: %+v", beta)
	}
}

func TestCompute_DeterministicOrder(t *testing.T) {
	results := []model.EvaluationResult{
		{Engine: "beta", ProductID: "a", MaterialType: "m"},
		{Engine: "alpha", ProductID: "b", MaterialType: "m"},
		{Engine: "alpha", ProductID: "a", MaterialType: "n"},
		{Engine: "alpha", ProductID: "a", MaterialType: "m"},
	}

	got := Compute(results)
	if len(got) != 4 {
		t.Fatalf("Expected 4 groups, got %d", len(got))
	}

	want := [][3]string{
		{"alpha", "a", "m"},
		{"alpha", "a", "n"},
		{"alpha", "b", "m"},
		{"beta", "a", "m"},
	}
	for i, w := range want {
		g := got[i]
		if g.Engine != w[0] || g.ProductID != w[1] || g.MaterialType != w[2] {
			t.Errorf("Group %d = %s/%s/%s, want %s/%s/%s",
				i, g.Engine, g.ProductID, g.MaterialType, w[0], w[1], w[2])
		}
	}
}

func TestCompute_Empty(t *testing.T) {
	if got := Compute(nil); len(got) != 0 {
		t.Errorf("Expected no groups, got %v", got)
	}
}
