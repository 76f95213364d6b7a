package match

import (
	"testing"
)

func TestFuzzyContains_Substring(t *testing.T) {
	ok, score := FuzzyContains("This drink has Zero Calories and tastes great.", "zero calories", 85)
	if !ok {
		t.Error("Expected substring containment to match")
	}
	if score != 100.0 {
		t.Errorf("Expected score 100 for literal containment, got %f", score)
	}
}

func TestFuzzyContains_WordOrder(t *testing.T) {
	// Token-set ratio is order-insensitive
	ok, score := FuzzyContains("calories zero", "zero calories", 85)
	if !ok {
		t.Errorf("Expected reordered tokens to match, score %f", score)
	}
}

func TestFuzzyContains_NoMatch(t *testing.T) {
	ok, _ := FuzzyContains("completely unrelated text", "zero calories", 85)
	if ok {
		t.Error("Expected no match for unrelated text")
	}
}

func TestCheckAuthorized_HitRate(t *testing.T) {
	claims := []string{"zero calories", "made with real fruit"}
	hitRate, matched, scores := CheckAuthorized("This drink has zero calories.", claims, 85)

	if hitRate != 0.5 {
		t.Errorf("Expected hit rate 0.5, got %f", hitRate)
	}
	if len(matched) != 1 || matched[0] != "zero calories" {
		t.Errorf("Expected matched=[zero calories], got %v", matched)
	}
	if len(scores) != 2 {
		t.Errorf("Expected a score for every claim, got %d", len(scores))
	}
}

func TestCheckAuthorized_EmptyClaims(t *testing.T) {
	hitRate, matched, scores := CheckAuthorized("any text", nil, 85)
	if hitRate != 0.0 {
		t.Errorf("Expected hit rate 0.0 on empty claim list, got %f", hitRate)
	}
	if matched != nil || scores != nil {
		t.Errorf("Expected no matches on empty claim list")
	}
}

func TestCheckProhibited_Violation(t *testing.T) {
	rate, violated := CheckProhibited("This product cures disease.", []string{"cures disease"}, 80)
	if rate != 1.0 {
		t.Errorf("Expected contradiction rate 1.0, got %f", rate)
	}
	if len(violated) != 1 {
		t.Errorf("Expected one violated claim, got %v", violated)
	}
}

func TestCheckProhibited_EmptyClaims(t *testing.T) {
	rate, violated := CheckProhibited("any text", []string{}, 80)
	if rate != 0.0 || violated != nil {
		t.Errorf("Expected 0.0/nil on empty claim list, got %f/%v", rate, violated)
	}
}

func TestSentenceMatches_Jaccard(t *testing.T) {
	// tokens: {zero, calories} vs {zero, calories, drink}
	// intersection 2, union 3 -> 0.666
	if !SentenceMatches("zero calories drink", "zero calories", 0.6) {
		t.Error("Expected match at similarity 2/3 with threshold 0.6")
	}
	if SentenceMatches("zero calories drink", "zero calories", 0.7) {
		t.Error("Expected no match at similarity 2/3 with threshold 0.7")
	}
}

func TestSentenceMatches_EmptyClaim(t *testing.T) {
	if SentenceMatches("some sentence", "", 0.0) {
		t.Error("A claim with zero tokens must never match")
	}
	if SentenceMatches("some sentence", "!!!", 0.0) {
		t.Error("A claim with zero word tokens must never match")
	}
}

func TestSentenceMatches_CaseInsensitive(t *testing.T) {
	if !SentenceMatches("ZERO CALORIES", "zero calories", 0.9) {
		t.Error("Expected case-insensitive token matching")
	}
}
