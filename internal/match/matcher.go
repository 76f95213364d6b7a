// Package match computes similarity between generated output and claim
// strings. Two strategies are supported: whole-text fuzzy containment for
// the rate metrics, and token-set Jaccard for sentence-level screening.
// All functions are pure.
package match

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/claimprobe/claimprobe/internal/model"
)

var wordPattern = regexp.MustCompile(`\w+`)

// FuzzyContains reports whether target appears in text. A literal
// case-insensitive substring counts as a 100 score; otherwise the
// order-insensitive token-set ratio (0-100) is compared to threshold.
func FuzzyContains(text, target string, threshold float64) (bool, float64) {
	textLower := strings.ToLower(text)
	targetLower := strings.ToLower(target)

	if strings.Contains(textLower, targetLower) {
		return true, 100.0
	}

	score := float64(fuzzy.TokenSetRatio(targetLower, textLower))
	return score >= threshold, score
}

// CheckAuthorized checks how many authorized claims are present in the
// output. Returns the hit rate, the matched claims, and the score computed
// for every claim. An empty claim list yields a 0.0 hit rate.
func CheckAuthorized(outputText string, claims []string, threshold float64) (float64, []string, []model.ClaimScore) {
	if len(claims) == 0 {
		return 0.0, nil, nil
	}

	var matched []string
	scores := make([]model.ClaimScore, 0, len(claims))

	for _, claim := range claims {
		ok, score := FuzzyContains(outputText, claim, threshold)
		scores = append(scores, model.ClaimScore{Claim: claim, Score: score})
		if ok {
			matched = append(matched, claim)
		}
	}

	hitRate := float64(len(matched)) / float64(len(claims))
	return hitRate, matched, scores
}

// CheckProhibited checks whether any prohibited claims appear in the
// output. The threshold is typically lower than the authorized one: a
// missed prohibited claim is costlier than a false positive.
func CheckProhibited(outputText string, claims []string, threshold float64) (float64, []string) {
	if len(claims) == 0 {
		return 0.0, nil
	}

	var violated []string
	for _, claim := range claims {
		if ok, _ := FuzzyContains(outputText, claim, threshold); ok {
			violated = append(violated, claim)
		}
	}

	contradictionRate := float64(len(violated)) / float64(len(claims))
	return contradictionRate, violated
}

// SentenceMatches reports whether a sentence matches a claim by Jaccard
// similarity over lowercase word-token sets. A claim with no tokens never
// matches.
func SentenceMatches(sentence, claim string, threshold float64) bool {
	sentenceWords := tokenSet(sentence)
	claimWords := tokenSet(claim)

	if len(claimWords) == 0 {
		return false
	}

	intersection := 0
	union := len(sentenceWords)
	for w := range claimWords {
		if _, ok := sentenceWords[w]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return false
	}

	return float64(intersection)/float64(union) >= threshold
}

func tokenSet(s string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
