package match

import (
	"strings"

	"github.com/claimprobe/claimprobe/internal/model"
	"github.com/claimprobe/claimprobe/internal/segment"
)

// Screen scans the output sentence by sentence and records one ClaimMatch
// per detected claim. Prohibited claims are checked first: a sentence that
// contradicts policy is flagged even when it also resembles an authorized
// claim. Matching stops at the first claim hit per sentence and per list.
//
// A sentence matching neither list, with more than 5 words, is flagged
// Unsupported only while no match of any kind has been recorded for the
// whole output. This gate is intentionally loose; see DESIGN.md.
func Screen(outputText string, authorized, prohibited []string, threshold float64) []model.ClaimMatch {
	sentences := segment.Sentences(outputText)
	var matches []model.ClaimMatch

	for _, sentence := range sentences {
		for _, claim := range prohibited {
			if SentenceMatches(sentence, claim, threshold) {
				matches = append(matches, model.ClaimMatch{
					Decision:     model.DecisionContradicted,
					MatchedClaim: claim,
					ClaimType:    model.ClaimTypeProhibited,
					Confidence:   0.8,
				})
				break
			}
		}

		matchedAuthorized := false
		for _, claim := range authorized {
			if SentenceMatches(sentence, claim, threshold) {
				matches = append(matches, model.ClaimMatch{
					Decision:     model.DecisionSupported,
					MatchedClaim: claim,
					ClaimType:    model.ClaimTypeAuthorized,
					Confidence:   0.8,
				})
				matchedAuthorized = true
				break
			}
		}

		if !matchedAuthorized && len(matches) == 0 && len(strings.Fields(sentence)) > 5 {
			matches = append(matches, model.ClaimMatch{
				Decision:     model.DecisionUnsupported,
				MatchedClaim: sentence,
				ClaimType:    model.ClaimTypeNone,
				Confidence:   0.5,
			})
		}
	}

	return matches
}
