// Package bias screens output text against the lexicon pattern bank.
// The bias score is a diagnostic axis reported alongside the decision;
// it never feeds the categorical decision itself.
package bias

import (
	"sort"
	"strings"

	"github.com/claimprobe/claimprobe/internal/lexicon"
	"github.com/claimprobe/claimprobe/internal/model"
)

// Screener runs the pattern bank against output text
type Screener struct {
	bank      *lexicon.Bank
	weights   model.BiasConfig
	whitelist map[string]struct{}
}

// NewScreener creates a screener over the given bank
func NewScreener(bank *lexicon.Bank, cfg model.BiasConfig) *Screener {
	whitelist := make(map[string]struct{}, len(cfg.Whitelist))
	for _, w := range cfg.Whitelist {
		whitelist[strings.ToLower(w)] = struct{}{}
	}

	return &Screener{
		bank:      bank,
		weights:   cfg,
		whitelist: whitelist,
	}
}

// Detect scans the text with every lexicon pattern. Each pattern with a
// non-empty, non-whitelisted match set becomes one detection.
func (s *Screener) Detect(outputText string) ([]model.BiasDetection, model.SeverityCounts) {
	var detections []model.BiasDetection
	var counts model.SeverityCounts

	for _, p := range s.bank.Bias() {
		matches := p.Regexp.FindAllString(strings.ToLower(outputText), -1)
		if len(matches) == 0 {
			continue
		}

		filtered := matches[:0:0]
		for _, m := range matches {
			if _, ok := s.whitelist[m]; !ok {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) == 0 {
			continue
		}

		detections = append(detections, model.BiasDetection{
			Pattern:  p.Raw,
			Matches:  filtered,
			Severity: p.Severity,
			Category: p.Category,
		})

		switch p.Severity {
		case model.BiasHigh:
			counts.High++
		case model.BiasMedium:
			counts.Medium++
		case model.BiasLow:
			counts.Low++
		}
	}

	return detections, counts
}

// Score computes the weighted bias score, doubled and capped at 100
func (s *Screener) Score(counts model.SeverityCounts) float64 {
	weighted := counts.High*s.weights.WeightHigh +
		counts.Medium*s.weights.WeightMedium +
		counts.Low*s.weights.WeightLow

	score := float64(weighted) * 2
	if score > 100 {
		score = 100
	}
	return score
}

// Overclaims returns the distinct superlative/exaggeration phrases found
// in the text, sorted for reproducible results.
func (s *Screener) Overclaims(outputText string) []string {
	seen := make(map[string]struct{})
	textLower := strings.ToLower(outputText)

	for _, p := range s.bank.Overclaims() {
		for _, m := range p.Regexp.FindAllString(textLower, -1) {
			seen[m] = struct{}{}
		}
	}

	phrases := make([]string, 0, len(seen))
	for m := range seen {
		phrases = append(phrases, m)
	}
	sort.Strings(phrases)
	return phrases
}
