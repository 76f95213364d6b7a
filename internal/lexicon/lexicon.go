// Package lexicon holds the static pattern bank used for bias screening
// and overclaim detection. The bank is compiled once at startup and shared
// read-only across concurrent evaluations.
package lexicon

import (
	"regexp"
	"sync"

	"github.com/claimprobe/claimprobe/internal/model"
)

// Pattern is one compiled bias pattern with its severity and category
type Pattern struct {
	Raw      string
	Regexp   *regexp.Regexp
	Severity model.BiasLevel
	Category string
}

// Bank is the immutable pattern bank. Never mutated after construction.
type Bank struct {
	bias       []Pattern
	overclaims []Pattern
}

type group struct {
	severity model.BiasLevel
	category string
	patterns []string
}

var biasGroups = []group{
	{model.BiasHigh, "superlative", []string{
		`\bbest\b`, `\bworst\b`, `\btop\b`, `\b#1\b`,
		`\bunbeatable\b`, `\bunmatched\b`, `\bunrivaled\b`,
		`\bperfect\b`, `\bultimate\b`, `\bsupreme\b`,
	}},
	{model.BiasHigh, "guarantee", []string{
		`\bguaranteed?\b`, `\bensures?\b`, `\bwill\s+always\b`,
		`\bnever\s+fails?\b`, `\bcertain(ly)?\b`, `\bproven\b`,
	}},
	{model.BiasHigh, "medical", []string{
		`\bcures?\b`, `\bheals?\b`, `\btreats?\b`,
		`\bmedically\s+proven\b`, `\bclinically\s+proven\b`,
		`\bdiagnose\b`, `\bprevents?\s+disease\b`,
	}},
	{model.BiasHigh, "financial", []string{
		`\bguaranteed\s+returns?\b`, `\brisk.free\b`,
		`\bwill\s+increase\b`, `\bdouble\s+your\b`,
		`\bFDIC\s+insured\b`,
	}},
	{model.BiasMedium, "exaggeration", []string{
		`\bamazing\b`, `\bincredible\b`, `\bunbelievable\b`,
		`\bextraordinary\b`, `\bphenomenal\b`, `\bspectacular\b`,
		`\blife.?changing\b`, `\brevolutionary\b`,
	}},
	{model.BiasMedium, "absolute", []string{
		`\balways\b`, `\bnever\b`, `\beveryone\b`, `\beverybody\b`,
		`\ball\s+users?\b`, `\bcompletely\b`, `\btotally\b`,
		`\b100%\b`, `\bevery\s+time\b`,
	}},
	{model.BiasLow, "comparative", []string{
		`\bbetter\s+than\b`, `\bsuperior\s+to\b`,
		`\boutperforms?\b`, `\bexceeds?\b`,
		`\bleading\b`, `\btop.?rated\b`,
	}},
}

// Superlatives and exaggerations not tied to any claim list
var overclaimPatterns = []string{
	`\bbest\b`, `\bworst\b`, `\bgreatest\b`, `\bperfect\b`,
	`\bultimate\b`, `\bsupreme\b`, `\bunbeatable\b`, `\bunmatched\b`,
	`\bunrivaled\b`, `\bunparalleled\b`, `\bincredible\b`, `\bamazing\b`,
	`\beveryone\b`, `\balways\b`, `\bnever\b`, `\bguaranteed?\b`,
	`\bproven\b`, `\bcertified\b`, `\bmedically\b`, `\bclinically\b`,
	`\b#1\b`, `\btop.rated\b`, `\bleading\b`, `\bmarket.leader\b`,
}

// New compiles the full pattern bank
func New() *Bank {
	b := &Bank{}
	for _, g := range biasGroups {
		for _, raw := range g.patterns {
			b.bias = append(b.bias, Pattern{
				Raw:      raw,
				Regexp:   regexp.MustCompile(`(?i)` + raw),
				Severity: g.severity,
				Category: g.category,
			})
		}
	}
	for _, raw := range overclaimPatterns {
		b.overclaims = append(b.overclaims, Pattern{
			Raw:    raw,
			Regexp: regexp.MustCompile(`(?i)` + raw),
		})
	}
	return b
}

var (
	defaultBank *Bank
	defaultOnce sync.Once
)

// Default returns the process-wide bank, compiled on first use
func Default() *Bank {
	defaultOnce.Do(func() {
		defaultBank = New()
	})
	return defaultBank
}

// Bias returns the bias patterns in declaration order
func (b *Bank) Bias() []Pattern {
	return b.bias
}

// Overclaims returns the overclaim patterns in declaration order
func (b *Bank) Overclaims() []Pattern {
	return b.overclaims
}
