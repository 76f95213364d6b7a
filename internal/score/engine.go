package score

import (
	"github.com/claimprobe/claimprobe/internal/bias"
	"github.com/claimprobe/claimprobe/internal/lexicon"
	"github.com/claimprobe/claimprobe/internal/match"
	"github.com/claimprobe/claimprobe/internal/model"
	"github.com/claimprobe/claimprobe/internal/validate"
)

// Evaluator runs the full evaluation of one (output, product spec) pair.
// It is stateless apart from the shared read-only lexicon and safe for
// concurrent use.
type Evaluator struct {
	cfg      *model.Config
	screener *bias.Screener
}

// NewEvaluator creates an evaluator over the given pattern bank
func NewEvaluator(cfg *model.Config, bank *lexicon.Bank) *Evaluator {
	return &Evaluator{
		cfg:      cfg,
		screener: bias.NewScreener(bank, cfg.Bias),
	}
}

// Evaluate judges output text against a product spec. Pure: the same
// inputs always produce an identical result.
func (e *Evaluator) Evaluate(runID, outputText string, spec *model.ProductSpec) model.EvaluationResult {
	hitRate, matched, authScores := match.CheckAuthorized(
		outputText, spec.AuthorizedClaims, e.cfg.Matching.AuthorizedThreshold)

	contradictionRate, violated := match.CheckProhibited(
		outputText, spec.ProhibitedClaims, e.cfg.Matching.ProhibitedThreshold)

	overclaims := e.screener.Overclaims(outputText)

	numericErrs, unitErrs := validate.Compare(spec.Specs, outputText, e.cfg.Numeric.Tolerance)

	claimMatches := match.Screen(
		outputText, spec.AuthorizedClaims, spec.ProhibitedClaims, e.cfg.Matching.SentenceThreshold)
	screenDecisions := make([]model.Decision, len(claimMatches))
	for i, m := range claimMatches {
		screenDecisions[i] = m.Decision
	}

	decision := Decide(
		contradictionRate,
		len(numericErrs)+len(unitErrs),
		len(overclaims),
		hitRate,
		e.cfg.Decision,
	)

	detections, counts := e.screener.Detect(outputText)

	outputNumerics := validate.ExtractNumeric(outputText)

	return model.EvaluationResult{
		RunID:    runID,
		Decision: decision,

		HitRate:           hitRate,
		ContradictionRate: contradictionRate,
		UnsupportedRate:   UnsupportedRate(screenDecisions),
		AmbiguousRate:     AmbiguousRate(screenDecisions),
		OverclaimRate:     OverclaimRate(screenDecisions),

		MatchedAuthorized:  nonNil(matched),
		ViolatedProhibited: nonNil(violated),
		ClaimMatches:       claimMatches,
		NumericErrors:      numericErrs,
		UnitErrors:         unitErrs,
		Overclaims:         nonNil(overclaims),

		BiasDetections: detections,
		BiasCounts:     counts,
		BiasScore:      e.screener.Score(counts),

		Details: map[string]interface{}{
			"auth_scores":     authScores,
			"output_numerics": outputNumerics,
			"num_specs":       len(spec.Specs),
			"num_authorized":  len(spec.AuthorizedClaims),
			"num_prohibited":  len(spec.ProhibitedClaims),
			"num_sentences":   len(screenDecisions),
		},
	}
}

// Decide maps the combined signal set to one terminal decision. Factual
// contradiction (prohibited claim or numeric/unit error) always dominates;
// overclaim density is the second gate; hit rate settles the rest.
func Decide(contradictionRate float64, hardErrors, overclaimCount int, hitRate float64, cfg model.DecisionConfig) model.Decision {
	switch {
	case contradictionRate > 0 || hardErrors > 0:
		return model.DecisionContradicted
	case overclaimCount > cfg.OverclaimLimit:
		return model.DecisionUnsupported
	case hitRate >= cfg.SupportedMin:
		return model.DecisionSupported
	case hitRate >= cfg.AmbiguousMin:
		return model.DecisionAmbiguous
	default:
		return model.DecisionUnsupported
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
