package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/claimprobe/claimprobe/internal/model"
)

// Number followed by an optional run of unit letters ("500 mg", "2.5GHz")
var numericPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([A-Za-z]+)\b`)

const contextRadius = 20

// ExtractNumeric scans text for value/unit pairs, keeping surrounding
// context for auditability. Decimal commas are normalized before parsing;
// unparseable matches are skipped silently.
func ExtractNumeric(text string) []model.NumericRef {
	idxs := numericPattern.FindAllStringSubmatchIndex(text, -1)
	refs := make([]model.NumericRef, 0, len(idxs))

	for _, m := range idxs {
		valueStr := strings.ReplaceAll(text[m[2]:m[3]], ",", ".")
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			continue
		}

		start := m[0] - contextRadius
		if start < 0 {
			start = 0
		}
		end := m[1] + contextRadius
		if end > len(text) {
			end = len(text)
		}

		refs = append(refs, model.NumericRef{
			Value:   value,
			Unit:    text[m[4]:m[5]],
			Context: strings.TrimSpace(text[start:end]),
		})
	}

	return refs
}

// ValidateNumeric checks a claimed value against a spec value. Unit
// conversion is attempted first; if either unit is unresolvable, identical
// unit strings fall back to a raw value comparison and anything else is an
// unresolvable unit mismatch. The boundary is strict: a relative error
// equal to the tolerance is flagged.
func ValidateNumeric(claimValue float64, claimUnit string, specValue float64, specUnit string, tolerance float64) (bool, string) {
	converted, err := Convert(claimValue, claimUnit, specUnit)
	switch {
	case err == nil:
		ok, pct := withinTolerance(converted, specValue, tolerance)
		if ok {
			return true, ""
		}
		return false, fmt.Sprintf("numeric mismatch: claim %g %s vs spec %g %s (error: %.1f%%)",
			claimValue, claimUnit, specValue, specUnit, pct)

	case strings.EqualFold(claimUnit, specUnit):
		ok, pct := withinTolerance(claimValue, specValue, tolerance)
		if ok {
			return true, ""
		}
		return false, fmt.Sprintf("numeric mismatch: %g vs %g (error: %.1f%%)", claimValue, specValue, pct)

	default:
		return false, fmt.Sprintf("unit mismatch: %s vs %s", claimUnit, specUnit)
	}
}

// Compare validates every output number against every spec number.
// Same-unit or convertible pairs out of tolerance become numeric
// discrepancies; a close value under an unresolvable unit becomes a unit
// mismatch. Both are hard failures for the decision engine.
func Compare(specs []string, outputText string, tolerance float64) ([]model.NumericDiscrepancy, []model.UnitMismatch) {
	outputNums := ExtractNumeric(outputText)

	var numericErrs []model.NumericDiscrepancy
	var unitErrs []model.UnitMismatch

	for _, line := range specs {
		for _, specNum := range ExtractNumeric(line) {
			for _, outNum := range outputNums {
				sameUnit := strings.EqualFold(outNum.Unit, specNum.Unit)
				converted, convErr := Convert(outNum.Value, outNum.Unit, specNum.Unit)

				switch {
				case convErr == nil, sameUnit:
					actual := outNum.Value
					if convErr == nil {
						actual = converted
					}
					if ok, pct := withinTolerance(actual, specNum.Value, tolerance); !ok {
						_, msg := ValidateNumeric(outNum.Value, outNum.Unit, specNum.Value, specNum.Unit, tolerance)
						numericErrs = append(numericErrs, model.NumericDiscrepancy{
							Spec:         specNum,
							Output:       outNum,
							ErrorPercent: pct,
							Message:      msg,
						})
					}

				default:
					// Similar magnitude under an unresolvable unit: cannot be
					// validated, surfaced rather than silently ignored
					if math.Abs(outNum.Value-specNum.Value) < 10 {
						unitErrs = append(unitErrs, model.UnitMismatch{
							Spec:    specNum,
							Output:  outNum,
							Message: fmt.Sprintf("unit mismatch: %s vs %s", outNum.Unit, specNum.Unit),
						})
					}
				}
			}
		}
	}

	return numericErrs, unitErrs
}

func withinTolerance(actual, expected, tolerance float64) (bool, float64) {
	if expected == 0 {
		if actual == 0 {
			return true, 0
		}
		return false, math.Inf(1)
	}

	relative := math.Abs(actual-expected) / math.Abs(expected)
	return relative < tolerance, relative * 100
}
