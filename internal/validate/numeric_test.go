package validate

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestExtractNumeric_Basic(t *testing.T) {
	refs := ExtractNumeric("Battery life: 20 hours with 128 GB storage")

	if len(refs) != 2 {
		t.Fatalf("Expected 2 numeric refs, got %d", len(refs))
	}
	if refs[0].Value != 20 || refs[0].Unit != "hours" {
		t.Errorf("Expected 20 hours, got %g %s", refs[0].Value, refs[0].Unit)
	}
	if refs[1].Value != 128 || refs[1].Unit != "GB" {
		t.Errorf("Expected 128 GB, got %g %s", refs[1].Value, refs[1].Unit)
	}
}

func TestExtractNumeric_DecimalComma(t *testing.T) {
	refs := ExtractNumeric("Contains 3,5 mg of caffeine")

	if len(refs) != 1 {
		t.Fatalf("Expected 1 numeric ref, got %d", len(refs))
	}
	if refs[0].Value != 3.5 {
		t.Errorf("Expected decimal comma normalized to 3.5, got %g", refs[0].Value)
	}
}

func TestExtractNumeric_Context(t *testing.T) {
	refs := ExtractNumeric("The device weighs exactly 250 g on the lab scale")

	if len(refs) != 1 {
		t.Fatalf("Expected 1 numeric ref, got %d", len(refs))
	}
	if !strings.Contains(refs[0].Context, "250 g") {
		t.Errorf("Expected context to contain the match, got %q", refs[0].Context)
	}
}

func TestExtractNumeric_Empty(t *testing.T) {
	if refs := ExtractNumeric("no numbers here"); len(refs) != 0 {
		t.Errorf("Expected no refs, got %v", refs)
	}
}

func TestConvert_KnownUnits(t *testing.T) {
	got, err := Convert(500, "mg", "g")
	if err != nil {
		t.Fatalf("Convert(500, mg, g) failed: %v", err)
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 g, got %g", got)
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	_, err := Convert(5, "flibbers", "g")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Expected ErrUnknownUnit, got %v", err)
	}
}

func TestValidateNumeric_ToleranceBoundary(t *testing.T) {
	// Exactly spec*1.05 must be flagged; spec*1.049 accepted
	ok, msg := ValidateNumeric(21.0, "mg", 20.0, "mg", 0.05)
	if ok {
		t.Error("Expected 21 vs 20 (5.0% error) to be flagged at tolerance 0.05")
	}
	if msg == "" {
		t.Error("Expected an error message for a flagged value")
	}

	ok, _ = ValidateNumeric(20.98, "mg", 20.0, "mg", 0.05)
	if !ok {
		t.Error("Expected 20.98 vs 20 (4.9% error) to be accepted at tolerance 0.05")
	}
}

func TestValidateNumeric_UnitConversion(t *testing.T) {
	ok, msg := ValidateNumeric(500, "mg", 0.5, "g", 0.05)
	if !ok {
		t.Errorf("Expected 500 mg to validate against 0.5 g, got %q", msg)
	}
}

func TestValidateNumeric_TextualFallback(t *testing.T) {
	// Unit not in the registry but identical strings: raw value compare
	ok, _ := ValidateNumeric(10, "servings", 10, "servings", 0.05)
	if !ok {
		t.Error("Expected identical unknown unit strings to fall back to value comparison")
	}

	ok, msg := ValidateNumeric(20, "servings", 10, "servings", 0.05)
	if ok {
		t.Error("Expected out-of-tolerance fallback comparison to be flagged")
	}
	if !strings.Contains(msg, "numeric mismatch") {
		t.Errorf("Expected a numeric mismatch message, got %q", msg)
	}
}

func TestValidateNumeric_UnresolvableMismatch(t *testing.T) {
	ok, msg := ValidateNumeric(10, "flibbers", 10, "wuzzles", 0.05)
	if ok {
		t.Error("Expected unresolvable unit mismatch to be invalid")
	}
	if !strings.Contains(msg, "unit mismatch") {
		t.Errorf("Expected a unit mismatch message, got %q", msg)
	}
}

func TestCompare_BatteryLifeScenario(t *testing.T) {
	numericErrs, unitErrs := Compare(
		[]string{"Battery life: 20 hours"},
		"Battery life: 25 hours",
		0.05,
	)

	if len(numericErrs) != 1 {
		t.Fatalf("Expected 1 numeric discrepancy, got %d", len(numericErrs))
	}
	if numericErrs[0].ErrorPercent != 25.0 {
		t.Errorf("Expected error_percent 25.0, got %g", numericErrs[0].ErrorPercent)
	}
	if len(unitErrs) != 0 {
		t.Errorf("Expected no unit errors, got %v", unitErrs)
	}
}

func TestCompare_WithinTolerance(t *testing.T) {
	numericErrs, _ := Compare(
		[]string{"Battery life: 20 hours"},
		"Battery life: 20 hours of playback",
		0.05,
	)

	if len(numericErrs) != 0 {
		t.Errorf("Expected no discrepancies for an exact value, got %v", numericErrs)
	}
}

func TestCompare_UnitMismatch(t *testing.T) {
	// Close value, unresolvable unit: surfaced, not silently ignored
	_, unitErrs := Compare(
		[]string{"Capacity: 5 flibbers"},
		"Capacity: 5 wuzzles",
		0.05,
	)

	if len(unitErrs) != 1 {
		t.Fatalf("Expected 1 unit mismatch, got %d", len(unitErrs))
	}
	if unitErrs[0].Spec.Unit != "flibbers" || unitErrs[0].Output.Unit != "wuzzles" {
		t.Errorf("Unexpected mismatch units: %+v", unitErrs[0])
	}
}
