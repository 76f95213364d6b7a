package product

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validProductYAML = `name: Fizz Zero
region: US
target_audience: adults
specs:
  - "Caffeine: 80 mg per serving"
  - "Battery life: 20 hours"
authorized_claims:
  - zero calories
prohibited_or_unsupported_claims:
  - cures disease
disclaimers:
  - Not a medical product.
`

func writeProduct(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeProduct(t, t.TempDir(), "fizz-zero.yaml", validProductYAML)

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if spec.ProductID != "fizz-zero" {
		t.Errorf("Expected product ID derived from filename, got %q", spec.ProductID)
	}
	if spec.Name != "Fizz Zero" || spec.Region != "US" {
		t.Errorf("Unexpected fields: %+v", spec)
	}
	if len(spec.AuthorizedClaims) != 1 || len(spec.ProhibitedClaims) != 1 {
		t.Errorf("Claim lists not parsed: %+v", spec)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_MissingName(t *testing.T) {
	path := writeProduct(t, t.TempDir(), "bad.yaml",
		"region: US\nspecs:\n  - \"Weight: 250 g\"\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("Expected a name error, got %v", err)
	}
}

func TestLoad_SpecWithoutUnit(t *testing.T) {
	path := writeProduct(t, t.TempDir(), "bad.yaml",
		"name: Thing\nregion: EU\nspecs:\n  - \"Lightweight design\"\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected validation error for spec without unit notation")
	}
	if !strings.Contains(err.Error(), "unit") {
		t.Errorf("Expected a unit notation error, got %v", err)
	}
}

func TestHasUnitToken(t *testing.T) {
	tests := []struct {
		spec string
		want bool
	}{
		{"Caffeine: 80 mg", true},
		{"Battery life: 20 hours", true},
		{"Sugar: 0%", true},
		{"Capacity (liters) varies", true},
		{"3,5mg dose", true},
		{"Lightweight design", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasUnitToken(tt.spec); got != tt.want {
			t.Errorf("HasUnitToken(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestLoader_CacheHit(t *testing.T) {
	dir := t.TempDir()
	writeProduct(t, dir, "fizz-zero.yaml", validProductYAML)

	loader := NewLoader(dir, time.Minute)

	first, err := loader.Get("fizz-zero")
	if err != nil {
		t.Fatalf("first Get failed: %v", err)
	}

	// Remove the file; a cached loader must still serve the spec
	if err := os.Remove(filepath.Join(dir, "fizz-zero.yaml")); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	second, err := loader.Get("fizz-zero")
	if err != nil {
		t.Fatalf("cached Get failed: %v", err)
	}
	if first != second {
		t.Error("Expected the cached pointer to be returned")
	}
}

func TestLoader_CacheDisabled(t *testing.T) {
	dir := t.TempDir()
	writeProduct(t, dir, "fizz-zero.yaml", validProductYAML)

	loader := NewLoader(dir, 0)

	if _, err := loader.Get("fizz-zero"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, "fizz-zero.yaml")); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	if _, err := loader.Get("fizz-zero"); err == nil {
		t.Error("Expected a miss with caching disabled and the file gone")
	}
}
