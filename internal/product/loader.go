// Package product loads and validates product specifications.
// Validation failures are configuration errors and fail fast, before any
// evaluation begins.
package product

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/claimprobe/claimprobe/internal/model"
)

// Unit tokens: a number with trailing unit letters ("20 hours", "3mg"),
// a percentage, or a parenthesized unit annotation ("(mg per serving)")
var (
	inlineUnitPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?\s*[A-Za-z]+\b`)
	percentPattern    = regexp.MustCompile(`\d+(?:[.,]\d+)?\s*%`)
	parenUnitPattern  = regexp.MustCompile(`\([^)]*[a-zA-Z]+[^)]*\)`)
)

// Load reads and validates a product YAML file
func Load(path string) (*model.ProductSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product file: %w", err)
	}

	var spec model.ProductSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse product YAML: %w", err)
	}

	if spec.ProductID == "" {
		spec.ProductID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := Validate(&spec); err != nil {
		return nil, fmt.Errorf("validate product %s: %w", spec.ProductID, err)
	}

	return &spec, nil
}

// Validate checks the load-time invariants: required fields present and
// every spec string carrying a recognizable unit token.
func Validate(spec *model.ProductSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if spec.Region == "" {
		return fmt.Errorf("missing required field: region")
	}
	if len(spec.Specs) == 0 {
		return fmt.Errorf("missing required field: specs")
	}

	var missing []string
	for _, s := range spec.Specs {
		if !HasUnitToken(s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("specs missing unit notation: %q", missing)
	}

	return nil
}

// HasUnitToken reports whether a spec string contains a recognizable unit
// token (mg, GB, Hz, %, a parenthesized unit note, etc.)
func HasUnitToken(spec string) bool {
	return inlineUnitPattern.MatchString(spec) ||
		percentPattern.MatchString(spec) ||
		parenUnitPattern.MatchString(spec)
}
