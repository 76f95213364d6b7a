// Package validate extracts numeric claims from free text and checks them
// against product specifications, converting between compatible units
// where possible.
package validate

import (
	"errors"
	"fmt"

	units "github.com/bcicen/go-units"
)

var (
	// ErrUnknownUnit means a unit string is not in the unit registry
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrIncompatible means both units are known but dimensionally incompatible
	ErrIncompatible = errors.New("incompatible units")
)

// Convert converts value between named units. Resolution failures come
// back as wrapped ErrUnknownUnit/ErrIncompatible so callers can branch
// into the textual-equality fallback explicitly.
func Convert(value float64, from, to string) (float64, error) {
	fromUnit, err := units.Find(from)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}

	toUnit, err := units.Find(to)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}

	converted, err := units.ConvertFloat(value, fromUnit, toUnit)
	if err != nil {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIncompatible, from, to)
	}

	return converted.Float(), nil
}
