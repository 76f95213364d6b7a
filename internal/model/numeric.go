package model

// NumericRef is one numeric value with its unit, extracted from free text.
// Context keeps the surrounding characters for auditability.
type NumericRef struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Context string  `json:"context,omitempty"`
}

// NumericDiscrepancy records an output value that fails the tolerance
// check against a spec value.
type NumericDiscrepancy struct {
	Spec         NumericRef `json:"spec"`
	Output       NumericRef `json:"output"`
	ErrorPercent float64    `json:"error_percent"`
	Message      string     `json:"message"`
}

// UnitMismatch records an output value close to a spec value but carrying
// a unit that cannot be reconciled with the spec's.
type UnitMismatch struct {
	Spec    NumericRef `json:"spec"`
	Output  NumericRef `json:"output"`
	Message string     `json:"message"`
}
