package model

// EvaluationResult is the terminal record for one evaluated run.
// Created once, serialized, never mutated.
type EvaluationResult struct {
	RunID    string   `json:"run_id"`
	Decision Decision `json:"decision"`

	HitRate           float64 `json:"hit_rate"`
	ContradictionRate float64 `json:"contradiction_rate"`
	UnsupportedRate   float64 `json:"unsupported_rate"`
	AmbiguousRate     float64 `json:"ambiguous_rate"`
	OverclaimRate     float64 `json:"overclaim_rate"`

	MatchedAuthorized  []string             `json:"matched_authorized"`
	ViolatedProhibited []string             `json:"violated_prohibited"`
	ClaimMatches       []ClaimMatch         `json:"claim_matches,omitempty"`
	NumericErrors      []NumericDiscrepancy `json:"numeric_errors"`
	UnitErrors         []UnitMismatch       `json:"unit_errors"`
	Overclaims         []string             `json:"overclaims"`

	BiasDetections []BiasDetection `json:"bias_detections"`
	BiasCounts     SeverityCounts  `json:"bias_severity_counts"`
	BiasScore      float64         `json:"bias_score"`

	Details map[string]interface{} `json:"details,omitempty"`

	// Run metadata attached by the batch layer for aggregation
	Engine       string `json:"engine,omitempty"`
	ProductID    string `json:"product_id,omitempty"`
	MaterialType string `json:"material_type,omitempty"`
	Temperature  string `json:"temperature,omitempty"`
	TimeOfDay    string `json:"time_of_day,omitempty"`
	RepetitionID string `json:"repetition_id,omitempty"`
}
