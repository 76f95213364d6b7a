package model

// Decision categorizes how an output relates to the product's claim policy
type Decision string

const (
	DecisionSupported    Decision = "Supported"    // Matches an authorized claim
	DecisionContradicted Decision = "Contradicted" // Matches a prohibited claim or a failed numeric check
	DecisionUnsupported  Decision = "Unsupported"  // Matches neither claim list
	DecisionAmbiguous    Decision = "Ambiguous"    // Borderline hit rate
)

// ClaimType identifies which claim list a match came from
type ClaimType string

const (
	ClaimTypeAuthorized ClaimType = "authorized"
	ClaimTypeProhibited ClaimType = "prohibited"
	ClaimTypeNone       ClaimType = "none"
)

// ClaimMatch is one match event produced during sentence-level screening.
// Immutable once created.
type ClaimMatch struct {
	Decision     Decision  `json:"decision"`
	MatchedClaim string    `json:"matched_claim"`
	ClaimType    ClaimType `json:"claim_type"`
	Confidence   float64   `json:"confidence"` // 0.0-1.0, for manual review prioritization
}

// ClaimScore records the similarity score computed for one claim
// against the full output text, matched or not.
type ClaimScore struct {
	Claim string  `json:"claim"`
	Score float64 `json:"score"` // 0-100
}
