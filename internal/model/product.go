package model

// ProductSpec is the product specification a run is judged against.
// Loaded once per product and treated as immutable.
type ProductSpec struct {
	ProductID        string   `yaml:"product_id" json:"product_id"`
	Name             string   `yaml:"name" json:"name"`
	Region           string   `yaml:"region" json:"region"`
	TargetAudience   string   `yaml:"target_audience,omitempty" json:"target_audience,omitempty"`
	Specs            []string `yaml:"specs" json:"specs"`
	AuthorizedClaims []string `yaml:"authorized_claims" json:"authorized_claims"`
	ProhibitedClaims []string `yaml:"prohibited_or_unsupported_claims" json:"prohibited_or_unsupported_claims"`
	Disclaimers      []string `yaml:"disclaimers" json:"disclaimers"`
	UnitsNotes       []string `yaml:"units_notes,omitempty" json:"units_notes,omitempty"`
}
