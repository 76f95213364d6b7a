package model

// BiasLevel is the severity of a bias pattern
type BiasLevel string

const (
	BiasHigh   BiasLevel = "High"
	BiasMedium BiasLevel = "Medium"
	BiasLow    BiasLevel = "Low"
)

// BiasDetection is one lexicon pattern that matched the output text
type BiasDetection struct {
	Pattern  string    `json:"pattern"`
	Matches  []string  `json:"matches"`
	Severity BiasLevel `json:"severity"`
	Category string    `json:"category"` // superlative, guarantee, medical, financial, ...
}

// SeverityCounts aggregates detections per severity level
type SeverityCounts struct {
	High   int `json:"High"`
	Medium int `json:"Medium"`
	Low    int `json:"Low"`
}
