package types

// PainPattern represents an observed client problem used as a matching target.
// Pain patterns are produced by an external classifier and are read-only here.
type PainPattern struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Impact      string `json:"impact,omitempty"`
}

// CompanySize values accepted in a RecommendationContext.
const (
	CompanySizeSmall  = "small"
	CompanySizeMedium = "medium"
	CompanySizeLarge  = "large"
)

// Urgency values accepted in a RecommendationContext.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// RecommendationContext carries per-request client context used to
// adjust raw match scores. Ephemeral; never stored.
type RecommendationContext struct {
	Industry    string   `json:"industry,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	CompanySize string   `json:"company_size,omitempty"`
	Urgency     string   `json:"urgency,omitempty"`
}
