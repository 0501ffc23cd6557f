package types

// Match type classifications for a context-adjusted score.
const (
	MatchTypeExact   = "exact"   // adjusted score >= 0.8
	MatchTypePartial = "partial" // adjusted score >= 0.5
	MatchTypeRelated = "related" // anything below partial
)

// PainMatch pairs a pain pattern with the scores a skill earned against it.
type PainMatch struct {
	Pain             PainPattern `json:"pain"`
	MatchScore       float64     `json:"match_score"`
	ContextRelevance float64     `json:"context_relevance"`
	AdjustedScore    float64     `json:"adjusted_score"`
}

// DetailedMatchResult is the per-pair debug record produced alongside a
// match run. Evidence holds one human-readable string per sub-score
// that exceeded its significance threshold.
type DetailedMatchResult struct {
	SkillID          string      `json:"skill_id"`
	Pain             PainPattern `json:"pain"`
	MatchScore       float64     `json:"match_score"`
	ContextRelevance float64     `json:"context_relevance"`
	AdjustedScore    float64     `json:"adjusted_score"`
	MatchType        string      `json:"match_type"`
	Evidence         []string    `json:"evidence,omitempty"`
}
