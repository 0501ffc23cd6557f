package types

import "time"

// EvolutionEvidence aggregates deployment statistics for one skill.
// Supplied per assessment call; the classifier never stores it.
type EvolutionEvidence struct {
	// Implementations is the number of recorded deployments (>= 0).
	Implementations int `json:"implementations"`

	// Industries and Roles are multisets of names; maturity criteria
	// count distinct values only.
	Industries []string `json:"industries,omitempty"`
	Roles      []string `json:"roles,omitempty"`

	// SuccessRate is in [0,1]. A missing rate is treated as 0.
	SuccessRate float64 `json:"success_rate"`

	CrossIndustrySuccess bool     `json:"cross_industry_success,omitempty"`
	Feedbacks            []string `json:"feedbacks,omitempty"`
}

// DistinctIndustries returns the set cardinality of Industries.
func (e *EvolutionEvidence) DistinctIndustries() int {
	return distinctCount(e.Industries)
}

// DistinctRoles returns the set cardinality of Roles.
func (e *EvolutionEvidence) DistinctRoles() int {
	return distinctCount(e.Roles)
}

func distinctCount(values []string) int {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}

// EvolutionLevel is one of four fixed maturity tiers for a skill.
type EvolutionLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// The four fixed evolution levels, ordered lowest to highest.
const (
	LevelIndividualValidated    = 1
	LevelTeamProven             = 2
	LevelCrossIndustryValidated = 3
	LevelUniversallyGeneralized = 4

	MinEvolutionLevel = LevelIndividualValidated
	MaxEvolutionLevel = LevelUniversallyGeneralized
)

var evolutionLevels = []EvolutionLevel{
	{
		Level:       LevelIndividualValidated,
		Name:        "Individual Validated",
		Description: "Proven by a single practitioner in one setting.",
	},
	{
		Level:       LevelTeamProven,
		Name:        "Team Proven",
		Description: "Adopted by multiple roles with consistent results.",
	},
	{
		Level:       LevelCrossIndustryValidated,
		Name:        "Cross-Industry Validated",
		Description: "Successful across several distinct industries.",
	},
	{
		Level:       LevelUniversallyGeneralized,
		Name:        "Universally Generalized",
		Description: "Broadly applicable with a strong track record everywhere it runs.",
	},
}

// EvolutionLevels returns the fixed four-level ladder in ascending order.
func EvolutionLevels() []EvolutionLevel {
	out := make([]EvolutionLevel, len(evolutionLevels))
	copy(out, evolutionLevels)
	return out
}

// LevelByNumber returns the level definition for n, or false when n is
// outside [1,4].
func LevelByNumber(n int) (EvolutionLevel, bool) {
	if n < MinEvolutionLevel || n > MaxEvolutionLevel {
		return EvolutionLevel{}, false
	}
	return evolutionLevels[n-1], true
}

// LevelTransition is one append-only history entry recorded by the
// progression tracker. Entries are never mutated after append.
type LevelTransition struct {
	ID            string            `json:"id"`
	SkillID       string            `json:"skill_id"`
	Evidence      EvolutionEvidence `json:"evidence"`
	PreviousLevel int               `json:"previous_level"`
	NewLevel      int               `json:"new_level"`
	Timestamp     time.Time         `json:"timestamp"`
}

// EvolutionAssessment is the composed report produced for one skill.
type EvolutionAssessment struct {
	SkillID           string             `json:"skill_id"`
	CurrentLevel      int                `json:"current_level"`
	ReadyForNextLevel bool               `json:"ready_for_next_level"`
	ReadinessScore    float64            `json:"readiness_score"`
	Strengths         []string           `json:"strengths,omitempty"`
	Gaps              []string           `json:"gaps,omitempty"`
	ProgressMetrics   map[string]float64 `json:"progress_metrics,omitempty"`
}
